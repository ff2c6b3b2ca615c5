package httpadapter

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mesa-kpi/internal/core/port"
)

// handleCampaigns lists every campaign with its derived metrics.
func (h *Handler) handleCampaigns(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.Campaigns(r.Context())
	if err != nil {
		h.internalError(w, "campaigns error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaigns(views))
}

// handleCampaign returns the detail page of the campaign bound to the {id}
// path parameter: metrics, weekly roll-up, cumulative revenue against the
// target and the daily series. Unknown ids produce HTTP 404.
func (h *Handler) handleCampaign(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Campaign(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, port.ErrCampaignNotFound) {
		h.writeJSON(w, http.StatusNotFound, errorDTO{Error: "campaign not found"})
		return
	}
	if err != nil {
		h.internalError(w, "campaign error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignDetail(d))
}

// handleAddCampaignRecord inserts a daily record into a campaign sequence.
// It behaves like handleAddRecord; the record is always attributed to the
// campaign.
func (h *Handler) handleAddCampaignRecord(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAddRecord(w, r)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorDTO{Error: "invalid request body"})
		return
	}
	recs, err := h.svc.AddCampaignRecord(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.writeUseCaseError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, recordsDTO{Records: toRecords(recs)})
}
