package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"mesa-kpi/internal/adapter/usecase"
	"mesa-kpi/internal/core/port"
)

// maxBodyBytes bounds add-data request bodies.
const maxBodyBytes = 1 << 16

// handleOverview returns the main dashboard: summary cards, product
// distribution, the daily series and the campaign list.
func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.svc.Overview(r.Context())
	if err != nil {
		h.internalError(w, "overview error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, overviewDTO{
		Summary:      toSummary(ov.Summary),
		Distribution: toDistribution(ov.Distribution),
		Records:      toRecords(ov.Records),
		Campaigns:    toCampaigns(ov.Campaigns),
	})
}

// handleAddRecord inserts a daily record into the overview sequence. The
// body is either JSON or an urlencoded form with the same field names.
// Validation failures produce HTTP 400 and leave the sequence untouched.
// On success it returns HTTP 201 with the updated, sorted sequence.
func (h *Handler) handleAddRecord(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAddRecord(w, r)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorDTO{Error: "invalid request body"})
		return
	}
	recs, err := h.svc.AddRecord(r.Context(), req)
	if err != nil {
		h.writeUseCaseError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, recordsDTO{Records: toRecords(recs)})
}

// handleReset regenerates the demo data, like reloading the dashboard.
func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Reset(r.Context()); err != nil {
		h.internalError(w, "reset error", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeAddRecord(w http.ResponseWriter, r *http.Request) (port.AddRecordReq, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return port.AddRecordReq{}, err
		}
		return port.AddRecordReq{
			Date:         r.PostForm.Get("date"),
			Sales:        r.PostForm.Get("sales"),
			Orders:       r.PostForm.Get("orders"),
			ProductType:  r.PostForm.Get("productType"),
			CampaignName: r.PostForm.Get("campaignName"),
		}, nil
	}
	var body addRecordBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return port.AddRecordReq{}, err
	}
	return body.toReq(), nil
}

// writeUseCaseError maps use case errors onto HTTP statuses.
func (h *Handler) writeUseCaseError(w http.ResponseWriter, err error) {
	var fe *usecase.FieldError
	switch {
	case errors.As(err, &fe):
		msg := "missing required field"
		if errors.Is(err, usecase.ErrInvalidField) {
			msg = "invalid field value"
		}
		h.writeJSON(w, http.StatusBadRequest, errorDTO{Error: msg, Field: fe.Field})
	case errors.Is(err, port.ErrCampaignNotFound):
		h.writeJSON(w, http.StatusNotFound, errorDTO{Error: "campaign not found"})
	default:
		h.internalError(w, "add record error", err)
	}
}

func (h *Handler) internalError(w http.ResponseWriter, msg string, err error) {
	h.logger.Error(msg, slog.Any("error", err))
	h.writeJSON(w, http.StatusInternalServerError, errorDTO{Error: "internal error"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
