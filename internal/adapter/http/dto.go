package httpadapter

import (
	"encoding/json"

	"mesa-kpi/internal/core/domain"
	"mesa-kpi/internal/core/kpi"
	"mesa-kpi/internal/core/port"
)

// JSON has no NaN or Inf: undefined figures are encoded as null.

func money(v float64) *float64 {
	if !kpi.Finite(v) {
		return nil
	}
	r := kpi.RoundCents(v)
	return &r
}

func ratio(v float64) *float64 {
	if !kpi.Finite(v) {
		return nil
	}
	return &v
}

// formValue accepts both a JSON string and a bare JSON number, keeping the
// literal text so that validation sees what the client sent.
type formValue string

func (v *formValue) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = formValue(s)
		return nil
	}
	*v = formValue(b)
	return nil
}

type addRecordBody struct {
	Date         formValue `json:"date"`
	Sales        formValue `json:"sales"`
	Orders       formValue `json:"orders"`
	ProductType  formValue `json:"productType"`
	CampaignName formValue `json:"campaignName"`
}

func (b addRecordBody) toReq() port.AddRecordReq {
	return port.AddRecordReq{
		Date:         string(b.Date),
		Sales:        string(b.Sales),
		Orders:       string(b.Orders),
		ProductType:  string(b.ProductType),
		CampaignName: string(b.CampaignName),
	}
}

type recordDTO struct {
	ID                string   `json:"id"`
	Date              string   `json:"date"`
	Sales             *float64 `json:"sales"`
	Orders            int      `json:"orders"`
	AverageOrderValue *float64 `json:"averageOrderValue"`
	ProductType       string   `json:"productType"`
	CampaignName      string   `json:"campaignName"`
}

func toRecords(recs []domain.DailyRecord) []recordDTO {
	out := make([]recordDTO, len(recs))
	for i, r := range recs {
		out[i] = recordDTO{
			ID:                r.ID,
			Date:              r.Date.Format(domain.DateLayout),
			Sales:             money(r.Sales),
			Orders:            r.Orders,
			AverageOrderValue: money(r.AverageOrderValue),
			ProductType:       r.ProductType,
			CampaignName:      r.CampaignName,
		}
	}
	return out
}

type summaryDTO struct {
	TotalSales        *float64          `json:"totalSales"`
	TotalOrders       int               `json:"totalOrders"`
	AverageOrderValue *float64          `json:"averageOrderValue"`
	Display           map[string]string `json:"display"`
}

func toSummary(s domain.Summary) summaryDTO {
	return summaryDTO{
		TotalSales:        money(s.TotalSales),
		TotalOrders:       s.TotalOrders,
		AverageOrderValue: money(s.AverageOrderValue),
		Display: map[string]string{
			"totalSales":        kpi.Euros(s.TotalSales),
			"averageOrderValue": kpi.EurosCents(s.AverageOrderValue),
		},
	}
}

type productDTO struct {
	Category string   `json:"category"`
	Sales    *float64 `json:"sales"`
	Orders   int      `json:"orders"`
}

func toDistribution(ps []domain.ProductPerformance) []productDTO {
	out := make([]productDTO, len(ps))
	for i, p := range ps {
		out[i] = productDTO{Category: p.Category, Sales: money(p.Sales), Orders: p.Orders}
	}
	return out
}

type metricsDTO struct {
	BudgetUsedPercent *float64          `json:"budgetUsedPercent"`
	ROI               *float64          `json:"roi"`
	ProfitMargin      *float64          `json:"profitMargin"`
	Profit            *float64          `json:"profit"`
	RevenueGoal       *float64          `json:"revenueGoal"`
	DaysRemaining     *int              `json:"daysRemaining"`
	ShowCountdown     bool              `json:"showCountdown"`
	Display           map[string]string `json:"display"`
}

type campaignDTO struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	StartDate   string     `json:"startDate"`
	EndDate     *string    `json:"endDate,omitempty"`
	Status      string     `json:"status"`
	StatusLabel string     `json:"statusLabel"`
	Budget      *float64   `json:"budget"`
	Spent       *float64   `json:"spent"`
	Revenue     *float64   `json:"revenue"`
	Metrics     metricsDTO `json:"metrics"`
}

func toCampaign(v port.CampaignView) campaignDTO {
	c, m := v.Campaign, v.Metrics
	dto := campaignDTO{
		ID:          c.ID,
		Name:        c.Name,
		StartDate:   c.StartDate.Format(domain.DateLayout),
		Status:      string(c.Status),
		StatusLabel: kpi.StatusLabel(c.Status),
		Budget:      money(c.Budget),
		Spent:       money(c.Spent),
		Revenue:     money(c.Revenue),
		Metrics: metricsDTO{
			BudgetUsedPercent: ratio(m.BudgetUsedPercent),
			ROI:               ratio(m.ROI),
			ProfitMargin:      ratio(m.ProfitMargin),
			Profit:            money(m.Profit),
			RevenueGoal:       money(m.RevenueGoal),
			DaysRemaining:     m.DaysRemaining,
			ShowCountdown:     m.ShowCountdown,
			Display: map[string]string{
				"budgetUsed":   kpi.Percent(m.BudgetUsedPercent, 0),
				"roi":          kpi.SignedPercent(m.ROI),
				"profitMargin": kpi.Percent(m.ProfitMargin, 1),
				"revenueGoal":  kpi.Euros(m.RevenueGoal),
			},
		},
	}
	if c.EndDate != nil {
		end := c.EndDate.Format(domain.DateLayout)
		dto.EndDate = &end
	}
	return dto
}

func toCampaigns(vs []port.CampaignView) []campaignDTO {
	out := make([]campaignDTO, len(vs))
	for i, v := range vs {
		out[i] = toCampaign(v)
	}
	return out
}

type overviewDTO struct {
	Summary      summaryDTO    `json:"summary"`
	Distribution []productDTO  `json:"distribution"`
	Records      []recordDTO   `json:"records"`
	Campaigns    []campaignDTO `json:"campaigns"`
}

type weekDTO struct {
	Week   string   `json:"week"`
	Sales  *float64 `json:"sales"`
	Orders int      `json:"orders"`
}

type cumulativeDTO struct {
	Date    string   `json:"date"`
	Revenue *float64 `json:"revenue"`
	Target  *float64 `json:"target"`
}

type campaignDetailDTO struct {
	Campaign   campaignDTO     `json:"campaign"`
	Summary    summaryDTO      `json:"summary"`
	Weekly     []weekDTO       `json:"weekly"`
	Cumulative []cumulativeDTO `json:"cumulative"`
	Records    []recordDTO     `json:"records"`
}

func toCampaignDetail(d *port.CampaignDetail) campaignDetailDTO {
	weekly := make([]weekDTO, len(d.Weekly))
	for i, w := range d.Weekly {
		weekly[i] = weekDTO{Week: w.Label, Sales: money(w.Sales), Orders: w.Orders}
	}
	cumulative := make([]cumulativeDTO, len(d.Cumulative))
	for i, p := range d.Cumulative {
		cumulative[i] = cumulativeDTO{
			Date:    p.Date.Format(domain.DateLayout),
			Revenue: money(p.Revenue),
			Target:  money(p.Target),
		}
	}
	return campaignDetailDTO{
		Campaign:   toCampaign(d.CampaignView),
		Summary:    toSummary(d.Summary),
		Weekly:     weekly,
		Cumulative: cumulative,
		Records:    toRecords(d.Records),
	}
}

type recordsDTO struct {
	Records []recordDTO `json:"records"`
}

type errorDTO struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}
