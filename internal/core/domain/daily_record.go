package domain

import "time"

// DateLayout is the calendar date format accepted and emitted for records.
const DateLayout = "2006-01-02"

// DefaultCampaignName labels records that were not attributed to a campaign.
const DefaultCampaignName = "Organic"

// Product types accepted by the add-data operation.
const (
	ProductELiquids           = "e-liquides"
	ProductElectronicCigarets = "cigarettes-electroniques"
	ProductAccessories        = "accessoires"
	ProductPods               = "pods"
	ProductCoils              = "resistances"
)

// ProductTypes lists every accepted product type label.
var ProductTypes = []string{
	ProductELiquids,
	ProductElectronicCigarets,
	ProductAccessories,
	ProductPods,
	ProductCoils,
}

// IsProductType reports whether s is one of ProductTypes.
func IsProductType(s string) bool {
	for _, p := range ProductTypes {
		if p == s {
			return true
		}
	}
	return false
}

// DailyRecord holds the KPIs entered for one day. Records are immutable
// once added to a sequence.
type DailyRecord struct {
	ID                string
	Date              time.Time // UTC midnight
	Sales             float64
	Orders            int
	AverageOrderValue float64 // Sales / Orders, NaN or +Inf when Orders is 0
	ProductType       string
	CampaignName      string
}

// NewDailyRecord builds a record and derives its average order value.
// An empty campaign name is replaced by DefaultCampaignName.
func NewDailyRecord(id string, date time.Time, sales float64, orders int, productType, campaignName string) DailyRecord {
	if campaignName == "" {
		campaignName = DefaultCampaignName
	}
	return DailyRecord{
		ID:                id,
		Date:              date,
		Sales:             sales,
		Orders:            orders,
		AverageOrderValue: sales / float64(orders),
		ProductType:       productType,
		CampaignName:      campaignName,
	}
}
