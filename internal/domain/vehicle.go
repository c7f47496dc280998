package domain

import "time"

type DurationTier string

const (
	TierFourHours   DurationTier = "4h"
	TierTwelveHours DurationTier = "12h"
	TierDay         DurationTier = "day"
	TierMonth       DurationTier = "month"
)

// PriceList maps duration tiers to whole-CZK prices. A missing tier
// means the tier is not offered for that vehicle.
type PriceList map[DurationTier]int64

func (p PriceList) Price(tier DurationTier) int64 {
	if p == nil {
		return 0
	}
	return p[tier]
}

type Vehicle struct {
	ID            int64      `json:"id"`
	Brand         string     `json:"brand"`
	LicensePlate  string     `json:"license_plate"`
	VIN           string     `json:"vin"`
	Year          int        `json:"year"`
	Pricing       PriceList  `json:"pricing"`
	InspectionDue *time.Time `json:"inspection_due,omitempty"`
	InsuranceInfo string     `json:"insurance_info,omitempty"`
	VignetteUntil *time.Time `json:"vignette_until,omitempty"`
	CreatedOn     time.Time  `json:"created_on"`
}

// Rentable reports whether at least one tier price is set. The store
// accepts vehicles without prices; callers decide what to do with them.
func (v *Vehicle) Rentable() bool {
	for _, price := range v.Pricing {
		if price > 0 {
			return true
		}
	}
	return false
}
