package booking

import (
	"time"

	"fleetrent-backend/internal/domain"
)

// Selector is the duration choice offered in the date-selection step.
// It extends the vehicle price tiers with a multi-day option that is
// billed as N day tiers.
type Selector string

const (
	SelectFourHours   Selector = "4h"
	SelectTwelveHours Selector = "12h"
	SelectDay         Selector = "day"
	SelectMultiDay    Selector = "multi-day"
	SelectMonth       Selector = "month"
)

const (
	// MultiDay day counts outside [1, MaxMultiDays] are not computable;
	// 30 days and up is the month selector's territory.
	MinMultiDays = 1
	MaxMultiDays = 29

	monthLengthDays = 30
)

// Quote is the derived end timestamp and total price for a rental.
type Quote struct {
	End   time.Time `json:"end"`
	Price int64     `json:"price"`
}

// End derives the rental end timestamp from the start and the duration
// selector. It reports false when the inputs are incomplete (zero
// start, unknown selector, or an out-of-range multi-day count) — the
// caller treats that as "form incomplete", not as an error.
//
// Hour tiers use wall-clock durations; day-based tiers advance whole
// calendar days so a 09:00 pickup always ends at 09:00.
func End(start time.Time, sel Selector, days int) (time.Time, bool) {
	if start.IsZero() {
		return time.Time{}, false
	}
	switch sel {
	case SelectFourHours:
		return start.Add(4 * time.Hour), true
	case SelectTwelveHours:
		return start.Add(12 * time.Hour), true
	case SelectDay:
		return start.AddDate(0, 0, 1), true
	case SelectMultiDay:
		if days < MinMultiDays || days > MaxMultiDays {
			return time.Time{}, false
		}
		return start.AddDate(0, 0, days), true
	case SelectMonth:
		return start.AddDate(0, 0, monthLengthDays), true
	}
	return time.Time{}, false
}

// Price computes the total for a selector from a vehicle price list.
// Unset tiers price at 0; the month selector falls back to 30 day
// tiers when no month price is set. The result is never negative.
func Price(sel Selector, days int, prices domain.PriceList) int64 {
	switch sel {
	case SelectFourHours:
		return prices.Price(domain.TierFourHours)
	case SelectTwelveHours:
		return prices.Price(domain.TierTwelveHours)
	case SelectDay:
		return prices.Price(domain.TierDay)
	case SelectMultiDay:
		return prices.Price(domain.TierDay) * int64(days)
	case SelectMonth:
		if p := prices.Price(domain.TierMonth); p > 0 {
			return p
		}
		return prices.Price(domain.TierDay) * monthLengthDays
	}
	return 0
}

// Compute returns the full quote for a start, selector and price list.
// A nil price list (no vehicle chosen yet) is not computable.
func Compute(start time.Time, sel Selector, days int, prices domain.PriceList) (Quote, bool) {
	if prices == nil {
		return Quote{}, false
	}
	end, ok := End(start, sel, days)
	if !ok {
		return Quote{}, false
	}
	return Quote{End: end, Price: Price(sel, days, prices)}, true
}
