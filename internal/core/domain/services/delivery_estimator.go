package services

import (
	"fmt"
	"time"

	"ordering/internal/pkg/errs"
)

// ShippingMethod identifies a delivery speed tier.
type ShippingMethod string

const (
	ShippingStandard  ShippingMethod = "standard"
	ShippingExpress   ShippingMethod = "express"
	ShippingOvernight ShippingMethod = "overnight"
)

// getTransitBusinessDays maps each shipping method to its transit time in
// business days.
func getTransitBusinessDays() map[ShippingMethod]int {
	return map[ShippingMethod]int{
		ShippingStandard:  5,
		ShippingExpress:   2,
		ShippingOvernight: 1,
	}
}

// DeliveryEstimator is a domain service that projects a delivery date for
// a shipping method. The reference date is always an explicit parameter so
// the estimate is deterministic and testable without wall-clock dependence.
type DeliveryEstimator struct{}

// NewDeliveryEstimator creates a new DeliveryEstimator instance.
func NewDeliveryEstimator() DeliveryEstimator {
	return DeliveryEstimator{}
}

// EstimateDeliveryDate returns the calendar date that lies the method's
// transit time after the reference date, counting business days only.
// Saturdays and Sundays never count toward transit; holiday calendars are
// a future extension.
//
// The same reference date always yields the same estimate.
func (DeliveryEstimator) EstimateDeliveryDate(method ShippingMethod, from time.Time) (time.Time, error) {
	days, ok := getTransitBusinessDays()[method]
	if !ok {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(
			"shipping method",
			fmt.Errorf("%q is not a known shipping method", method),
		)
	}

	date := from
	for remaining := days; remaining > 0; {
		date = date.AddDate(0, 0, 1)
		if weekday := date.Weekday(); weekday == time.Saturday || weekday == time.Sunday {
			continue
		}
		remaining--
	}

	return date, nil
}
