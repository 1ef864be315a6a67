package queries

import (
	"errors"

	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/pkg/guard"
)

var ErrGetAvailableDonationsQueryIsNotConstructed = errors.New(
	"GetAvailableDonationsQuery must be created via NewGetAvailableDonationsQuery constructor",
)

// GetAvailableDonationsQuery retrieves the public donation feed.
// By default only Available donations are listed; a receiver browsing
// the feed may narrow it by food type or ask for a different status.
//
// Example:
//
//	query, err := NewGetAvailableDonationsQuery(&foodType, nil)
//	if err != nil {
//	    return err
//	}
//
//	donations, err := handler.Handle(ctx, query)
type GetAvailableDonationsQuery struct {
	foodType *donation.FoodType
	status   *donation.Status

	guard guard.ConstructorGuard
}

// NewGetAvailableDonationsQuery creates a feed query. Both filters are
// optional; nil foodType means all food types, nil status means
// Available.
func NewGetAvailableDonationsQuery(
	foodType *donation.FoodType,
	status *donation.Status,
) (GetAvailableDonationsQuery, error) {
	q := GetAvailableDonationsQuery{
		foodType: foodType,
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}

	if foodType != nil {
		if err := foodType.Validate(); err != nil {
			return GetAvailableDonationsQuery{}, err
		}
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetAvailableDonationsQuery{}, err
		}
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableDonationsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDonationsQueryIsNotConstructed)
}

func (q GetAvailableDonationsQuery) FoodType() *donation.FoodType { return q.foodType }

// Status returns the requested status filter, defaulting to Available.
func (q GetAvailableDonationsQuery) Status() donation.Status {
	if q.status == nil {
		return donation.Available
	}
	return *q.status
}
