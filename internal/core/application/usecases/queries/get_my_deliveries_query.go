package queries

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrGetMyDeliveriesQueryIsNotConstructed = errors.New(
	"GetMyDeliveriesQuery must be created via NewGetMyDeliveriesQuery constructor",
)

// GetMyDeliveriesQuery retrieves the requests assigned to a delivery
// person: approved pickups, runs in transit and completed drop-offs.
type GetMyDeliveriesQuery struct {
	deliveryPersonID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMyDeliveriesQuery creates a query for a delivery person's
// assignments.
func NewGetMyDeliveriesQuery(deliveryPersonID kernel.UUID) (GetMyDeliveriesQuery, error) {
	if err := deliveryPersonID.Validate(); err != nil {
		return GetMyDeliveriesQuery{}, err
	}

	return GetMyDeliveriesQuery{
		deliveryPersonID: deliveryPersonID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMyDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetMyDeliveriesQueryIsNotConstructed)
}

func (q GetMyDeliveriesQuery) DeliveryPersonID() kernel.UUID { return q.deliveryPersonID }
