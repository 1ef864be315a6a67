package queries

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrGetMyDonationsQueryIsNotConstructed = errors.New(
	"GetMyDonationsQuery must be created via NewGetMyDonationsQuery constructor",
)

// GetMyDonationsQuery retrieves every donation a donor has listed,
// whatever its status.
type GetMyDonationsQuery struct {
	donorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMyDonationsQuery creates a query for a donor's own listings.
func NewGetMyDonationsQuery(donorID kernel.UUID) (GetMyDonationsQuery, error) {
	if err := donorID.Validate(); err != nil {
		return GetMyDonationsQuery{}, err
	}

	return GetMyDonationsQuery{
		donorID: donorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMyDonationsQuery) Validate() error {
	return q.guard.Validate(ErrGetMyDonationsQueryIsNotConstructed)
}

func (q GetMyDonationsQuery) DonorID() kernel.UUID { return q.donorID }
