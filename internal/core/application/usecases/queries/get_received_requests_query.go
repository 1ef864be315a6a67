package queries

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrGetReceivedRequestsQueryIsNotConstructed = errors.New(
	"GetReceivedRequestsQuery must be created via NewGetReceivedRequestsQuery constructor",
)

// GetReceivedRequestsQuery retrieves every request made against a
// donor's listings, the donor's inbox for approve/reject decisions.
type GetReceivedRequestsQuery struct {
	donorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetReceivedRequestsQuery creates a query for a donor's incoming
// requests.
func NewGetReceivedRequestsQuery(donorID kernel.UUID) (GetReceivedRequestsQuery, error) {
	if err := donorID.Validate(); err != nil {
		return GetReceivedRequestsQuery{}, err
	}

	return GetReceivedRequestsQuery{
		donorID: donorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetReceivedRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetReceivedRequestsQueryIsNotConstructed)
}

func (q GetReceivedRequestsQuery) DonorID() kernel.UUID { return q.donorID }
