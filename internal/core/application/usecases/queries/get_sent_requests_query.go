package queries

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrGetSentRequestsQueryIsNotConstructed = errors.New(
	"GetSentRequestsQuery must be created via NewGetSentRequestsQuery constructor",
)

// GetSentRequestsQuery retrieves the requests a receiver has made,
// each joined with a summary of the donation it targets.
type GetSentRequestsQuery struct {
	receiverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSentRequestsQuery creates a query for a receiver's outgoing
// requests.
func NewGetSentRequestsQuery(receiverID kernel.UUID) (GetSentRequestsQuery, error) {
	if err := receiverID.Validate(); err != nil {
		return GetSentRequestsQuery{}, err
	}

	return GetSentRequestsQuery{
		receiverID: receiverID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSentRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetSentRequestsQueryIsNotConstructed)
}

func (q GetSentRequestsQuery) ReceiverID() kernel.UUID { return q.receiverID }
