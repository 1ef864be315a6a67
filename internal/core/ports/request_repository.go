package ports

import (
	"context"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/request"
)

// RequestRepository defines the persistence contract for request
// aggregates. The store enforces uniqueness on (donation, receiver);
// Add surfaces a violation as a ConflictError.
type RequestRepository interface {
	// Add persists a new request aggregate. Returns ConflictError when
	// the receiver already holds a request for the donation.
	Add(ctx context.Context, aggregate *request.Request) error

	// Update persists changes to an existing request aggregate.
	Update(ctx context.Context, aggregate *request.Request) error

	// Get retrieves a request by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*request.Request, error)

	// Delete removes a single request, used when a receiver cancels.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteAllForDonation removes every request referencing the given
	// donation, the cascade half of donation deletion.
	DeleteAllForDonation(ctx context.Context, donationID kernel.UUID) error
}
