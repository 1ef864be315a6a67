package ports

import (
	"context"
	"time"

	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"
)

// DonationRepository defines the persistence contract for donation
// aggregates.
type DonationRepository interface {
	// Add persists a new donation aggregate.
	Add(ctx context.Context, aggregate *donation.Donation) error

	// Update persists changes to an existing donation aggregate.
	Update(ctx context.Context, aggregate *donation.Donation) error

	// Get retrieves a donation by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*donation.Donation, error)

	// GetForUpdate retrieves a donation and locks its row for the
	// duration of the surrounding transaction. Lifecycle transitions that
	// read-then-write the status must use this so concurrent approvals
	// against the same donation are linearized.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*donation.Donation, error)

	// Delete removes a donation. Request cleanup is the caller's job
	// within the same unit of work.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllPastBestBefore retrieves non-terminal donations whose
	// bestBefore timestamp lies before the given instant. Used by the
	// expiry sweep.
	GetAllPastBestBefore(ctx context.Context, instant time.Time) ([]*donation.Donation, error)
}
