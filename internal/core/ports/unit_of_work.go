package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each operation.
// This ensures proper isolation between concurrent calls.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents the transaction boundary of one coordinator
// operation. Every write that touches both a donation and a request must
// run inside a single unit of work so the donation's derived status and
// the request mutation land atomically.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// DonationRepository returns a DonationRepository bound to the
	// current transaction.
	DonationRepository() DonationRepository

	// RequestRepository returns a RequestRepository bound to the
	// current transaction.
	RequestRepository() RequestRepository
}
