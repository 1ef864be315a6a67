// Package commands contains the lifecycle coordinator: one command per
// state transition of the donation/request model. Each handler executes
// as a single unit of work — validation, status transition, persistence —
// and re-reads current entity state inside the transaction rather than
// trusting anything cached across calls.
package commands

import (
	"context"

	"foodbridge/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Handlers depend on the narrowest interface that covers the
// aggregates they touch.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DonationRepoFactory provides access to the donation repository
	// within a transaction.
	DonationRepoFactory interface {
		DonationRepository() ports.DonationRepository
	}

	// RequestRepoFactory provides access to the request repository
	// within a transaction.
	RequestRepoFactory interface {
		RequestRepository() ports.RequestRepository
	}

	// DonationUoW manages transactions for donation-only operations.
	DonationUoW interface {
		TxManager
		DonationRepoFactory
	}

	// DonationUoWFactory creates donation unit of work instances.
	DonationUoWFactory interface {
		Create() DonationUoW
	}

	// UoW manages transactions across both donation and request
	// aggregates. Used by every command that must keep the donation's
	// derived status and a request mutation atomic.
	UoW interface {
		TxManager
		DonationRepoFactory
		RequestRepoFactory
	}

	// UoWFactory creates unit of work instances for cross-aggregate
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
