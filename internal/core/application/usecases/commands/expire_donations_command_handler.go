package commands

import (
	"context"
)

// ExpireDonationsCommandHandler runs the periodic expiry sweep. All
// donations past their best-before are expired in one transaction; rows
// already terminal are skipped rather than failed, since a donation may
// be delivered between the sweep's read and its write.
type ExpireDonationsCommandHandler struct {
	uowFactory DonationUoWFactory
}

// NewExpireDonationsCommandHandler creates a handler for the expiry
// sweep.
func NewExpireDonationsCommandHandler(uowFactory DonationUoWFactory) ExpireDonationsCommandHandler {
	return ExpireDonationsCommandHandler{uowFactory: uowFactory}
}

// Handle expires every stale donation and reports how many rows changed.
func (h ExpireDonationsCommandHandler) Handle(ctx context.Context, cmd ExpireDonationsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	donationRepo := uow.DonationRepository()

	stale, err := donationRepo.GetAllPastBestBefore(ctx, cmd.Instant())
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, d := range stale {
		if d.Status().IsTerminal() {
			continue
		}

		if err = d.Expire(); err != nil {
			return 0, err
		}

		if err = donationRepo.Update(ctx, d); err != nil {
			return 0, err
		}

		expired++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return expired, nil
}
