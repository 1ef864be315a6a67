package commands

import (
	"context"
)

// MarkDonationExpiredCommandHandler expires a single donation. The
// operation is idempotent against terminal states: an already Delivered
// or Expired donation is left untouched and no error is returned, so
// overlapping sweeps and manual calls cannot conflict.
type MarkDonationExpiredCommandHandler struct {
	uowFactory DonationUoWFactory
}

// NewMarkDonationExpiredCommandHandler creates a handler for expiring a
// donation.
func NewMarkDonationExpiredCommandHandler(uowFactory DonationUoWFactory) MarkDonationExpiredCommandHandler {
	return MarkDonationExpiredCommandHandler{uowFactory: uowFactory}
}

// Handle expires the donation if it is not already terminal.
func (h MarkDonationExpiredCommandHandler) Handle(ctx context.Context, cmd MarkDonationExpiredCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	donationRepo := uow.DonationRepository()

	d, err := donationRepo.GetForUpdate(ctx, cmd.DonationID())
	if err != nil {
		return err
	}

	if d.Status().IsTerminal() {
		return uow.Commit(ctx)
	}

	if err = d.Expire(); err != nil {
		return err
	}

	if err = donationRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
