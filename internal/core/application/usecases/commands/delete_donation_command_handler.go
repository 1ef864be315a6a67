package commands

import (
	"context"

	"foodbridge/internal/pkg/errs"
)

// DeleteDonationCommandHandler handles a donor removing their listing.
// All requests referencing the donation are deleted in the same
// transaction, so no request ever points at a missing donation.
type DeleteDonationCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteDonationCommandHandler creates a handler for donation
// deletions.
func NewDeleteDonationCommandHandler(uowFactory UoWFactory) DeleteDonationCommandHandler {
	return DeleteDonationCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the donation and its requests. The caller must own the
// donation.
func (h DeleteDonationCommandHandler) Handle(ctx context.Context, cmd DeleteDonationCommand) error {
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

	if !d.IsOwnedBy(cmd.DonorID()) {
		return errs.NewForbiddenError("delete this donation")
	}

	if err = uow.RequestRepository().DeleteAllForDonation(ctx, d.ID()); err != nil {
		return err
	}

	if err = donationRepo.Delete(ctx, d.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
