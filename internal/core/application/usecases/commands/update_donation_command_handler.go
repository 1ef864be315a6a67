package commands

import (
	"context"
	"errors"

	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/pkg/errs"
)

// UpdateDonationCommandHandler handles a donor editing their listing.
// Edits go through the aggregate's status-gated setters, so a donation
// already in transit or delivered rejects every change with
// InvalidStateError.
type UpdateDonationCommandHandler struct {
	uowFactory DonationUoWFactory
}

// NewUpdateDonationCommandHandler creates a handler for donation edits.
func NewUpdateDonationCommandHandler(uowFactory DonationUoWFactory) UpdateDonationCommandHandler {
	return UpdateDonationCommandHandler{uowFactory: uowFactory}
}

// Handle applies the requested field changes. The caller must own the
// donation.
func (h UpdateDonationCommandHandler) Handle(ctx context.Context, cmd UpdateDonationCommand) error {
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

	d, err := donationRepo.Get(ctx, cmd.DonationID())
	if err != nil {
		return err
	}

	if !d.IsOwnedBy(cmd.DonorID()) {
		return errs.NewForbiddenError("edit this donation")
	}

	if err = applyFieldChanges(d, cmd); err != nil {
		return err
	}

	if err = donationRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func applyFieldChanges(d *donation.Donation, cmd UpdateDonationCommand) error {
	var errList []error

	if cmd.Title() != nil {
		errList = append(errList, d.ChangeTitle(*cmd.Title()))
	}
	if cmd.Description() != nil {
		errList = append(errList, d.ChangeDescription(*cmd.Description()))
	}
	if cmd.FoodType() != nil {
		errList = append(errList, d.ChangeFoodType(*cmd.FoodType()))
	}
	if cmd.Quantity() != nil {
		errList = append(errList, d.ChangeQuantity(*cmd.Quantity()))
	}
	if cmd.PickupLocation() != nil {
		errList = append(errList, d.ChangePickupLocation(*cmd.PickupLocation()))
	}
	if cmd.ImageURL() != nil {
		errList = append(errList, d.SetImageURL(*cmd.ImageURL()))
	}
	if cmd.Location() != nil {
		errList = append(errList, d.SetLocation(*cmd.Location()))
	}
	if cmd.BestBefore() != nil {
		errList = append(errList, d.SetBestBefore(*cmd.BestBefore()))
	}
	if cmd.Allergens() != nil {
		errList = append(errList, d.SetAllergens(cmd.Allergens()))
	}
	if cmd.DietaryInfo() != nil {
		errList = append(errList, d.SetDietaryInfo(cmd.DietaryInfo()))
	}

	return errors.Join(errList...)
}
