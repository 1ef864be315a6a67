package commands

import (
	"context"
	"errors"

	"foodbridge/internal/core/domain/model/donation"
)

// CreateDonationCommandHandler handles the business logic for listing a
// new donation. The donation starts Available and is open for requests
// immediately after commit.
type CreateDonationCommandHandler struct {
	uowFactory DonationUoWFactory
}

// NewCreateDonationCommandHandler creates a handler for donation
// creation operations.
func NewCreateDonationCommandHandler(uowFactory DonationUoWFactory) CreateDonationCommandHandler {
	return CreateDonationCommandHandler{uowFactory: uowFactory}
}

// Handle processes the donation creation command. Builds the aggregate
// from the command's fields, attaching optional attributes, and persists
// it within a transaction.
func (h CreateDonationCommandHandler) Handle(ctx context.Context, cmd CreateDonationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d, err := donation.NewDonation(
		cmd.DonationID(),
		cmd.DonorID(),
		cmd.Title(),
		cmd.Description(),
		cmd.FoodType(),
		cmd.Quantity(),
		cmd.PickupLocation(),
	)
	if err != nil {
		return err
	}

	if err = applyOptionalAttributes(d, cmd); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DonationRepository().Add(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func applyOptionalAttributes(d *donation.Donation, cmd CreateDonationCommand) error {
	var errsList []error

	if cmd.ImageURL() != "" {
		errsList = append(errsList, d.SetImageURL(cmd.ImageURL()))
	}
	if loc := cmd.Location(); loc != nil {
		errsList = append(errsList, d.SetLocation(*loc))
	}
	if bb := cmd.BestBefore(); bb != nil {
		errsList = append(errsList, d.SetBestBefore(*bb))
	}
	if cmd.Allergens() != nil {
		errsList = append(errsList, d.SetAllergens(cmd.Allergens()))
	}
	if cmd.DietaryInfo() != nil {
		errsList = append(errsList, d.SetDietaryInfo(cmd.DietaryInfo()))
	}

	return errors.Join(errsList...)
}
