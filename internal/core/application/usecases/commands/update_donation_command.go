package commands

import (
	"errors"
	"time"

	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrUpdateDonationCommandIsNotConstructed = errors.New(
	"UpdateDonationCommand must be created via NewUpdateDonationCommand constructor",
)

// UpdateDonationCommand represents a donor editing an existing listing.
// Every field is optional: nil means leave unchanged. Slices follow the
// same convention, so a caller clearing allergens passes an empty
// non-nil slice.
type UpdateDonationCommand struct { //nolint:recvcheck //using for validation
	donationID kernel.UUID
	donorID    kernel.UUID

	title          *string
	description    *string
	foodType       *donation.FoodType
	quantity       *string
	pickupLocation *string
	imageURL       *string
	location       *kernel.Location
	bestBefore     *time.Time
	allergens      []string
	dietaryInfo    []string

	guard guard.ConstructorGuard
}

// NewUpdateDonationCommand creates a command to edit a donation. Field
// content rules live in the aggregate's setters; the command only checks
// identifiers and the optional location.
func NewUpdateDonationCommand(
	donationID kernel.UUID,
	donorID kernel.UUID,
	title *string,
	description *string,
	foodType *donation.FoodType,
	quantity *string,
	pickupLocation *string,
	imageURL *string,
	location *kernel.Location,
	bestBefore *time.Time,
	allergens []string,
	dietaryInfo []string,
) (UpdateDonationCommand, error) {
	cmd := UpdateDonationCommand{
		title:          title,
		description:    description,
		foodType:       foodType,
		quantity:       quantity,
		pickupLocation: pickupLocation,
		imageURL:       imageURL,
		location:       location,
		bestBefore:     bestBefore,
		allergens:      allergens,
		dietaryInfo:    dietaryInfo,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDonationID(donationID),
		cmd.setDonorID(donorID),
		cmd.validateLocation(),
	); err != nil {
		return UpdateDonationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDonationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDonationCommandIsNotConstructed)
}

func (c UpdateDonationCommand) DonationID() kernel.UUID      { return c.donationID }
func (c UpdateDonationCommand) DonorID() kernel.UUID         { return c.donorID }
func (c UpdateDonationCommand) Title() *string               { return c.title }
func (c UpdateDonationCommand) Description() *string         { return c.description }
func (c UpdateDonationCommand) FoodType() *donation.FoodType { return c.foodType }
func (c UpdateDonationCommand) Quantity() *string            { return c.quantity }
func (c UpdateDonationCommand) PickupLocation() *string      { return c.pickupLocation }
func (c UpdateDonationCommand) ImageURL() *string            { return c.imageURL }
func (c UpdateDonationCommand) Location() *kernel.Location   { return c.location }
func (c UpdateDonationCommand) BestBefore() *time.Time       { return c.bestBefore }
func (c UpdateDonationCommand) Allergens() []string          { return c.allergens }
func (c UpdateDonationCommand) DietaryInfo() []string        { return c.dietaryInfo }

func (c *UpdateDonationCommand) setDonationID(donationID kernel.UUID) error {
	if err := donationID.Validate(); err != nil {
		return err
	}
	c.donationID = donationID
	return nil
}

func (c *UpdateDonationCommand) setDonorID(donorID kernel.UUID) error {
	if err := donorID.Validate(); err != nil {
		return err
	}
	c.donorID = donorID
	return nil
}

func (c *UpdateDonationCommand) validateLocation() error {
	if c.location == nil {
		return nil
	}
	return c.location.Validate()
}
