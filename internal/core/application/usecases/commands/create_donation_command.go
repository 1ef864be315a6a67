package commands

import (
	"errors"
	"time"

	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrCreateDonationCommandIsNotConstructed = errors.New(
	"CreateDonationCommand must be created via NewCreateDonationCommand constructor",
)

// CreateDonationCommand represents a donor listing new food for
// donation. Required fields are validated on construction; optional
// attributes (geocoordinate, best-before, image reference, allergens,
// dietary info) may be zero.
type CreateDonationCommand struct { //nolint:recvcheck //using for validation
	donationID     kernel.UUID
	donorID        kernel.UUID
	title          string
	description    string
	foodType       donation.FoodType
	quantity       string
	pickupLocation string

	imageURL    string
	location    *kernel.Location
	bestBefore  *time.Time
	allergens   []string
	dietaryInfo []string

	guard guard.ConstructorGuard
}

// NewCreateDonationCommand creates a command to list a new donation.
// Field rules live in the donation aggregate; the command only checks
// identifiers and the optional location, deferring content validation to
// the handler's NewDonation call.
func NewCreateDonationCommand(
	donationID kernel.UUID,
	donorID kernel.UUID,
	title string,
	description string,
	foodType donation.FoodType,
	quantity string,
	pickupLocation string,
	imageURL string,
	location *kernel.Location,
	bestBefore *time.Time,
	allergens []string,
	dietaryInfo []string,
) (CreateDonationCommand, error) {
	cmd := CreateDonationCommand{
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
		return CreateDonationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDonationCommand) Validate() error {
	return c.guard.Validate(ErrCreateDonationCommandIsNotConstructed)
}

func (c CreateDonationCommand) DonationID() kernel.UUID     { return c.donationID }
func (c CreateDonationCommand) DonorID() kernel.UUID        { return c.donorID }
func (c CreateDonationCommand) Title() string               { return c.title }
func (c CreateDonationCommand) Description() string         { return c.description }
func (c CreateDonationCommand) FoodType() donation.FoodType { return c.foodType }
func (c CreateDonationCommand) Quantity() string            { return c.quantity }
func (c CreateDonationCommand) PickupLocation() string      { return c.pickupLocation }
func (c CreateDonationCommand) ImageURL() string            { return c.imageURL }
func (c CreateDonationCommand) Location() *kernel.Location  { return c.location }
func (c CreateDonationCommand) BestBefore() *time.Time      { return c.bestBefore }
func (c CreateDonationCommand) Allergens() []string         { return c.allergens }
func (c CreateDonationCommand) DietaryInfo() []string       { return c.dietaryInfo }

func (c *CreateDonationCommand) setDonationID(donationID kernel.UUID) error {
	if err := donationID.Validate(); err != nil {
		return err
	}
	c.donationID = donationID
	return nil
}

func (c *CreateDonationCommand) setDonorID(donorID kernel.UUID) error {
	if err := donorID.Validate(); err != nil {
		return err
	}
	c.donorID = donorID
	return nil
}

func (c *CreateDonationCommand) validateLocation() error {
	if c.location == nil {
		return nil
	}
	return c.location.Validate()
}
