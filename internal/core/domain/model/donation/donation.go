package donation

import (
	"errors"
	"fmt"
	"time"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"
)

var (
	// ErrDonationIsNotConstructed is returned when a Donation instance was
	// not created through NewDonation or RestoreDonation.
	ErrDonationIsNotConstructed = errors.New("Donation must be created via NewDonation constructor")

	errDonationNotEditable = errors.New("cannot edit donation currently in progress")
)

const (
	maxTitleLength       = 100
	maxDescriptionLength = 500
)

// Donation is the aggregate root for a donated-food listing. It owns the
// lifecycle status projection; all status changes go through the
// transition methods so the state machine stays closed.
type Donation struct {
	id      kernel.UUID
	donorID kernel.UUID

	title          string
	description    string
	foodType       FoodType
	quantity       string
	pickupLocation string

	// location is nil when the donor supplied no geocoordinate.
	location    *kernel.Location
	bestBefore  *time.Time
	imageURL    string
	allergens   []string
	dietaryInfo []string

	status    Status
	createdAt time.Time

	isConstructed bool
}

// NewDonation creates an Available donation owned by donorID. Required
// fields are validated; optional attributes are attached afterwards with
// the setter methods while the donation is still editable.
func NewDonation(
	id kernel.UUID,
	donorID kernel.UUID,
	title string,
	description string,
	foodType FoodType,
	quantity string,
	pickupLocation string,
) (*Donation, error) {
	d := &Donation{
		status:        Available,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setDonorID(donorID),
		d.setTitle(title),
		d.setDescription(description),
		d.setFoodType(foodType),
		d.setQuantity(quantity),
		d.setPickupLocation(pickupLocation),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDonation reconstructs a donation from persistence without
// re-running creation-time defaults. The stored status must be valid.
func RestoreDonation(
	id kernel.UUID,
	donorID kernel.UUID,
	title string,
	description string,
	foodType FoodType,
	quantity string,
	pickupLocation string,
	location *kernel.Location,
	bestBefore *time.Time,
	imageURL string,
	allergens []string,
	dietaryInfo []string,
	status Status,
	createdAt time.Time,
) (*Donation, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	d := &Donation{
		status:        status,
		createdAt:     createdAt,
		location:      location,
		bestBefore:    bestBefore,
		imageURL:      imageURL,
		allergens:     allergens,
		dietaryInfo:   dietaryInfo,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setDonorID(donorID),
		d.setTitle(title),
		d.setDescription(description),
		d.setFoodType(foodType),
		d.setQuantity(quantity),
		d.setPickupLocation(pickupLocation),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the instance came from a constructor.
func (d *Donation) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDonationIsNotConstructed
	}
	return nil
}

// IsEqual compares donations by identifier.
func (d *Donation) IsEqual(other *Donation) bool {
	return other != nil && d.id.IsEqual(other.id)
}

func (d *Donation) ID() kernel.UUID            { return d.id }
func (d *Donation) DonorID() kernel.UUID       { return d.donorID }
func (d *Donation) Title() string              { return d.title }
func (d *Donation) Description() string        { return d.description }
func (d *Donation) FoodType() FoodType         { return d.foodType }
func (d *Donation) Quantity() string           { return d.quantity }
func (d *Donation) PickupLocation() string     { return d.pickupLocation }
func (d *Donation) Location() *kernel.Location { return d.location }
func (d *Donation) BestBefore() *time.Time     { return d.bestBefore }
func (d *Donation) ImageURL() string           { return d.imageURL }
func (d *Donation) Allergens() []string        { return d.allergens }
func (d *Donation) DietaryInfo() []string      { return d.dietaryInfo }
func (d *Donation) Status() Status             { return d.status }
func (d *Donation) CreatedAt() time.Time       { return d.createdAt }

// IsOwnedBy reports whether actorID is the donor.
func (d *Donation) IsOwnedBy(actorID kernel.UUID) bool {
	return d.donorID.IsEqual(actorID)
}

// Reserve marks the donation Pending when the donor approves a request.
// Fails with InvalidStateError unless the donation is Available, which
// makes a second concurrent approval lose deterministically.
func (d *Donation) Reserve() error {
	newStatus, err := d.status.Reserve()
	if err != nil {
		return err
	}
	d.status = newStatus
	return nil
}

// Release reverts a Pending donation to Available, reopening it for new
// requests after the approved request is cancelled.
func (d *Donation) Release() error {
	newStatus, err := d.status.Release()
	if err != nil {
		return err
	}
	d.status = newStatus
	return nil
}

// StartTransit moves the donation to InTransit on pickup.
func (d *Donation) StartTransit() error {
	newStatus, err := d.status.StartTransit()
	if err != nil {
		return err
	}
	d.status = newStatus
	return nil
}

// Deliver moves the donation to its terminal Delivered state.
func (d *Donation) Deliver() error {
	newStatus, err := d.status.Deliver()
	if err != nil {
		return err
	}
	d.status = newStatus
	return nil
}

// Expire moves any non-terminal donation to Expired.
func (d *Donation) Expire() error {
	newStatus, err := d.status.Expire()
	if err != nil {
		return err
	}
	d.status = newStatus
	return nil
}

// Editable setters. Donor edits are permitted only while the donation is
// Available or Pending; afterwards the handover is in progress and the
// listing is frozen.

func (d *Donation) ensureEditable() error {
	if !d.status.IsEditable() {
		return errs.NewInvalidStateErrorWithCause("donation status", errDonationNotEditable)
	}
	return nil
}

func (d *Donation) ChangeTitle(title string) error {
	if err := d.ensureEditable(); err != nil {
		return err
	}
	return d.setTitle(title)
}

func (d *Donation) ChangeDescription(description string) error {
	if err := d.ensureEditable(); err != nil {
		return err
	}
	return d.setDescription(description)
}

func (d *Donation) ChangeFoodType(foodType FoodType) error {
	if err := d.ensureEditable(); err != nil {
		return err
	}
	return d.setFoodType(foodType)
}

func (d *Donation) ChangeQuantity(quantity string) error {
	if err := d.ensureEditable(); err != nil {
		return err
	}
	return d.setQuantity(quantity)
}

func (d *Donation) ChangePickupLocation(pickupLocation string) error {
	if err := d.ensureEditable(); err != nil {
		return err
	}
	return d.setPickupLocation(pickupLocation)
}

func (d *Donation) SetLocation(location kernel.Location) error {
	if err := d.ensureEditable(); err != nil {
		return err
	}
	if err := location.Validate(); err != nil {
		return err
	}
	d.location = &location
	return nil
}

func (d *Donation) SetBestBefore(bestBefore time.Time) error {
	if err := d.ensureEditable(); err != nil {
		return err
	}
	d.bestBefore = &bestBefore
	return nil
}

// SetImageURL stores the opaque image reference supplied by the external
// upload collaborator, verbatim.
func (d *Donation) SetImageURL(imageURL string) error {
	if err := d.ensureEditable(); err != nil {
		return err
	}
	d.imageURL = imageURL
	return nil
}

func (d *Donation) SetAllergens(allergens []string) error {
	if err := d.ensureEditable(); err != nil {
		return err
	}
	d.allergens = allergens
	return nil
}

func (d *Donation) SetDietaryInfo(dietaryInfo []string) error {
	if err := d.ensureEditable(); err != nil {
		return err
	}
	d.dietaryInfo = dietaryInfo
	return nil
}

func (d *Donation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Donation) setDonorID(donorID kernel.UUID) error {
	if err := donorID.Validate(); err != nil {
		return err
	}
	d.donorID = donorID
	return nil
}

func (d *Donation) setTitle(title string) error {
	if title == "" {
		return errs.NewValidationError("title")
	}
	if len(title) > maxTitleLength {
		return errs.NewValidationErrorWithCause("title",
			fmt.Errorf("must not exceed %d characters", maxTitleLength))
	}
	d.title = title
	return nil
}

func (d *Donation) setDescription(description string) error {
	if description == "" {
		return errs.NewValidationError("description")
	}
	if len(description) > maxDescriptionLength {
		return errs.NewValidationErrorWithCause("description",
			fmt.Errorf("must not exceed %d characters", maxDescriptionLength))
	}
	d.description = description
	return nil
}

func (d *Donation) setFoodType(foodType FoodType) error {
	if err := foodType.Validate(); err != nil {
		return err
	}
	d.foodType = foodType
	return nil
}

func (d *Donation) setQuantity(quantity string) error {
	if quantity == "" {
		return errs.NewValidationError("quantity")
	}
	d.quantity = quantity
	return nil
}

func (d *Donation) setPickupLocation(pickupLocation string) error {
	if pickupLocation == "" {
		return errs.NewValidationError("pickupLocation")
	}
	d.pickupLocation = pickupLocation
	return nil
}
