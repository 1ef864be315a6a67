package request

import (
	"errors"
	"fmt"
	"time"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"
)

var (
	// ErrRequestIsNotConstructed is returned when a Request instance was
	// not created through NewRequest or RestoreRequest.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")
)

const maxMessageLength = 500

// DefaultMessage is stored when the receiver supplies no message.
const DefaultMessage = "I would like to request this donation."

// Request is the aggregate root for a receiver's claim on a donation.
// The donor reference is denormalized from the donation so the donor's
// inbox can be queried without a join on every ownership check.
type Request struct {
	id         kernel.UUID
	donationID kernel.UUID
	receiverID kernel.UUID
	donorID    kernel.UUID

	message string

	// deliveryPersonID is nil until the donor assigns a driver on approval.
	deliveryPersonID *kernel.UUID

	status      Status
	respondedAt *time.Time
	completedAt *time.Time
	createdAt   time.Time

	isConstructed bool
}

// NewRequest creates a Pending request from receiverID against the given
// donation. donorID must be the donation's owner; an empty message is
// replaced with DefaultMessage.
func NewRequest(
	id kernel.UUID,
	donationID kernel.UUID,
	receiverID kernel.UUID,
	donorID kernel.UUID,
	message string,
) (*Request, error) {
	r := &Request{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setDonationID(donationID),
		r.setReceiverID(receiverID),
		r.setDonorID(donorID),
		r.setMessage(message),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRequest reconstructs a request from persistence.
func RestoreRequest(
	id kernel.UUID,
	donationID kernel.UUID,
	receiverID kernel.UUID,
	donorID kernel.UUID,
	message string,
	deliveryPersonID *kernel.UUID,
	status Status,
	respondedAt *time.Time,
	completedAt *time.Time,
	createdAt time.Time,
) (*Request, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if deliveryPersonID != nil {
		if err := deliveryPersonID.Validate(); err != nil {
			return nil, err
		}
	}

	r := &Request{
		deliveryPersonID: deliveryPersonID,
		status:           status,
		respondedAt:      respondedAt,
		completedAt:      completedAt,
		createdAt:        createdAt,
		isConstructed:    true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setDonationID(donationID),
		r.setReceiverID(receiverID),
		r.setDonorID(donorID),
		r.setMessage(message),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the instance came from a constructor.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

// IsEqual compares requests by identifier.
func (r *Request) IsEqual(other *Request) bool {
	return other != nil && r.id.IsEqual(other.id)
}

func (r *Request) ID() kernel.UUID         { return r.id }
func (r *Request) DonationID() kernel.UUID { return r.donationID }
func (r *Request) ReceiverID() kernel.UUID { return r.receiverID }
func (r *Request) DonorID() kernel.UUID    { return r.donorID }
func (r *Request) Message() string         { return r.message }
func (r *Request) Status() Status          { return r.status }
func (r *Request) RespondedAt() *time.Time { return r.respondedAt }
func (r *Request) CompletedAt() *time.Time { return r.completedAt }
func (r *Request) CreatedAt() time.Time    { return r.createdAt }

// DeliveryPersonID returns the assigned driver, or nil before approval.
func (r *Request) DeliveryPersonID() *kernel.UUID {
	return r.deliveryPersonID
}

// IsOwnedBy reports whether actorID is the receiver who sent the request.
func (r *Request) IsOwnedBy(actorID kernel.UUID) bool {
	return r.receiverID.IsEqual(actorID)
}

// IsManagedBy reports whether actorID is the donor of the donation.
func (r *Request) IsManagedBy(actorID kernel.UUID) bool {
	return r.donorID.IsEqual(actorID)
}

// IsAssignedTo reports whether actorID is the assigned delivery person.
func (r *Request) IsAssignedTo(actorID kernel.UUID) bool {
	return r.deliveryPersonID != nil && r.deliveryPersonID.IsEqual(actorID)
}

// Approve marks the request Approved, stamps respondedAt, and assigns
// the optional delivery person.
func (r *Request) Approve(deliveryPersonID *kernel.UUID) error {
	if deliveryPersonID != nil {
		if err := deliveryPersonID.Validate(); err != nil {
			return err
		}
	}

	newStatus, err := r.status.Approve()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	r.status = newStatus
	r.respondedAt = &now
	r.deliveryPersonID = deliveryPersonID
	return nil
}

// Reject marks the request Rejected and stamps respondedAt.
func (r *Request) Reject() error {
	newStatus, err := r.status.Reject()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	r.status = newStatus
	r.respondedAt = &now
	return nil
}

// Cancel marks the request Cancelled. The receiver may cancel while the
// request is Pending, Approved, or Rejected; once the food is in
// transit the claim can no longer be withdrawn.
func (r *Request) Cancel() error {
	newStatus, err := r.status.Cancel()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// StartTransit marks the request InTransit.
func (r *Request) StartTransit() error {
	newStatus, err := r.status.StartTransit()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// Complete marks the request Completed and stamps completedAt.
func (r *Request) Complete() error {
	newStatus, err := r.status.Complete()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	r.status = newStatus
	r.completedAt = &now
	return nil
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setDonationID(donationID kernel.UUID) error {
	if err := donationID.Validate(); err != nil {
		return err
	}
	r.donationID = donationID
	return nil
}

func (r *Request) setReceiverID(receiverID kernel.UUID) error {
	if err := receiverID.Validate(); err != nil {
		return err
	}
	r.receiverID = receiverID
	return nil
}

func (r *Request) setDonorID(donorID kernel.UUID) error {
	if err := donorID.Validate(); err != nil {
		return err
	}
	r.donorID = donorID
	return nil
}

func (r *Request) setMessage(message string) error {
	if message == "" {
		message = DefaultMessage
	}
	if len(message) > maxMessageLength {
		return errs.NewValidationErrorWithCause("message",
			fmt.Errorf("must not exceed %d characters", maxMessageLength))
	}
	r.message = message
	return nil
}
