package commands

import (
	"errors"
	"fmt"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"
	"foodbridge/internal/pkg/guard"
)

var ErrRespondToRequestCommandIsNotConstructed = errors.New(
	"RespondToRequestCommand must be created via NewRespondToRequestCommand constructor",
)

// Decision is the donor's verdict on a pending request.
type Decision int

const (
	DecisionUnknown Decision = iota
	Approve
	Reject
)

// DecisionFromString parses a decision supplied by the API layer.
// Accepts the request status strings the original API used.
func DecisionFromString(s string) (Decision, error) {
	switch s {
	case "Approved":
		return Approve, nil
	case "Rejected":
		return Reject, nil
	default:
		return DecisionUnknown, errs.NewValidationErrorWithCause("status",
			fmt.Errorf("%q is not a valid decision", s))
	}
}

// Validate checks membership in the closed decision set.
func (d Decision) Validate() error {
	if d != Approve && d != Reject {
		return errs.NewValidationErrorWithCause("decision",
			fmt.Errorf("%d is not a valid decision", d))
	}
	return nil
}

// String implements fmt.Stringer.
func (d Decision) String() string {
	switch d {
	case Approve:
		return "Approve"
	case Reject:
		return "Reject"
	default:
		return "Unknown"
	}
}

// RespondToRequestCommand represents the donor approving or rejecting a
// pending request. On approval an optional delivery person may be
// assigned at the same time.
type RespondToRequestCommand struct { //nolint:recvcheck //using for validation
	requestID        kernel.UUID
	donorID          kernel.UUID
	decision         Decision
	deliveryPersonID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewRespondToRequestCommand creates a command carrying the donor's
// decision. deliveryPersonID is only meaningful for Approve and may be
// nil.
func NewRespondToRequestCommand(
	requestID kernel.UUID,
	donorID kernel.UUID,
	decision Decision,
	deliveryPersonID *kernel.UUID,
) (RespondToRequestCommand, error) {
	cmd := RespondToRequestCommand{
		deliveryPersonID: deliveryPersonID,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setDonorID(donorID),
		cmd.setDecision(decision),
		cmd.validateDeliveryPerson(),
	); err != nil {
		return RespondToRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RespondToRequestCommand) Validate() error {
	return c.guard.Validate(ErrRespondToRequestCommandIsNotConstructed)
}

func (c RespondToRequestCommand) RequestID() kernel.UUID { return c.requestID }
func (c RespondToRequestCommand) DonorID() kernel.UUID   { return c.donorID }
func (c RespondToRequestCommand) Decision() Decision     { return c.decision }

func (c RespondToRequestCommand) DeliveryPersonID() *kernel.UUID {
	return c.deliveryPersonID
}

func (c *RespondToRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	c.requestID = requestID
	return nil
}

func (c *RespondToRequestCommand) setDonorID(donorID kernel.UUID) error {
	if err := donorID.Validate(); err != nil {
		return err
	}
	c.donorID = donorID
	return nil
}

func (c *RespondToRequestCommand) setDecision(decision Decision) error {
	if err := decision.Validate(); err != nil {
		return err
	}
	c.decision = decision
	return nil
}

func (c *RespondToRequestCommand) validateDeliveryPerson() error {
	if c.deliveryPersonID == nil {
		return nil
	}
	return c.deliveryPersonID.Validate()
}
