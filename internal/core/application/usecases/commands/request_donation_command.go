package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrRequestDonationCommandIsNotConstructed = errors.New(
	"RequestDonationCommand must be created via NewRequestDonationCommand constructor",
)

// RequestDonationCommand represents a receiver claiming an Available
// donation. The message is optional; the aggregate substitutes a default.
type RequestDonationCommand struct { //nolint:recvcheck //using for validation
	requestID  kernel.UUID
	donationID kernel.UUID
	receiverID kernel.UUID
	message    string

	guard guard.ConstructorGuard
}

// NewRequestDonationCommand creates a command for a receiver to request
// a donation.
func NewRequestDonationCommand(
	requestID kernel.UUID,
	donationID kernel.UUID,
	receiverID kernel.UUID,
	message string,
) (RequestDonationCommand, error) {
	cmd := RequestDonationCommand{
		message: message,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setDonationID(donationID),
		cmd.setReceiverID(receiverID),
	); err != nil {
		return RequestDonationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestDonationCommand) Validate() error {
	return c.guard.Validate(ErrRequestDonationCommandIsNotConstructed)
}

func (c RequestDonationCommand) RequestID() kernel.UUID  { return c.requestID }
func (c RequestDonationCommand) DonationID() kernel.UUID { return c.donationID }
func (c RequestDonationCommand) ReceiverID() kernel.UUID { return c.receiverID }
func (c RequestDonationCommand) Message() string         { return c.message }

func (c *RequestDonationCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	c.requestID = requestID
	return nil
}

func (c *RequestDonationCommand) setDonationID(donationID kernel.UUID) error {
	if err := donationID.Validate(); err != nil {
		return err
	}
	c.donationID = donationID
	return nil
}

func (c *RequestDonationCommand) setReceiverID(receiverID kernel.UUID) error {
	if err := receiverID.Validate(); err != nil {
		return err
	}
	c.receiverID = receiverID
	return nil
}
