package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrCancelRequestCommandIsNotConstructed = errors.New(
	"CancelRequestCommand must be created via NewCancelRequestCommand constructor",
)

// CancelRequestCommand represents a receiver withdrawing their own
// request.
type CancelRequestCommand struct { //nolint:recvcheck //using for validation
	requestID  kernel.UUID
	receiverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelRequestCommand creates a command for a receiver to cancel
// their request.
func NewCancelRequestCommand(requestID kernel.UUID, receiverID kernel.UUID) (CancelRequestCommand, error) {
	cmd := CancelRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setReceiverID(receiverID),
	); err != nil {
		return CancelRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelRequestCommand) Validate() error {
	return c.guard.Validate(ErrCancelRequestCommandIsNotConstructed)
}

func (c CancelRequestCommand) RequestID() kernel.UUID  { return c.requestID }
func (c CancelRequestCommand) ReceiverID() kernel.UUID { return c.receiverID }

func (c *CancelRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	c.requestID = requestID
	return nil
}

func (c *CancelRequestCommand) setReceiverID(receiverID kernel.UUID) error {
	if err := receiverID.Validate(); err != nil {
		return err
	}
	c.receiverID = receiverID
	return nil
}
