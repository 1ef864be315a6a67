package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"
	"foodbridge/internal/pkg/guard"
)

var ErrAdvanceDeliveryCommandIsNotConstructed = errors.New(
	"AdvanceDeliveryCommand must be created via NewAdvanceDeliveryCommand constructor",
)

// Stage is the delivery milestone an assigned delivery person reports.
type Stage int

const (
	StageUnknown Stage = iota
	StageInTransit
	StageCompleted
)

// StageFromString parses the milestone as it appears on the wire.
func StageFromString(s string) (Stage, error) {
	switch s {
	case "In Transit":
		return StageInTransit, nil
	case "Completed":
		return StageCompleted, nil
	default:
		return StageUnknown, errs.NewValidationError("stage")
	}
}

// Validate checks that the stage is one of the reportable milestones.
func (s Stage) Validate() error {
	if s != StageInTransit && s != StageCompleted {
		return errs.NewValidationError("stage")
	}
	return nil
}

// AdvanceDeliveryCommand represents the assigned delivery person
// reporting a pickup or a drop-off.
type AdvanceDeliveryCommand struct { //nolint:recvcheck //using for validation
	requestID        kernel.UUID
	deliveryPersonID kernel.UUID
	stage            Stage

	guard guard.ConstructorGuard
}

// NewAdvanceDeliveryCommand creates a command for a delivery person to
// report progress on an approved request.
func NewAdvanceDeliveryCommand(
	requestID kernel.UUID,
	deliveryPersonID kernel.UUID,
	stage Stage,
) (AdvanceDeliveryCommand, error) {
	cmd := AdvanceDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setDeliveryPersonID(deliveryPersonID),
		cmd.setStage(stage),
	); err != nil {
		return AdvanceDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveryCommandIsNotConstructed)
}

func (c AdvanceDeliveryCommand) RequestID() kernel.UUID        { return c.requestID }
func (c AdvanceDeliveryCommand) DeliveryPersonID() kernel.UUID { return c.deliveryPersonID }
func (c AdvanceDeliveryCommand) Stage() Stage                  { return c.stage }

func (c *AdvanceDeliveryCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	c.requestID = requestID
	return nil
}

func (c *AdvanceDeliveryCommand) setDeliveryPersonID(deliveryPersonID kernel.UUID) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}
	c.deliveryPersonID = deliveryPersonID
	return nil
}

func (c *AdvanceDeliveryCommand) setStage(stage Stage) error {
	if err := stage.Validate(); err != nil {
		return err
	}
	c.stage = stage
	return nil
}
