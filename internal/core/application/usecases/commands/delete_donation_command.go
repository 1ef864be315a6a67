package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrDeleteDonationCommandIsNotConstructed = errors.New(
	"DeleteDonationCommand must be created via NewDeleteDonationCommand constructor",
)

// DeleteDonationCommand represents a donor removing their listing
// entirely, together with every request that references it.
type DeleteDonationCommand struct { //nolint:recvcheck //using for validation
	donationID kernel.UUID
	donorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteDonationCommand creates a command for a donor to delete a
// donation.
func NewDeleteDonationCommand(donationID kernel.UUID, donorID kernel.UUID) (DeleteDonationCommand, error) {
	cmd := DeleteDonationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDonationID(donationID),
		cmd.setDonorID(donorID),
	); err != nil {
		return DeleteDonationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteDonationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDonationCommandIsNotConstructed)
}

func (c DeleteDonationCommand) DonationID() kernel.UUID { return c.donationID }
func (c DeleteDonationCommand) DonorID() kernel.UUID    { return c.donorID }

func (c *DeleteDonationCommand) setDonationID(donationID kernel.UUID) error {
	if err := donationID.Validate(); err != nil {
		return err
	}
	c.donationID = donationID
	return nil
}

func (c *DeleteDonationCommand) setDonorID(donorID kernel.UUID) error {
	if err := donorID.Validate(); err != nil {
		return err
	}
	c.donorID = donorID
	return nil
}
