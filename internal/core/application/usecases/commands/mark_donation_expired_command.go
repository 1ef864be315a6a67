package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrMarkDonationExpiredCommandIsNotConstructed = errors.New(
	"MarkDonationExpiredCommand must be created via NewMarkDonationExpiredCommand constructor",
)

// MarkDonationExpiredCommand marks a single donation as past its
// best-before time.
type MarkDonationExpiredCommand struct { //nolint:recvcheck //using for validation
	donationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDonationExpiredCommand creates a command to expire one
// donation.
func NewMarkDonationExpiredCommand(donationID kernel.UUID) (MarkDonationExpiredCommand, error) {
	cmd := MarkDonationExpiredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDonationID(donationID); err != nil {
		return MarkDonationExpiredCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDonationExpiredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDonationExpiredCommandIsNotConstructed)
}

func (c MarkDonationExpiredCommand) DonationID() kernel.UUID { return c.donationID }

func (c *MarkDonationExpiredCommand) setDonationID(donationID kernel.UUID) error {
	if err := donationID.Validate(); err != nil {
		return err
	}
	c.donationID = donationID
	return nil
}
