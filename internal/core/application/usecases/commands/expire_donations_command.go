package commands

import (
	"errors"
	"time"

	"foodbridge/internal/pkg/errs"
	"foodbridge/internal/pkg/guard"
)

var ErrExpireDonationsCommandIsNotConstructed = errors.New(
	"ExpireDonationsCommand must be created via NewExpireDonationsCommand constructor",
)

// ExpireDonationsCommand expires every active donation whose best-before
// lies before the given instant. Issued periodically by the sweep job.
type ExpireDonationsCommand struct { //nolint:recvcheck //using for validation
	instant time.Time

	guard guard.ConstructorGuard
}

// NewExpireDonationsCommand creates a sweep command with the cutoff
// instant.
func NewExpireDonationsCommand(instant time.Time) (ExpireDonationsCommand, error) {
	cmd := ExpireDonationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setInstant(instant); err != nil {
		return ExpireDonationsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireDonationsCommand) Validate() error {
	return c.guard.Validate(ErrExpireDonationsCommandIsNotConstructed)
}

func (c ExpireDonationsCommand) Instant() time.Time { return c.instant }

func (c *ExpireDonationsCommand) setInstant(instant time.Time) error {
	if instant.IsZero() {
		return errs.NewValidationError("instant")
	}
	c.instant = instant
	return nil
}
