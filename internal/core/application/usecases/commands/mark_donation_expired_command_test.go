package commands_test

import (
	"testing"

	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMarkDonationExpiredCommand_ValidInput(t *testing.T) {
	donationID := kernel.NewUUID()

	cmd, err := commands.NewMarkDonationExpiredCommand(donationID)

	require.NoError(t, err)
	assert.Equal(t, donationID, cmd.DonationID())
	require.NoError(t, cmd.Validate())
}

func TestNewMarkDonationExpiredCommand_InvalidDonationID(t *testing.T) {
	_, err := commands.NewMarkDonationExpiredCommand(kernel.UUID{})

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestMarkDonationExpiredCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.MarkDonationExpiredCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrMarkDonationExpiredCommandIsNotConstructed)
}
