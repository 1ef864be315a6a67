package commands_test

import (
	"testing"

	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteDonationCommand_ValidInput(t *testing.T) {
	donationID := kernel.NewUUID()
	donorID := kernel.NewUUID()

	cmd, err := commands.NewDeleteDonationCommand(donationID, donorID)

	require.NoError(t, err)
	assert.Equal(t, donationID, cmd.DonationID())
	assert.Equal(t, donorID, cmd.DonorID())
	require.NoError(t, cmd.Validate())
}

func TestNewDeleteDonationCommand_InvalidDonorID(t *testing.T) {
	_, err := commands.NewDeleteDonationCommand(kernel.NewUUID(), kernel.UUID{})

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestDeleteDonationCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.DeleteDonationCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrDeleteDonationCommandIsNotConstructed)
}
