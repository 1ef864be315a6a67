package commands_test

import (
	"testing"

	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelRequestCommand_ValidInput(t *testing.T) {
	requestID := kernel.NewUUID()
	receiverID := kernel.NewUUID()

	cmd, err := commands.NewCancelRequestCommand(requestID, receiverID)

	require.NoError(t, err)
	assert.Equal(t, requestID, cmd.RequestID())
	assert.Equal(t, receiverID, cmd.ReceiverID())
	require.NoError(t, cmd.Validate())
}

func TestNewCancelRequestCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewCancelRequestCommand(kernel.UUID{}, kernel.UUID{})

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCancelRequestCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CancelRequestCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCancelRequestCommandIsNotConstructed)
}
