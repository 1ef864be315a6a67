package commands_test

import (
	"testing"

	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecisionFromString(t *testing.T) {
	t.Run("approved", func(t *testing.T) {
		d, err := commands.DecisionFromString("Approved")
		require.NoError(t, err)
		assert.Equal(t, commands.Approve, d)
	})

	t.Run("rejected", func(t *testing.T) {
		d, err := commands.DecisionFromString("Rejected")
		require.NoError(t, err)
		assert.Equal(t, commands.Reject, d)
	})

	t.Run("anything else is rejected", func(t *testing.T) {
		for _, s := range []string{"", "approved", "Pending", "Completed"} {
			_, err := commands.DecisionFromString(s)
			require.Error(t, err, s)
			assert.ErrorIs(t, err, errs.ErrValidation)
		}
	})
}

func TestNewRespondToRequestCommand_ValidInput(t *testing.T) {
	requestID := kernel.NewUUID()
	donorID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	cmd, err := commands.NewRespondToRequestCommand(requestID, donorID, commands.Approve, &driverID)

	require.NoError(t, err)
	assert.Equal(t, requestID, cmd.RequestID())
	assert.Equal(t, donorID, cmd.DonorID())
	assert.Equal(t, commands.Approve, cmd.Decision())
	require.NotNil(t, cmd.DeliveryPersonID())
	assert.True(t, cmd.DeliveryPersonID().IsEqual(driverID))
}

func TestNewRespondToRequestCommand_NilDeliveryPerson(t *testing.T) {
	cmd, err := commands.NewRespondToRequestCommand(
		kernel.NewUUID(), kernel.NewUUID(), commands.Reject, nil)

	require.NoError(t, err)
	assert.Nil(t, cmd.DeliveryPersonID())
}

func TestNewRespondToRequestCommand_UnknownDecision(t *testing.T) {
	_, err := commands.NewRespondToRequestCommand(
		kernel.NewUUID(), kernel.NewUUID(), commands.DecisionUnknown, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestNewRespondToRequestCommand_UnconstructedDeliveryPerson(t *testing.T) {
	var driverID kernel.UUID // zero value

	_, err := commands.NewRespondToRequestCommand(
		kernel.NewUUID(), kernel.NewUUID(), commands.Approve, &driverID)

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestRespondToRequestCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.RespondToRequestCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRespondToRequestCommandIsNotConstructed)
}
