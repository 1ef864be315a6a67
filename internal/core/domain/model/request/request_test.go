package request_test

import (
	"strings"
	"testing"
	"time"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/request"
	"foodbridge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRequest(t *testing.T) *request.Request {
	t.Helper()
	r, err := request.NewRequest(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Could I pick this up tonight?",
	)
	require.NoError(t, err)
	return r
}

func TestNewRequest(t *testing.T) {
	t.Run("should create Pending request", func(t *testing.T) {
		id := kernel.NewUUID()
		donationID := kernel.NewUUID()
		receiverID := kernel.NewUUID()
		donorID := kernel.NewUUID()

		r, err := request.NewRequest(id, donationID, receiverID, donorID, "hello")

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.True(t, r.ID().IsEqual(id))
		assert.True(t, r.DonationID().IsEqual(donationID))
		assert.True(t, r.ReceiverID().IsEqual(receiverID))
		assert.True(t, r.DonorID().IsEqual(donorID))
		assert.Equal(t, request.Pending, r.Status())
		assert.Nil(t, r.DeliveryPersonID())
		assert.Nil(t, r.RespondedAt())
		assert.Nil(t, r.CompletedAt())
	})

	t.Run("empty message falls back to default", func(t *testing.T) {
		r, err := request.NewRequest(kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), kernel.NewUUID(), "")

		require.NoError(t, err)
		assert.Equal(t, request.DefaultMessage, r.Message())
	})

	t.Run("over-long message is rejected", func(t *testing.T) {
		_, err := request.NewRequest(kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), kernel.NewUUID(), strings.Repeat("x", 501))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("invalid references are rejected", func(t *testing.T) {
		var nilID kernel.UUID

		_, err := request.NewRequest(kernel.NewUUID(), nilID,
			kernel.NewUUID(), kernel.NewUUID(), "")

		require.Error(t, err)
	})
}

func TestRequest_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var r request.Request

		require.ErrorIs(t, r.Validate(), request.ErrRequestIsNotConstructed)
	})
}

func TestRequest_Approve(t *testing.T) {
	t.Run("approve with delivery person", func(t *testing.T) {
		r := newTestRequest(t)
		driver := kernel.NewUUID()

		require.NoError(t, r.Approve(&driver))

		assert.Equal(t, request.Approved, r.Status())
		require.NotNil(t, r.DeliveryPersonID())
		assert.True(t, r.DeliveryPersonID().IsEqual(driver))
		require.NotNil(t, r.RespondedAt())
		assert.True(t, r.IsAssignedTo(driver))
	})

	t.Run("approve without delivery person", func(t *testing.T) {
		r := newTestRequest(t)

		require.NoError(t, r.Approve(nil))

		assert.Equal(t, request.Approved, r.Status())
		assert.Nil(t, r.DeliveryPersonID())
	})

	t.Run("double approve fails", func(t *testing.T) {
		r := newTestRequest(t)
		require.NoError(t, r.Approve(nil))

		err := r.Approve(nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("invalid delivery person is rejected before transition", func(t *testing.T) {
		r := newTestRequest(t)
		var nilDriver kernel.UUID

		err := r.Approve(&nilDriver)

		require.Error(t, err)
		assert.Equal(t, request.Pending, r.Status())
	})
}

func TestRequest_RejectAndCancel(t *testing.T) {
	t.Run("reject stamps respondedAt", func(t *testing.T) {
		r := newTestRequest(t)

		require.NoError(t, r.Reject())

		assert.Equal(t, request.Rejected, r.Status())
		require.NotNil(t, r.RespondedAt())
	})

	t.Run("cancel from Pending", func(t *testing.T) {
		r := newTestRequest(t)

		require.NoError(t, r.Cancel())

		assert.Equal(t, request.Cancelled, r.Status())
	})

	t.Run("cancel from Approved", func(t *testing.T) {
		r := newTestRequest(t)
		require.NoError(t, r.Approve(nil))

		require.NoError(t, r.Cancel())

		assert.Equal(t, request.Cancelled, r.Status())
	})

	t.Run("cancel from Rejected clears the request", func(t *testing.T) {
		r := newTestRequest(t)
		require.NoError(t, r.Reject())

		require.NoError(t, r.Cancel())

		assert.Equal(t, request.Cancelled, r.Status())
	})

	t.Run("cancel in transit fails", func(t *testing.T) {
		r := newTestRequest(t)
		driver := kernel.NewUUID()
		require.NoError(t, r.Approve(&driver))
		require.NoError(t, r.StartTransit())

		err := r.Cancel()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestRequest_Delivery(t *testing.T) {
	t.Run("transit then complete stamps completedAt", func(t *testing.T) {
		r := newTestRequest(t)
		driver := kernel.NewUUID()
		require.NoError(t, r.Approve(&driver))

		require.NoError(t, r.StartTransit())
		assert.Equal(t, request.InTransit, r.Status())
		assert.Nil(t, r.CompletedAt())

		require.NoError(t, r.Complete())
		assert.Equal(t, request.Completed, r.Status())
		require.NotNil(t, r.CompletedAt())
	})

	t.Run("complete before transit fails", func(t *testing.T) {
		r := newTestRequest(t)
		require.NoError(t, r.Approve(nil))

		err := r.Complete()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestRequest_Ownership(t *testing.T) {
	receiver := kernel.NewUUID()
	donor := kernel.NewUUID()
	stranger := kernel.NewUUID()

	r, err := request.NewRequest(kernel.NewUUID(), kernel.NewUUID(), receiver, donor, "")
	require.NoError(t, err)

	assert.True(t, r.IsOwnedBy(receiver))
	assert.False(t, r.IsOwnedBy(stranger))
	assert.True(t, r.IsManagedBy(donor))
	assert.False(t, r.IsManagedBy(receiver))
	assert.False(t, r.IsAssignedTo(stranger))
}

func TestRestoreRequest(t *testing.T) {
	t.Run("restores persisted state", func(t *testing.T) {
		driver := kernel.NewUUID()
		respondedAt := time.Now().Add(-time.Hour).UTC()
		createdAt := time.Now().Add(-2 * time.Hour).UTC()

		r, err := request.RestoreRequest(kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), kernel.NewUUID(), "msg",
			&driver, request.Approved, &respondedAt, nil, createdAt)

		require.NoError(t, err)
		assert.Equal(t, request.Approved, r.Status())
		assert.True(t, r.IsAssignedTo(driver))
		assert.Equal(t, createdAt, r.CreatedAt())
	})

	t.Run("rejects invalid stored status", func(t *testing.T) {
		_, err := request.RestoreRequest(kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), kernel.NewUUID(), "msg",
			nil, request.Unknown, nil, nil, time.Now())

		require.Error(t, err)
	})
}
