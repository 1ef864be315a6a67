package commands_test

import (
	"testing"

	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/request"

	"github.com/stretchr/testify/require"
)

func newAvailableDonation(t *testing.T, donorID kernel.UUID) *donation.Donation {
	t.Helper()

	d, err := donation.NewDonation(
		kernel.NewUUID(),
		donorID,
		"Fresh bread",
		"Day-old loaves from the bakery",
		donation.BakedGoods,
		"10 loaves",
		"12 Main St",
	)
	require.NoError(t, err)
	return d
}

func newPendingRequest(t *testing.T, d *donation.Donation, receiverID kernel.UUID) *request.Request {
	t.Helper()

	r, err := request.NewRequest(
		kernel.NewUUID(),
		d.ID(),
		receiverID,
		d.DonorID(),
		"",
	)
	require.NoError(t, err)
	return r
}

func newApprovedRequest(t *testing.T, d *donation.Donation, receiverID kernel.UUID, driverID *kernel.UUID) *request.Request {
	t.Helper()

	r := newPendingRequest(t, d, receiverID)
	require.NoError(t, r.Approve(driverID))
	require.NoError(t, d.Reserve())
	return r
}
