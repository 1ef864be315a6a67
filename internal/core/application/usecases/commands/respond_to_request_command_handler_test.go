package commands_test

import (
	"testing"

	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/request"
	"foodbridge/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRespondToRequestCommandHandler_Handle_ApproveSuccess(t *testing.T) {
	ctx := t.Context()

	donorID := kernel.NewUUID()
	receiverID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	d := newAvailableDonation(t, donorID)
	r := newPendingRequest(t, d, receiverID)

	cmd, err := commands.NewRespondToRequestCommand(r.ID(), donorID, commands.Approve, &driverID)
	require.NoError(t, err)

	donationRepo := new(MockDonationRepository)
	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", ctx, r.ID()).Return(r, nil).Once(),
		uow.On("DonationRepository").Return(donationRepo).Once(),
		donationRepo.On("GetForUpdate", ctx, d.ID()).Return(d, nil).Once(),
		donationRepo.On("Update", ctx, d).Return(nil).Once(),
		requestRepo.On("Update", ctx, r).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRespondToRequestCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	require.Equal(t, request.Approved, r.Status())
	require.Equal(t, donation.Pending, d.Status())
	require.NotNil(t, r.RespondedAt())
	require.NotNil(t, r.DeliveryPersonID())
	require.True(t, r.DeliveryPersonID().IsEqual(driverID))

	donationRepo.AssertExpectations(t)
	requestRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRespondToRequestCommandHandler_Handle_ApproveAlreadyReserved(t *testing.T) {
	ctx := t.Context()

	donorID := kernel.NewUUID()
	d := newAvailableDonation(t, donorID)

	winner := newApprovedRequest(t, d, kernel.NewUUID(), nil)
	loser := newPendingRequest(t, d, kernel.NewUUID())

	cmd, err := commands.NewRespondToRequestCommand(loser.ID(), donorID, commands.Approve, nil)
	require.NoError(t, err)

	donationRepo := new(MockDonationRepository)
	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", ctx, loser.ID()).Return(loser, nil).Once(),
		uow.On("DonationRepository").Return(donationRepo).Once(),
		donationRepo.On("GetForUpdate", ctx, d.ID()).Return(d, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRespondToRequestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)

	// The losing approval must not touch either request.
	require.Equal(t, request.Pending, loser.Status())
	require.Equal(t, request.Approved, winner.Status())
	require.Equal(t, donation.Pending, d.Status())

	donationRepo.AssertNotCalled(t, "Update")
	requestRepo.AssertNotCalled(t, "Update")
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestRespondToRequestCommandHandler_Handle_RejectLeavesDonationAlone(t *testing.T) {
	ctx := t.Context()

	donorID := kernel.NewUUID()
	d := newAvailableDonation(t, donorID)
	r := newPendingRequest(t, d, kernel.NewUUID())

	cmd, err := commands.NewRespondToRequestCommand(r.ID(), donorID, commands.Reject, nil)
	require.NoError(t, err)

	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", ctx, r.ID()).Return(r, nil).Once(),
		requestRepo.On("Update", ctx, r).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRespondToRequestCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	require.Equal(t, request.Rejected, r.Status())
	require.NotNil(t, r.RespondedAt())
	require.Equal(t, donation.Available, d.Status())

	uow.AssertNotCalled(t, "DonationRepository")
	requestRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRespondToRequestCommandHandler_Handle_NotTheDonor(t *testing.T) {
	ctx := t.Context()

	d := newAvailableDonation(t, kernel.NewUUID())
	r := newPendingRequest(t, d, kernel.NewUUID())

	stranger := kernel.NewUUID()
	cmd, err := commands.NewRespondToRequestCommand(r.ID(), stranger, commands.Approve, nil)
	require.NoError(t, err)

	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", ctx, r.ID()).Return(r, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRespondToRequestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrForbidden)
	require.Equal(t, request.Pending, r.Status())
}

func TestRespondToRequestCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RespondToRequestCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewRespondToRequestCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRespondToRequestCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
