package commands_test

import (
	"testing"

	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/request"
	"foodbridge/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRequestDonationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	donorID := kernel.NewUUID()
	receiverID := kernel.NewUUID()
	d := newAvailableDonation(t, donorID)
	requestID := kernel.NewUUID()

	cmd, err := commands.NewRequestDonationCommand(requestID, d.ID(), receiverID, "Could I pick this up tonight?")
	require.NoError(t, err)

	donationRepo := new(MockDonationRepository)
	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRepository").Return(donationRepo).Once(),
		donationRepo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Add", ctx, mock.AnythingOfType("*request.Request")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRequestDonationCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	added := requestRepo.Calls[0].Arguments.Get(1).(*request.Request)
	require.Equal(t, request.Pending, added.Status())
	require.True(t, added.DonorID().IsEqual(donorID))
	require.Equal(t, "Could I pick this up tonight?", added.Message())

	donationRepo.AssertExpectations(t)
	requestRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRequestDonationCommandHandler_Handle_EmptyMessageGetsDefault(t *testing.T) {
	ctx := t.Context()

	d := newAvailableDonation(t, kernel.NewUUID())

	cmd, err := commands.NewRequestDonationCommand(kernel.NewUUID(), d.ID(), kernel.NewUUID(), "")
	require.NoError(t, err)

	donationRepo := new(MockDonationRepository)
	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRepository").Return(donationRepo).Once(),
		donationRepo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Add", ctx, mock.AnythingOfType("*request.Request")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRequestDonationCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	added := requestRepo.Calls[0].Arguments.Get(1).(*request.Request)
	require.Equal(t, request.DefaultMessage, added.Message())
}

func TestRequestDonationCommandHandler_Handle_DonationNotAvailable(t *testing.T) {
	ctx := t.Context()

	d := newAvailableDonation(t, kernel.NewUUID())
	require.NoError(t, d.Reserve())

	cmd, err := commands.NewRequestDonationCommand(kernel.NewUUID(), d.ID(), kernel.NewUUID(), "")
	require.NoError(t, err)

	donationRepo := new(MockDonationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRepository").Return(donationRepo).Once(),
		donationRepo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRequestDonationCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestRequestDonationCommandHandler_Handle_DuplicateRequestConflict(t *testing.T) {
	ctx := t.Context()

	d := newAvailableDonation(t, kernel.NewUUID())
	receiverID := kernel.NewUUID()

	cmd, err := commands.NewRequestDonationCommand(kernel.NewUUID(), d.ID(), receiverID, "")
	require.NoError(t, err)

	conflict := errs.NewConflictError("request", d.ID().String())

	donationRepo := new(MockDonationRepository)
	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRepository").Return(donationRepo).Once(),
		donationRepo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Add", ctx, mock.AnythingOfType("*request.Request")).Return(conflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRequestDonationCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestRequestDonationCommandHandler_Handle_DonationNotFound(t *testing.T) {
	ctx := t.Context()

	donationID := kernel.NewUUID()
	cmd, err := commands.NewRequestDonationCommand(kernel.NewUUID(), donationID, kernel.NewUUID(), "")
	require.NoError(t, err)

	donationRepo := new(MockDonationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRepository").Return(donationRepo).Once(),
		donationRepo.On("Get", ctx, donationID).
			Return(nil, errs.NewObjectNotFoundError("donation", donationID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRequestDonationCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
