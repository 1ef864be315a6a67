package commands

import (
	"context"

	"foodbridge/internal/core/domain/model/request"
	"foodbridge/internal/pkg/errs"
)

// CancelRequestCommandHandler handles a receiver withdrawing their
// request. A Pending or Rejected cancellation only removes the row; an
// Approved cancellation additionally returns the reserved donation to
// Available so other receivers can claim it. Once the delivery is in
// transit or completed the request can no longer be cancelled.
//
// The cancelled row is deleted rather than kept with a terminal status:
// the unique (donation, receiver) pair frees up, so the receiver may
// request the same donation again later. For a rejected request this is
// the only way to become eligible to re-request the donation.
type CancelRequestCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelRequestCommandHandler creates a handler for request
// cancellations.
func NewCancelRequestCommandHandler(uowFactory UoWFactory) CancelRequestCommandHandler {
	return CancelRequestCommandHandler{uowFactory: uowFactory}
}

// Handle cancels the request. The caller must be the receiver who
// created it.
func (h CancelRequestCommandHandler) Handle(ctx context.Context, cmd CancelRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requestRepo := uow.RequestRepository()

	r, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	if !r.IsOwnedBy(cmd.ReceiverID()) {
		return errs.NewForbiddenError("cancel this request")
	}

	holdsReservation := r.Status() == request.Approved

	if err = r.Cancel(); err != nil {
		return err
	}

	if holdsReservation {
		if err = h.releaseDonation(ctx, uow, r); err != nil {
			return err
		}
	}

	if err = requestRepo.Delete(ctx, r.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h CancelRequestCommandHandler) releaseDonation(ctx context.Context, uow UoW, r *request.Request) error {
	donationRepo := uow.DonationRepository()

	d, err := donationRepo.GetForUpdate(ctx, r.DonationID())
	if err != nil {
		return err
	}

	if err = d.Release(); err != nil {
		return err
	}

	return donationRepo.Update(ctx, d)
}
