package commands

import (
	"context"
	"fmt"

	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/request"
	"foodbridge/internal/pkg/errs"
)

// RequestDonationCommandHandler handles a receiver's claim against a
// donation. The donation itself is not mutated: any number of Pending
// requests may coexist until the donor approves one. Uniqueness on
// (donation, receiver) is enforced by the store and surfaces as a
// ConflictError from Add.
type RequestDonationCommandHandler struct {
	uowFactory UoWFactory
}

// NewRequestDonationCommandHandler creates a handler for donation
// request operations.
func NewRequestDonationCommandHandler(uowFactory UoWFactory) RequestDonationCommandHandler {
	return RequestDonationCommandHandler{uowFactory: uowFactory}
}

// Handle processes the request command. The donation must exist and be
// Available; the donor reference is denormalized onto the new request.
func (h RequestDonationCommandHandler) Handle(ctx context.Context, cmd RequestDonationCommand) error {
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

	d, err := uow.DonationRepository().Get(ctx, cmd.DonationID())
	if err != nil {
		return err
	}

	if d.Status() != donation.Available {
		return errs.NewInvalidStateErrorWithCause("donation status",
			fmt.Errorf("donation is no longer available (status is %s)", d.Status()))
	}

	r, err := request.NewRequest(
		cmd.RequestID(),
		cmd.DonationID(),
		cmd.ReceiverID(),
		d.DonorID(),
		cmd.Message(),
	)
	if err != nil {
		return err
	}

	if err = uow.RequestRepository().Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
