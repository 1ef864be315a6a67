package commands

import (
	"context"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/request"
	"foodbridge/internal/pkg/errs"
)

// RespondToRequestCommandHandler handles the donor's approve/reject
// decision on a pending request.
//
// Approval is the contended transition: several of the donor's tabs or
// retries may race on the same donation. The handler reads the donation
// with a row lock inside the transaction, so only the first approval
// observes Available and flips it to Pending; every later approval fails
// with InvalidStateError without touching the winning request.
//
// Other Pending requests for the same donation are deliberately left
// Pending — the donor resolves them manually. A rejection never releases
// the donation: a request can only be rejected while Pending, and a
// Pending request holds no reservation.
type RespondToRequestCommandHandler struct {
	uowFactory UoWFactory
}

// NewRespondToRequestCommandHandler creates a handler for donor
// decisions.
func NewRespondToRequestCommandHandler(uowFactory UoWFactory) RespondToRequestCommandHandler {
	return RespondToRequestCommandHandler{uowFactory: uowFactory}
}

// Handle processes the decision. The caller must be the donor recorded
// on the request.
func (h RespondToRequestCommandHandler) Handle(ctx context.Context, cmd RespondToRequestCommand) error {
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

	if !r.IsManagedBy(cmd.DonorID()) {
		return errs.NewForbiddenError("manage this request")
	}

	switch cmd.Decision() {
	case Approve:
		if err = h.approve(ctx, uow, r, cmd.DeliveryPersonID()); err != nil {
			return err
		}
	case Reject:
		if err = r.Reject(); err != nil {
			return err
		}
	default:
		return errs.NewValidationError("decision")
	}

	if err = requestRepo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h RespondToRequestCommandHandler) approve(
	ctx context.Context,
	uow UoW,
	r *request.Request,
	deliveryPersonID *kernel.UUID,
) error {
	donationRepo := uow.DonationRepository()

	// Lock the donation row first: the reservation is the linearization
	// point for concurrent approvals.
	d, err := donationRepo.GetForUpdate(ctx, r.DonationID())
	if err != nil {
		return err
	}

	if err = d.Reserve(); err != nil {
		return err
	}

	if err = r.Approve(deliveryPersonID); err != nil {
		return err
	}

	return donationRepo.Update(ctx, d)
}
