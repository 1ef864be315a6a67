package commands

import (
	"context"

	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/request"
	"foodbridge/internal/pkg/errs"
)

// AdvanceDeliveryCommandHandler handles delivery progress reports from
// the assigned delivery person. The request and its donation advance in
// lockstep: pickup moves both to InTransit, drop-off marks the request
// Completed and the donation Delivered. Both writes happen in one
// transaction so the pair can never drift apart.
type AdvanceDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewAdvanceDeliveryCommandHandler creates a handler for delivery
// progress reports.
func NewAdvanceDeliveryCommandHandler(uowFactory UoWFactory) AdvanceDeliveryCommandHandler {
	return AdvanceDeliveryCommandHandler{uowFactory: uowFactory}
}

// Handle records the reported milestone. The caller must be the
// delivery person assigned at approval time.
func (h AdvanceDeliveryCommandHandler) Handle(ctx context.Context, cmd AdvanceDeliveryCommand) error {
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

	if !r.IsAssignedTo(cmd.DeliveryPersonID()) {
		return errs.NewForbiddenError("report progress on this delivery")
	}

	donationRepo := uow.DonationRepository()

	d, err := donationRepo.GetForUpdate(ctx, r.DonationID())
	if err != nil {
		return err
	}

	if err = h.advance(r, d, cmd.Stage()); err != nil {
		return err
	}

	if err = donationRepo.Update(ctx, d); err != nil {
		return err
	}

	if err = requestRepo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h AdvanceDeliveryCommandHandler) advance(r *request.Request, d *donation.Donation, stage Stage) error {
	switch stage {
	case StageInTransit:
		if err := r.StartTransit(); err != nil {
			return err
		}
		return d.StartTransit()
	case StageCompleted:
		if err := r.Complete(); err != nil {
			return err
		}
		return d.Deliver()
	default:
		return errs.NewValidationError("stage")
	}
}
