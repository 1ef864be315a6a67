package request

import (
	"fmt"

	"foodbridge/internal/pkg/errs"
)

// Status represents the lifecycle state of a request.
//
// State transitions:
//
//	Pending ──┬──> Approved ──┬──> InTransit ──> Completed
//	          │               │
//	          ├──> Rejected ──┴──> Cancelled
//	          └──> Cancelled
//
// Completed and Cancelled are terminal. Rejected permits only
// cancellation: the receiver clears their rejected request, which frees
// the unique (donation, receiver) pair for a fresh attempt.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending means the request awaits the donor's decision.
	Pending

	// Approved means the donor accepted the request; the donation is
	// reserved for this receiver.
	Approved

	// InTransit means the assigned delivery person picked the food up.
	InTransit

	// Rejected is set by the donor's refusal. The receiver may still
	// cancel a rejected request to clear it.
	Rejected

	// Completed is the terminal success state.
	Completed

	// Cancelled is the terminal state set by the receiver backing out.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Approved:  "Approved",
		InTransit: "In Transit",
		Rejected:  "Rejected",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Approved:  "Approved",
		InTransit: "In Transit",
		Rejected:  "Rejected",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// Validate checks that the status is a member of the closed set.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValidationErrorWithCause("status",
			fmt.Errorf("%d is not a valid request status", s))
	}
	return nil
}

// String implements fmt.Stringer; safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is permitted.
// Rejected is not terminal: it still allows cancellation.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Approve transitions Pending -> Approved.
func (s Status) Approve() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateErrorWithCause("request status",
			fmt.Errorf("%s request cannot be approved", s.String()))
	}
	return Approved, nil
}

// Reject transitions Pending -> Rejected.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateErrorWithCause("request status",
			fmt.Errorf("%s request cannot be rejected", s.String()))
	}
	return Rejected, nil
}

// Cancel transitions Pending, Approved, or Rejected -> Cancelled. Once
// the food is in transit or delivered, cancellation is no longer
// permitted.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Approved && s != Rejected {
		return 0, errs.NewInvalidStateErrorWithCause("request status",
			fmt.Errorf("%s request cannot be cancelled", s.String()))
	}
	return Cancelled, nil
}

// StartTransit transitions Approved -> InTransit.
func (s Status) StartTransit() (Status, error) {
	if s != Approved {
		return 0, errs.NewInvalidStateErrorWithCause("request status",
			fmt.Errorf("%s request cannot go in transit", s.String()))
	}
	return InTransit, nil
}

// Complete transitions InTransit -> Completed. Delivery must pass
// through InTransit first.
func (s Status) Complete() (Status, error) {
	if s != InTransit {
		return 0, errs.NewInvalidStateErrorWithCause("request status",
			fmt.Errorf("%s request cannot be completed", s.String()))
	}
	return Completed, nil
}
