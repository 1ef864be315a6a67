package donation

import (
	"fmt"

	"foodbridge/internal/pkg/errs"
)

// Status represents the lifecycle state of a donation.
//
// State transitions:
//
//	Available ──> Pending ──> InTransit ──> Delivered
//	     ^           │
//	     └───────────┘
//	  (reject / cancel of the approved request)
//
// Expired is reachable from any non-terminal state via the expiry sweep.
// Delivered and Expired are terminal. Confirmed is a valid stored value
// kept for compatibility but no transition produces it.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Available means the donation is open for new requests. Holds while
	// no request against it is Approved or InTransit.
	Available

	// Pending means the donor approved a request; the donation is
	// reserved and further approvals must fail.
	Pending

	// Confirmed is a legacy intermediate between Pending and InTransit.
	Confirmed

	// InTransit means the assigned delivery person picked the food up.
	InTransit

	// Delivered is the terminal success state.
	Delivered

	// Expired is the terminal state set by the time-based sweep.
	Expired
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Available: "Available",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		InTransit: "In Transit",
		Delivered: "Delivered",
		Expired:   "Expired",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "Available",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		InTransit: "In Transit",
		Delivered: "Delivered",
		Expired:   "Expired",
	}
}

// Validate checks that the status is a member of the closed set.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValidationErrorWithCause("status",
			fmt.Errorf("%d is not a valid donation status", s))
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

// StatusFromString parses a status as it appears on the wire.
func StatusFromString(str string) (Status, error) {
	for s, name := range getValidStatusStrings() {
		if name == str {
			return s, nil
		}
	}
	return Unknown, errs.NewValidationErrorWithCause("status",
		fmt.Errorf("%q is not a valid donation status", str))
}

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Expired
}

// Reserve transitions Available -> Pending when a request is approved.
// This is the linearization point for concurrent approvals: only the
// caller that observes Available may reserve; everyone else gets an
// InvalidStateError.
func (s Status) Reserve() (Status, error) {
	if s != Available {
		return 0, errs.NewInvalidStateErrorWithCause("donation status",
			fmt.Errorf("%s donation cannot be reserved", s.String()))
	}
	return Pending, nil
}

// Release transitions Pending -> Available when the approved request is
// cancelled, freeing the donation for new requests.
func (s Status) Release() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateErrorWithCause("donation status",
			fmt.Errorf("%s donation cannot be released", s.String()))
	}
	return Available, nil
}

// StartTransit transitions Pending -> InTransit when the assigned
// delivery person picks up the food.
func (s Status) StartTransit() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateErrorWithCause("donation status",
			fmt.Errorf("%s donation cannot go in transit", s.String()))
	}
	return InTransit, nil
}

// Deliver transitions InTransit -> Delivered.
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return 0, errs.NewInvalidStateErrorWithCause("donation status",
			fmt.Errorf("%s donation cannot be delivered", s.String()))
	}
	return Delivered, nil
}

// Expire transitions any non-terminal status to Expired.
func (s Status) Expire() (Status, error) {
	if s.IsTerminal() {
		return 0, errs.NewInvalidStateErrorWithCause("donation status",
			fmt.Errorf("%s is a terminal status", s.String()))
	}
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return Expired, nil
}

// IsEditable reports whether donor edits are still permitted.
// Edits are allowed only before the handover starts.
func (s Status) IsEditable() bool {
	return s == Available || s == Pending
}
