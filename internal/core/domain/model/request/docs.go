// Package request contains the Request aggregate: a receiver's claim
// against a donation, with its own Status state machine.
//
// A receiver may hold at most one request per donation; the store
// enforces the (donation, receiver) uniqueness. Request transitions that
// affect donation availability (approve, cancel, transit, complete) are
// applied together with the donation status change in one unit of work.
package request
