// Package donation contains the Donation aggregate: a food listing
// offered by a donor, together with its Status state machine and the
// closed FoodType enumeration.
//
// A donation owns the "current status" projection of its lifecycle.
// Requests hold a non-owning back-reference to the donation; every
// request transition that affects availability must update the donation
// status in the same unit of work.
package donation
