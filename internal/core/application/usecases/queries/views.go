package queries

import (
	"database/sql"
	"time"

	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/request"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// DonationView is the flat read model of a donation listing. Optional
// attributes that were never set stay nil.
type DonationView struct {
	ID             kernel.UUID
	DonorID        kernel.UUID
	Title          string
	Description    string
	FoodType       string
	Quantity       string
	PickupLocation string
	Location       *kernel.Location
	BestBefore     *time.Time
	ImageURL       string
	Allergens      []string
	DietaryInfo    []string
	Status         string
	CreatedAt      time.Time
}

// RequestView is the flat read model of a request, joined with a short
// summary of the donation it targets.
type RequestView struct {
	ID               kernel.UUID
	DonationID       kernel.UUID
	ReceiverID       kernel.UUID
	DonorID          kernel.UUID
	Message          string
	DeliveryPersonID *kernel.UUID
	Status           string
	RespondedAt      *time.Time
	CompletedAt      *time.Time
	CreatedAt        time.Time

	Donation DonationSummary
}

// DonationSummary carries the donation columns every request listing
// shows next to the request itself.
type DonationSummary struct {
	Title          string
	FoodType       string
	Quantity       string
	PickupLocation string
	Status         string
}

const donationColumns = `
	id,
	donor_id,
	title,
	description,
	food_type,
	quantity,
	pickup_location,
	latitude,
	longitude,
	best_before,
	image_url,
	allergens,
	dietary_info,
	status,
	created_at`

const requestColumns = `
	r.id,
	r.donation_id,
	r.receiver_id,
	r.donor_id,
	r.message,
	r.delivery_person_id,
	r.status,
	r.responded_at,
	r.completed_at,
	r.created_at,
	d.title,
	d.food_type,
	d.quantity,
	d.pickup_location,
	d.status`

// scanDonation reads one row produced with donationColumns.
func scanDonation(rows *sql.Rows) (DonationView, error) {
	var (
		view       DonationView
		id         uuid.UUID
		donorID    uuid.UUID
		latitude   sql.NullFloat64
		longitude  sql.NullFloat64
		bestBefore sql.NullTime
		allergens  pq.StringArray
		dietary    pq.StringArray
		status     int
	)

	err := rows.Scan(
		&id,
		&donorID,
		&view.Title,
		&view.Description,
		&view.FoodType,
		&view.Quantity,
		&view.PickupLocation,
		&latitude,
		&longitude,
		&bestBefore,
		&view.ImageURL,
		&allergens,
		&dietary,
		&status,
		&view.CreatedAt,
	)
	if err != nil {
		return DonationView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return DonationView{}, err
	}
	if view.DonorID, err = kernel.UUIDFromBytes(donorID[:]); err != nil {
		return DonationView{}, err
	}

	if latitude.Valid && longitude.Valid {
		location, locErr := kernel.NewLocation(latitude.Float64, longitude.Float64)
		if locErr != nil {
			return DonationView{}, locErr
		}
		view.Location = &location
	}

	if bestBefore.Valid {
		t := bestBefore.Time
		view.BestBefore = &t
	}

	view.Allergens = allergens
	view.DietaryInfo = dietary
	view.Status = donation.Status(status).String()

	return view, nil
}

// scanRequest reads one row produced with requestColumns.
func scanRequest(rows *sql.Rows) (RequestView, error) {
	var (
		view             RequestView
		id               uuid.UUID
		donationID       uuid.UUID
		receiverID       uuid.UUID
		donorID          uuid.UUID
		deliveryPersonID *uuid.UUID
		status           int
		respondedAt      sql.NullTime
		completedAt      sql.NullTime
		donationStatus   int
	)

	err := rows.Scan(
		&id,
		&donationID,
		&receiverID,
		&donorID,
		&view.Message,
		&deliveryPersonID,
		&status,
		&respondedAt,
		&completedAt,
		&view.CreatedAt,
		&view.Donation.Title,
		&view.Donation.FoodType,
		&view.Donation.Quantity,
		&view.Donation.PickupLocation,
		&donationStatus,
	)
	if err != nil {
		return RequestView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return RequestView{}, err
	}
	if view.DonationID, err = kernel.UUIDFromBytes(donationID[:]); err != nil {
		return RequestView{}, err
	}
	if view.ReceiverID, err = kernel.UUIDFromBytes(receiverID[:]); err != nil {
		return RequestView{}, err
	}
	if view.DonorID, err = kernel.UUIDFromBytes(donorID[:]); err != nil {
		return RequestView{}, err
	}

	if deliveryPersonID != nil {
		driverID, idErr := kernel.UUIDFromBytes(deliveryPersonID[:])
		if idErr != nil {
			return RequestView{}, idErr
		}
		view.DeliveryPersonID = &driverID
	}

	if respondedAt.Valid {
		t := respondedAt.Time
		view.RespondedAt = &t
	}
	if completedAt.Valid {
		t := completedAt.Time
		view.CompletedAt = &t
	}

	view.Status = request.Status(status).String()
	view.Donation.Status = donation.Status(donationStatus).String()

	return view, nil
}
