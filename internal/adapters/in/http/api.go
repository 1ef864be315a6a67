package http

import (
	"time"

	"foodbridge/internal/core/application/usecases/queries"
)

// Error is the JSON error body returned by every failing route.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateDonationRequest is the body of POST /api/v1/donations.
type CreateDonationRequest struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	FoodType       string     `json:"foodType"`
	Quantity       string     `json:"quantity"`
	PickupLocation string     `json:"pickupLocation"`
	Latitude       *float64   `json:"latitude,omitempty"`
	Longitude      *float64   `json:"longitude,omitempty"`
	BestBefore     *time.Time `json:"bestBefore,omitempty"`
	ImageURL       string     `json:"imageUrl,omitempty"`
	Allergens      []string   `json:"allergens,omitempty"`
	DietaryInfo    []string   `json:"dietaryInfo,omitempty"`
}

// UpdateDonationRequest is the body of PATCH /api/v1/donations/:id.
// Absent fields are left unchanged.
type UpdateDonationRequest struct {
	Title          *string    `json:"title,omitempty"`
	Description    *string    `json:"description,omitempty"`
	FoodType       *string    `json:"foodType,omitempty"`
	Quantity       *string    `json:"quantity,omitempty"`
	PickupLocation *string    `json:"pickupLocation,omitempty"`
	Latitude       *float64   `json:"latitude,omitempty"`
	Longitude      *float64   `json:"longitude,omitempty"`
	BestBefore     *time.Time `json:"bestBefore,omitempty"`
	ImageURL       *string    `json:"imageUrl,omitempty"`
	Allergens      []string   `json:"allergens,omitempty"`
	DietaryInfo    []string   `json:"dietaryInfo,omitempty"`
}

// RequestDonationRequest is the body of POST /api/v1/donations/:id/requests.
type RequestDonationRequest struct {
	Message string `json:"message,omitempty"`
}

// RespondToRequestRequest is the body of PATCH /api/v1/requests/:id/status.
type RespondToRequestRequest struct {
	Status           string `json:"status"`
	DeliveryPersonID string `json:"deliveryPersonId,omitempty"`
}

// AdvanceDeliveryRequest is the body of PATCH /api/v1/deliveries/:id/status.
type AdvanceDeliveryRequest struct {
	Status string `json:"status"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// Donation is the JSON shape of a donation listing.
type Donation struct {
	ID             string     `json:"id"`
	DonorID        string     `json:"donorId"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	FoodType       string     `json:"foodType"`
	Quantity       string     `json:"quantity"`
	PickupLocation string     `json:"pickupLocation"`
	Latitude       *float64   `json:"latitude,omitempty"`
	Longitude      *float64   `json:"longitude,omitempty"`
	BestBefore     *time.Time `json:"bestBefore,omitempty"`
	ImageURL       string     `json:"imageUrl,omitempty"`
	Allergens      []string   `json:"allergens,omitempty"`
	DietaryInfo    []string   `json:"dietaryInfo,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// Request is the JSON shape of a request, with its donation summary.
type Request struct {
	ID               string          `json:"id"`
	DonationID       string          `json:"donationId"`
	ReceiverID       string          `json:"receiverId"`
	DonorID          string          `json:"donorId"`
	Message          string          `json:"message"`
	DeliveryPersonID string          `json:"deliveryPersonId,omitempty"`
	Status           string          `json:"status"`
	RespondedAt      *time.Time      `json:"respondedAt,omitempty"`
	CompletedAt      *time.Time      `json:"completedAt,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	Donation         DonationSummary `json:"donation"`
}

// DonationSummary is the short donation block embedded in request rows.
type DonationSummary struct {
	Title          string `json:"title"`
	FoodType       string `json:"foodType"`
	Quantity       string `json:"quantity"`
	PickupLocation string `json:"pickupLocation"`
	Status         string `json:"status"`
}

func donationFromView(view queries.DonationView) Donation {
	d := Donation{
		ID:             view.ID.String(),
		DonorID:        view.DonorID.String(),
		Title:          view.Title,
		Description:    view.Description,
		FoodType:       view.FoodType,
		Quantity:       view.Quantity,
		PickupLocation: view.PickupLocation,
		BestBefore:     view.BestBefore,
		ImageURL:       view.ImageURL,
		Allergens:      view.Allergens,
		DietaryInfo:    view.DietaryInfo,
		Status:         view.Status,
		CreatedAt:      view.CreatedAt,
	}

	if view.Location != nil {
		lat, lon := view.Location.Latitude(), view.Location.Longitude()
		d.Latitude, d.Longitude = &lat, &lon
	}

	return d
}

func requestFromView(view queries.RequestView) Request {
	r := Request{
		ID:          view.ID.String(),
		DonationID:  view.DonationID.String(),
		ReceiverID:  view.ReceiverID.String(),
		DonorID:     view.DonorID.String(),
		Message:     view.Message,
		Status:      view.Status,
		RespondedAt: view.RespondedAt,
		CompletedAt: view.CompletedAt,
		CreatedAt:   view.CreatedAt,
		Donation: DonationSummary{
			Title:          view.Donation.Title,
			FoodType:       view.Donation.FoodType,
			Quantity:       view.Donation.Quantity,
			PickupLocation: view.Donation.PickupLocation,
			Status:         view.Donation.Status,
		},
	}

	if view.DeliveryPersonID != nil {
		r.DeliveryPersonID = view.DeliveryPersonID.String()
	}

	return r
}
