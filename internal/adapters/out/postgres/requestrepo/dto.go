// Package requestrepo implements request persistence over GORM. The
// table carries a unique index on (donation_id, receiver_id) so the
// database, not the application, is the authority on duplicate
// requests.
package requestrepo

import (
	"time"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/request"

	"github.com/google/uuid"
)

// RequestDTO is the database row for a request. DonorID duplicates the
// donation's owner so inbox queries and authorization checks skip a
// join.
type RequestDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DonationID       uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_requests_donation_receiver"`
	ReceiverID       uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_requests_donation_receiver"`
	DonorID          uuid.UUID  `gorm:"type:uuid;index"`
	Message          string     `gorm:"size:500"`
	DeliveryPersonID *uuid.UUID `gorm:"type:uuid;index"`
	Status           int
	RespondedAt      *time.Time
	CompletedAt      *time.Time
	CreatedAt        time.Time
}

// TableName overrides GORM's default naming to use "requests".
func (RequestDTO) TableName() string {
	return "requests"
}

func fromDomain(r *request.Request) RequestDTO {
	var deliveryPersonID *uuid.UUID
	if id := r.DeliveryPersonID(); id != nil {
		raw := id.Bytes()
		deliveryPersonID = &raw
	}

	return RequestDTO{
		ID:               r.ID().Bytes(),
		DonationID:       r.DonationID().Bytes(),
		ReceiverID:       r.ReceiverID().Bytes(),
		DonorID:          r.DonorID().Bytes(),
		Message:          r.Message(),
		DeliveryPersonID: deliveryPersonID,
		Status:           int(r.Status()),
		RespondedAt:      r.RespondedAt(),
		CompletedAt:      r.CompletedAt(),
		CreatedAt:        r.CreatedAt(),
	}
}

func toDomain(dto RequestDTO) (*request.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	donationID, err := kernel.UUIDFromBytes(dto.DonationID[:])
	if err != nil {
		return nil, err
	}

	receiverID, err := kernel.UUIDFromBytes(dto.ReceiverID[:])
	if err != nil {
		return nil, err
	}

	donorID, err := kernel.UUIDFromBytes(dto.DonorID[:])
	if err != nil {
		return nil, err
	}

	var deliveryPersonID *kernel.UUID
	if dto.DeliveryPersonID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DeliveryPersonID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		deliveryPersonID = &dID
	}

	return request.RestoreRequest(
		id,
		donationID,
		receiverID,
		donorID,
		dto.Message,
		deliveryPersonID,
		request.Status(dto.Status),
		dto.RespondedAt,
		dto.CompletedAt,
		dto.CreatedAt,
	)
}
