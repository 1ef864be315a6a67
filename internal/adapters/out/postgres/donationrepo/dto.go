// Package donationrepo implements donation persistence over GORM,
// mapping the aggregate to its relational representation and back.
package donationrepo

import (
	"time"

	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// DonationDTO is the database row for a donation listing. Optional
// attributes are nullable; allergens and dietary info map to Postgres
// text arrays.
type DonationDTO struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	DonorID        uuid.UUID      `gorm:"type:uuid;index"`
	Title          string         `gorm:"size:100"`
	Description    string         `gorm:"size:500"`
	FoodType       string         `gorm:"size:50;index"`
	Quantity       string         `gorm:"size:50"`
	PickupLocation string         `gorm:"size:200"`
	Latitude       *float64       `gorm:"type:double precision"`
	Longitude      *float64       `gorm:"type:double precision"`
	BestBefore     *time.Time     `gorm:"index"`
	ImageURL       string         `gorm:"size:500"`
	Allergens      pq.StringArray `gorm:"type:text[]"`
	DietaryInfo    pq.StringArray `gorm:"type:text[]"`
	Status         int            `gorm:"index"`
	CreatedAt      time.Time
}

// TableName overrides GORM's default naming to use "donations".
func (DonationDTO) TableName() string {
	return "donations"
}

func fromDomain(d *donation.Donation) DonationDTO {
	var latitude, longitude *float64
	if loc := d.Location(); loc != nil {
		lat, lon := loc.Latitude(), loc.Longitude()
		latitude, longitude = &lat, &lon
	}

	return DonationDTO{
		ID:             d.ID().Bytes(),
		DonorID:        d.DonorID().Bytes(),
		Title:          d.Title(),
		Description:    d.Description(),
		FoodType:       d.FoodType().String(),
		Quantity:       d.Quantity(),
		PickupLocation: d.PickupLocation(),
		Latitude:       latitude,
		Longitude:      longitude,
		BestBefore:     d.BestBefore(),
		ImageURL:       d.ImageURL(),
		Allergens:      pq.StringArray(d.Allergens()),
		DietaryInfo:    pq.StringArray(d.DietaryInfo()),
		Status:         int(d.Status()),
		CreatedAt:      d.CreatedAt(),
	}
}

func toDomain(dto DonationDTO) (*donation.Donation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	donorID, err := kernel.UUIDFromBytes(dto.DonorID[:])
	if err != nil {
		return nil, err
	}

	foodType, err := donation.FoodTypeFromString(dto.FoodType)
	if err != nil {
		return nil, err
	}

	var location *kernel.Location
	if dto.Latitude != nil && dto.Longitude != nil {
		loc, locErr := kernel.NewLocation(*dto.Latitude, *dto.Longitude)
		if locErr != nil {
			return nil, locErr
		}
		location = &loc
	}

	return donation.RestoreDonation(
		id,
		donorID,
		dto.Title,
		dto.Description,
		foodType,
		dto.Quantity,
		dto.PickupLocation,
		location,
		dto.BestBefore,
		dto.ImageURL,
		dto.Allergens,
		dto.DietaryInfo,
		donation.Status(dto.Status),
		dto.CreatedAt,
	)
}
