package requestrepo

import (
	"context"
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/request"
	"foodbridge/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRequestRepository implements RequestRepository using GORM.
type GormRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRequestRepository creates a new GORM request repository.
func NewGormRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormRequestRepository {
	return &GormRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new request. A duplicate (donation, receiver) pair trips
// the unique index and comes back as a ConflictError.
func (r *GormRequestRepository) Add(ctx context.Context, aggregate *request.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause(
				"request", aggregate.DonationID().String(), err,
			)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing request. All columns are written so nullable
// timestamps and the driver assignment persist exactly as the aggregate
// holds them.
func (r *GormRequestRepository) Update(ctx context.Context, aggregate *request.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RequestDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("request", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a request by ID.
func (r *GormRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a single request row.
func (r *GormRequestRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&RequestDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("request", id.String())
	}

	return nil
}

// DeleteAllForDonation removes every request referencing the donation.
// Zero rows is fine, a donation may have no requests.
func (r *GormRequestRepository) DeleteAllForDonation(ctx context.Context, donationID kernel.UUID) error {
	if err := donationID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Delete(&RequestDTO{}, "donation_id = ?", donationID.Bytes()).
		Error
}
