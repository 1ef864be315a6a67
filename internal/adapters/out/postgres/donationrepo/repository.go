package donationrepo

import (
	"context"
	"errors"
	"time"

	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDonationRepository implements DonationRepository using GORM.
type GormDonationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDonationRepository creates a new GORM donation repository.
func NewGormDonationRepository(db *gorm.DB, tracker aggregateTracker) *GormDonationRepository {
	return &GormDonationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new donation to the database.
func (r *GormDonationRepository) Add(ctx context.Context, aggregate *donation.Donation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing donation. All columns are written so edits
// that clear an optional attribute actually persist.
func (r *GormDonationRepository) Update(ctx context.Context, aggregate *donation.Donation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DonationDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("donation", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a donation by ID.
func (r *GormDonationRepository) Get(ctx context.Context, id kernel.UUID) (*donation.Donation, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a donation and locks its row until the
// surrounding transaction ends. Concurrent lifecycle transitions on the
// same donation serialize on this lock.
func (r *GormDonationRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*donation.Donation, error) {
	return r.get(ctx, id, true)
}

func (r *GormDonationRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*donation.Donation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto DonationDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("donation", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a donation row.
func (r *GormDonationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&DonationDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("donation", id.String())
	}

	return nil
}

// GetAllPastBestBefore retrieves active donations whose best-before lies
// before the given instant. Donations without a best-before never
// expire.
func (r *GormDonationRepository) GetAllPastBestBefore(ctx context.Context, instant time.Time) ([]*donation.Donation, error) {
	var dtos []DonationDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "best_before IS NOT NULL AND best_before < ? AND status IN ?",
			instant, []int{int(donation.Available), int(donation.Pending)}).
		Error
	if err != nil {
		return nil, err
	}

	donations := make([]*donation.Donation, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		donations = append(donations, d)
	}

	return donations, nil
}
