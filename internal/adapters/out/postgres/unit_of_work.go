// Package postgres provides the GORM-based Unit of Work implementation.
// A unit of work spans one coordinator operation: it owns the database
// transaction and hands out repositories bound to it, so a donation
// status change and the request mutation that caused it always commit or
// roll back together.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.DonationRepository().Add(ctx, donation); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"foodbridge/internal/adapters/out/postgres/donationrepo"
	"foodbridge/internal/adapters/out/postgres/requestrepo"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate records an aggregate modified during the unit of
// work, kept for post-commit processing such as an outbox publisher.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection pool. Each Create call returns a fresh instance so
// concurrent operations stay isolated.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory over the given connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the
// aggregates written through it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling Begin again on an instance with
// an open transaction is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes the transaction. Returns gorm.ErrInvalidTransaction
// when none is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Returns gorm.ErrInvalidTransaction
// when none is open, which the usual deferred rollback ignores.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// DonationRepository returns a donation repository bound to the current
// transaction, or to the base connection when none is open.
func (uow *GormUnitOfWork) DonationRepository() ports.DonationRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return donationrepo.NewGormDonationRepository(db, uow)
}

// RequestRepository returns a request repository bound to the current
// transaction, or to the base connection when none is open.
func (uow *GormUnitOfWork) RequestRepository() ports.RequestRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return requestrepo.NewGormRequestRepository(db, uow)
}

// TrackAggregate registers an aggregate as modified within this unit of
// work. Called by the repositories on every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
