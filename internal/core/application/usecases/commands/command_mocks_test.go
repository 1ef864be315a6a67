package commands_test

import (
	"context"
	"time"

	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/request"
	"foodbridge/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDonationRepository struct{ mock.Mock }

func (m *MockDonationRepository) Add(ctx context.Context, d *donation.Donation) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDonationRepository) Update(ctx context.Context, d *donation.Donation) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDonationRepository) Get(ctx context.Context, id kernel.UUID) (*donation.Donation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*donation.Donation), args.Error(1)
}

func (m *MockDonationRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*donation.Donation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*donation.Donation), args.Error(1)
}

func (m *MockDonationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDonationRepository) GetAllPastBestBefore(ctx context.Context, instant time.Time) ([]*donation.Donation, error) {
	args := m.Called(ctx, instant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*donation.Donation), args.Error(1)
}

type MockRequestRepository struct{ mock.Mock }

func (m *MockRequestRepository) Add(ctx context.Context, r *request.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRequestRepository) Update(ctx context.Context, r *request.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.Request), args.Error(1)
}

func (m *MockRequestRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRequestRepository) DeleteAllForDonation(ctx context.Context, donationID kernel.UUID) error {
	args := m.Called(ctx, donationID)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) DonationRepository() ports.DonationRepository {
	args := m.Called()
	return args.Get(0).(ports.DonationRepository)
}

func (m *MockUoW) RequestRepository() ports.RequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RequestRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockDonationUoWFactory struct{ mock.Mock }

func (m *MockDonationUoWFactory) Create() commands.DonationUoW {
	args := m.Called()
	return args.Get(0).(commands.DonationUoW)
}
