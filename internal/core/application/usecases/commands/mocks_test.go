package commands_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/chiefroqa/baruk-app/internal/core/application/usecases/commands"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/custody"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/parcel"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/rider"
	"github.com/chiefroqa/baruk-app/internal/core/ports"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetByTrackingCode(ctx context.Context, trackingCode string) (*parcel.Parcel, error) {
	args := m.Called(ctx, trackingCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

type MockRiderRepository struct{ mock.Mock }

func (m *MockRiderRepository) Add(ctx context.Context, r *rider.Rider) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rider.Rider), args.Error(1)
}

type MockCustodyLogRepository struct{ mock.Mock }

func (m *MockCustodyLogRepository) Append(ctx context.Context, entry *custody.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockCustodyLogRepository) ListByParcel(ctx context.Context, parcelID kernel.UUID) ([]*custody.Entry, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*custody.Entry), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event ports.ParcelEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockUoW carries all three repository accessors, so the one type satisfies
// commands.UoW, commands.ParcelUoW, and commands.RiderUoW.
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

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockUoW) RiderRepository() ports.RiderRepository {
	args := m.Called()
	return args.Get(0).(ports.RiderRepository)
}

func (m *MockUoW) CustodyLogRepository() ports.CustodyLogRepository {
	args := m.Called()
	return args.Get(0).(ports.CustodyLogRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockRiderUoWFactory struct{ mock.Mock }

func (m *MockRiderUoWFactory) Create() commands.RiderUoW {
	args := m.Called()
	return args.Get(0).(commands.RiderUoW)
}

// Shared fixtures for handler tests.

func testActor(role kernel.Role) commands.Actor {
	actor, err := commands.NewActor(kernel.NewUUID(), role)
	if err != nil {
		panic(err)
	}
	return actor
}

func testRoute() parcel.Route {
	route, err := parcel.NewRoute("12 Pickup Lane", "7 Delivery Close", kernel.ZoneNorth)
	if err != nil {
		panic(err)
	}
	return route
}

func testParcelSearching(customerID kernel.UUID) *parcel.Parcel {
	p, err := parcel.NewParcel(kernel.NewUUID(), "BRK-ABCDEFGH", customerID, testRoute(),
		"books", parcel.SizeSmall, 3000, 200, 0, false, "", "")
	if err != nil {
		panic(err)
	}
	return p
}

func testHighValueParcelSearching(customerID kernel.UUID) *parcel.Parcel {
	p, err := parcel.NewParcel(kernel.NewUUID(), "BRK-HGFEDCBA", customerID, testRoute(),
		"camera gear", parcel.SizeMedium, 15000, 200, 225, true, "1234", "5678")
	if err != nil {
		panic(err)
	}
	return p
}
