package repository

import (
	"context"

	"organico/internal/domain/entity"
	domainrepo "organico/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockLocationRepository is a mock implementation of repository.LocationRepository.
type MockLocationRepository struct {
	mock.Mock
}

// NewMockLocationRepository creates a mock wired to the test's lifecycle.
func NewMockLocationRepository(t TestingT) *MockLocationRepository {
	m := &MockLocationRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockLocationRepositoryExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expectation builder for this mock.
func (_m *MockLocationRepository) EXPECT() *MockLocationRepositoryExpecter {
	return &MockLocationRepositoryExpecter{mock: &_m.Mock}
}

func (_e *MockLocationRepositoryExpecter) Create(ctx any, location any, productIDs any) *mock.Call {
	return _e.mock.On("Create", ctx, location, productIDs)
}

func (_e *MockLocationRepositoryExpecter) FindByID(ctx any, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_e *MockLocationRepositoryExpecter) FindActiveByID(ctx any, id any) *mock.Call {
	return _e.mock.On("FindActiveByID", ctx, id)
}

func (_e *MockLocationRepositoryExpecter) Update(ctx any, location any) *mock.Call {
	return _e.mock.On("Update", ctx, location)
}

func (_e *MockLocationRepositoryExpecter) ReplaceProducts(ctx any, locationID any, productIDs any) *mock.Call {
	return _e.mock.On("ReplaceProducts", ctx, locationID, productIDs)
}

func (_e *MockLocationRepositoryExpecter) AddImage(ctx any, image any) *mock.Call {
	return _e.mock.On("AddImage", ctx, image)
}

func (_e *MockLocationRepositoryExpecter) ListMarkers(ctx any, query any) *mock.Call {
	return _e.mock.On("ListMarkers", ctx, query)
}

func (_e *MockLocationRepositoryExpecter) Delete(ctx any, id any) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

func (_m *MockLocationRepository) Create(ctx context.Context, location *entity.Location, productIDs []uuid.UUID) error {
	ret := _m.Called(ctx, location, productIDs)

	return ret.Error(0)
}

func (_m *MockLocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Location
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Location)
	}

	return r0, ret.Error(1)
}

func (_m *MockLocationRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Location
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Location)
	}

	return r0, ret.Error(1)
}

func (_m *MockLocationRepository) Update(ctx context.Context, location *entity.Location) error {
	ret := _m.Called(ctx, location)

	return ret.Error(0)
}

func (_m *MockLocationRepository) ReplaceProducts(ctx context.Context, locationID uuid.UUID, productIDs []uuid.UUID) error {
	ret := _m.Called(ctx, locationID, productIDs)

	return ret.Error(0)
}

func (_m *MockLocationRepository) AddImage(ctx context.Context, image *entity.LocationImage) error {
	ret := _m.Called(ctx, image)

	return ret.Error(0)
}

func (_m *MockLocationRepository) ListMarkers(ctx context.Context, query *domainrepo.LocationQuery) ([]*entity.LocationMarker, error) {
	ret := _m.Called(ctx, query)

	var r0 []*entity.LocationMarker
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.LocationMarker)
	}

	return r0, ret.Error(1)
}

func (_m *MockLocationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}
