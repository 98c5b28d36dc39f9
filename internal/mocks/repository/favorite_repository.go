package repository

import (
	"context"

	"organico/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockFavoriteRepository is a mock implementation of repository.FavoriteRepository.
type MockFavoriteRepository struct {
	mock.Mock
}

// NewMockFavoriteRepository creates a mock wired to the test's lifecycle.
func NewMockFavoriteRepository(t TestingT) *MockFavoriteRepository {
	m := &MockFavoriteRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockFavoriteRepositoryExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expectation builder for this mock.
func (_m *MockFavoriteRepository) EXPECT() *MockFavoriteRepositoryExpecter {
	return &MockFavoriteRepositoryExpecter{mock: &_m.Mock}
}

func (_e *MockFavoriteRepositoryExpecter) Create(ctx any, favorite any) *mock.Call {
	return _e.mock.On("Create", ctx, favorite)
}

func (_e *MockFavoriteRepositoryExpecter) Delete(ctx any, userID any, locationID any) *mock.Call {
	return _e.mock.On("Delete", ctx, userID, locationID)
}

func (_e *MockFavoriteRepositoryExpecter) Exists(ctx any, userID any, locationID any) *mock.Call {
	return _e.mock.On("Exists", ctx, userID, locationID)
}

func (_e *MockFavoriteRepositoryExpecter) ListByUser(ctx any, userID any) *mock.Call {
	return _e.mock.On("ListByUser", ctx, userID)
}

func (_m *MockFavoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	ret := _m.Called(ctx, favorite)

	return ret.Error(0)
}

func (_m *MockFavoriteRepository) Delete(ctx context.Context, userID, locationID uuid.UUID) (int64, error) {
	ret := _m.Called(ctx, userID, locationID)

	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *MockFavoriteRepository) Exists(ctx context.Context, userID, locationID uuid.UUID) (bool, error) {
	ret := _m.Called(ctx, userID, locationID)

	return ret.Get(0).(bool), ret.Error(1)
}

func (_m *MockFavoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	ret := _m.Called(ctx, userID)

	var r0 []*entity.Favorite
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Favorite)
	}

	return r0, ret.Error(1)
}
