package repository

import (
	"context"

	"organico/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProducerRepository is a mock implementation of repository.ProducerRepository.
type MockProducerRepository struct {
	mock.Mock
}

// NewMockProducerRepository creates a mock wired to the test's lifecycle.
func NewMockProducerRepository(t TestingT) *MockProducerRepository {
	m := &MockProducerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockProducerRepositoryExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expectation builder for this mock.
func (_m *MockProducerRepository) EXPECT() *MockProducerRepositoryExpecter {
	return &MockProducerRepositoryExpecter{mock: &_m.Mock}
}

func (_e *MockProducerRepositoryExpecter) Create(ctx any, profile any) *mock.Call {
	return _e.mock.On("Create", ctx, profile)
}

func (_e *MockProducerRepositoryExpecter) FindByUserID(ctx any, userID any) *mock.Call {
	return _e.mock.On("FindByUserID", ctx, userID)
}

func (_e *MockProducerRepositoryExpecter) Update(ctx any, profile any) *mock.Call {
	return _e.mock.On("Update", ctx, profile)
}

func (_m *MockProducerRepository) Create(ctx context.Context, profile *entity.ProducerProfile) error {
	ret := _m.Called(ctx, profile)

	return ret.Error(0)
}

func (_m *MockProducerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ProducerProfile, error) {
	ret := _m.Called(ctx, userID)

	var r0 *entity.ProducerProfile
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.ProducerProfile)
	}

	return r0, ret.Error(1)
}

func (_m *MockProducerRepository) Update(ctx context.Context, profile *entity.ProducerProfile) error {
	ret := _m.Called(ctx, profile)

	return ret.Error(0)
}
