package repository

import (
	"context"

	"organico/internal/domain/entity"
	domainrepo "organico/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

// NewMockProductRepository creates a mock wired to the test's lifecycle.
func NewMockProductRepository(t TestingT) *MockProductRepository {
	m := &MockProductRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockProductRepositoryExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expectation builder for this mock.
func (_m *MockProductRepository) EXPECT() *MockProductRepositoryExpecter {
	return &MockProductRepositoryExpecter{mock: &_m.Mock}
}

func (_e *MockProductRepositoryExpecter) FindByID(ctx any, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_e *MockProductRepositoryExpecter) FindByIDs(ctx any, ids any) *mock.Call {
	return _e.mock.On("FindByIDs", ctx, ids)
}

func (_e *MockProductRepositoryExpecter) List(ctx any, query any) *mock.Call {
	return _e.mock.On("List", ctx, query)
}

func (_e *MockProductRepositoryExpecter) ListCategories(ctx any) *mock.Call {
	return _e.mock.On("ListCategories", ctx)
}

func (_m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Product)
	}

	return r0, ret.Error(1)
}

func (_m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	ret := _m.Called(ctx, ids)

	var r0 []*entity.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Product)
	}

	return r0, ret.Error(1)
}

func (_m *MockProductRepository) List(ctx context.Context, query *domainrepo.ProductQuery) ([]*entity.Product, error) {
	ret := _m.Called(ctx, query)

	var r0 []*entity.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Product)
	}

	return r0, ret.Error(1)
}

func (_m *MockProductRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	ret := _m.Called(ctx)

	var r0 []*entity.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Category)
	}

	return r0, ret.Error(1)
}
