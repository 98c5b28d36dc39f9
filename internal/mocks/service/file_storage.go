package service

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockFileStorage is a mock implementation of service.FileStorage.
type MockFileStorage struct {
	mock.Mock
}

// NewMockFileStorage creates a mock wired to the test's lifecycle.
func NewMockFileStorage(t TestingT) *MockFileStorage {
	m := &MockFileStorage{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockFileStorageExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expectation builder for this mock.
func (_m *MockFileStorage) EXPECT() *MockFileStorageExpecter {
	return &MockFileStorageExpecter{mock: &_m.Mock}
}

func (_e *MockFileStorageExpecter) Save(ctx any, key any, contentType any, body any) *mock.Call {
	return _e.mock.On("Save", ctx, key, contentType, body)
}

func (_e *MockFileStorageExpecter) Delete(ctx any, key any) *mock.Call {
	return _e.mock.On("Delete", ctx, key)
}

func (_m *MockFileStorage) Save(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	ret := _m.Called(ctx, key, contentType, body)

	return ret.String(0), ret.Error(1)
}

func (_m *MockFileStorage) Delete(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)

	return ret.Error(0)
}
