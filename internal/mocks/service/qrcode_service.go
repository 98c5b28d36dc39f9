package service

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockQRCodeService is a mock implementation of service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

// NewMockQRCodeService creates a mock wired to the test's lifecycle.
func NewMockQRCodeService(t TestingT) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockQRCodeServiceExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expectation builder for this mock.
func (_m *MockQRCodeService) EXPECT() *MockQRCodeServiceExpecter {
	return &MockQRCodeServiceExpecter{mock: &_m.Mock}
}

func (_e *MockQRCodeServiceExpecter) GenerateLocationQR(locationID any) *mock.Call {
	return _e.mock.On("GenerateLocationQR", locationID)
}

func (_m *MockQRCodeService) GenerateLocationQR(locationID uuid.UUID) ([]byte, error) {
	ret := _m.Called(locationID)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Error(1)
}
