package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTokenService is a mock implementation of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock wired to the test's lifecycle.
func NewMockTokenService(t TestingT) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockTokenServiceExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expectation builder for this mock.
func (_m *MockTokenService) EXPECT() *MockTokenServiceExpecter {
	return &MockTokenServiceExpecter{mock: &_m.Mock}
}

func (_e *MockTokenServiceExpecter) GenerateTokens(userID any, roles any) *mock.Call {
	return _e.mock.On("GenerateTokens", userID, roles)
}

func (_e *MockTokenServiceExpecter) ValidateToken(tokenString any, secret any) *mock.Call {
	return _e.mock.On("ValidateToken", tokenString, secret)
}

func (_e *MockTokenServiceExpecter) GetRefreshTokenDuration() *mock.Call {
	return _e.mock.On("GetRefreshTokenDuration")
}

func (_m *MockTokenService) GenerateTokens(userID uuid.UUID, roles []string) (string, string, error) {
	ret := _m.Called(userID, roles)

	return ret.String(0), ret.String(1), ret.Error(2)
}

func (_m *MockTokenService) ValidateToken(tokenString string, secret string) (*jwt.Token, error) {
	ret := _m.Called(tokenString, secret)

	var r0 *jwt.Token
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*jwt.Token)
	}

	return r0, ret.Error(1)
}

func (_m *MockTokenService) GetRefreshTokenDuration() time.Duration {
	ret := _m.Called()

	return ret.Get(0).(time.Duration)
}
