// Package service provides testify-based test doubles for the domain service
// interfaces, in the expecter style used across the test suite.
package service

import "github.com/stretchr/testify/mock"

// TestingT is the subset of *testing.T the mock constructors need.
type TestingT interface {
	mock.TestingT
	Cleanup(func())
}
