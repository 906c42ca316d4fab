package mocks

import (
	"github.com/stretchr/testify/mock"
	"github.com/trufurrs/tagsim/pkg/identity"
)

// MockTagInfo is a mock implementation of the TagInfoInterface
type MockTagInfo struct {
	mock.Mock
}

func (m *MockTagInfo) LoadTagInfo() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTagInfo) GetDeviceID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockTagInfo) GetIdentity() *identity.Identity {
	args := m.Called()
	return args.Get(0).(*identity.Identity)
}
