package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/ArcFarmia_Go/internal/domain"
	"github.com/osse101/ArcFarmia_Go/internal/farm"
)

// MockBridgeService is a mock implementation of bridge.Service
type MockBridgeService struct {
	mock.Mock
}

func (m *MockBridgeService) Session() domain.Session {
	args := m.Called()
	return args.Get(0).(domain.Session)
}

func (m *MockBridgeService) Connect(ctx context.Context) (domain.Session, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *MockBridgeService) Disconnect(ctx context.Context) (domain.Session, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *MockBridgeService) LoadFromChain(ctx context.Context) (farm.Result, error) {
	args := m.Called(ctx)
	return args.Get(0).(farm.Result), args.Error(1)
}

func (m *MockBridgeService) SaveToChain(ctx context.Context) (domain.NoticePayload, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.NoticePayload), args.Error(1)
}

func (m *MockBridgeService) BuySeeds(ctx context.Context, cropID string, amount int) (farm.Result, error) {
	args := m.Called(ctx, cropID, amount)
	return args.Get(0).(farm.Result), args.Error(1)
}

func (m *MockBridgeService) ClaimDaily(ctx context.Context) (farm.Result, error) {
	args := m.Called(ctx)
	return args.Get(0).(farm.Result), args.Error(1)
}

func (m *MockBridgeService) Shutdown(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// NewMockBridgeService creates a MockBridgeService that asserts its expectations on cleanup
func NewMockBridgeService(t testingT) *MockBridgeService {
	m := &MockBridgeService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// MockAutosaver is a mock implementation of bridge.Autosaver
type MockAutosaver struct {
	mock.Mock
}

func (m *MockAutosaver) LoadOnStart(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func (m *MockAutosaver) Suspend(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockAutosaver) Resume(ctx context.Context) {
	m.Called(ctx)
}

// NewMockAutosaver creates a MockAutosaver that asserts its expectations on cleanup
func NewMockAutosaver(t testingT) *MockAutosaver {
	m := &MockAutosaver{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
