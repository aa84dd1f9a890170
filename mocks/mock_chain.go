package mocks

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/ArcFarmia_Go/internal/chain"
	"github.com/osse101/ArcFarmia_Go/internal/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockWallet is a mock implementation of chain.Wallet
type MockWallet struct {
	mock.Mock
}

func (m *MockWallet) Address() common.Address {
	args := m.Called()
	return args.Get(0).(common.Address)
}

func (m *MockWallet) Transactor(ctx context.Context) (*bind.TransactOpts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bind.TransactOpts), args.Error(1)
}

// NewMockWallet creates a MockWallet that asserts its expectations on cleanup
func NewMockWallet(t testingT) *MockWallet {
	m := &MockWallet{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// MockProgress is a mock implementation of chain.Progress
type MockProgress struct {
	mock.Mock
}

func (m *MockProgress) GetPlayer(ctx context.Context, player common.Address) (domain.ChainProfile, error) {
	args := m.Called(ctx, player)
	return args.Get(0).(domain.ChainProfile), args.Error(1)
}

func (m *MockProgress) SavePlayer(ctx context.Context, profile domain.ChainProfile) (chain.TxHandle, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(chain.TxHandle), args.Error(1)
}

// NewMockProgress creates a MockProgress that asserts its expectations on cleanup
func NewMockProgress(t testingT) *MockProgress {
	m := &MockProgress{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// MockGame is a mock implementation of chain.Game
type MockGame struct {
	mock.Mock
}

func (m *MockGame) BuySeeds(ctx context.Context, cropID uint8, amount int) (chain.TxHandle, error) {
	args := m.Called(ctx, cropID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(chain.TxHandle), args.Error(1)
}

func (m *MockGame) ClaimDailySeeds(ctx context.Context) (chain.TxHandle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(chain.TxHandle), args.Error(1)
}

func (m *MockGame) DailySeedCropID(ctx context.Context) (uint8, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint8), args.Error(1)
}

func (m *MockGame) DailySeedAmount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// NewMockGame creates a MockGame that asserts its expectations on cleanup
func NewMockGame(t testingT) *MockGame {
	m := &MockGame{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// MockTxHandle is a mock implementation of chain.TxHandle
type MockTxHandle struct {
	mock.Mock
}

func (m *MockTxHandle) Hash() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockTxHandle) Wait(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// NewMockTxHandle creates a MockTxHandle that asserts its expectations on cleanup
func NewMockTxHandle(t testingT) *MockTxHandle {
	m := &MockTxHandle{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
