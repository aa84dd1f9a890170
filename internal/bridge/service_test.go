package bridge

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ArcFarmia_Go/internal/catalog"
	"github.com/osse101/ArcFarmia_Go/internal/clock"
	"github.com/osse101/ArcFarmia_Go/internal/domain"
	"github.com/osse101/ArcFarmia_Go/internal/event"
	"github.com/osse101/ArcFarmia_Go/internal/farm"
	"github.com/osse101/ArcFarmia_Go/mocks"
)

var testAddress = common.HexToAddress("0x00000000000000000000000000000000000000aa")

type notices struct {
	mu     sync.Mutex
	events []event.Event
}

func (n *notices) handle(_ context.Context, evt event.Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, evt)
	return nil
}

func (n *notices) last(typ event.Type) (event.Event, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i := len(n.events) - 1; i >= 0; i-- {
		if n.events[i].Type == typ {
			return n.events[i], true
		}
	}
	return event.Event{}, false
}

func (n *notices) outcomes() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []string
	for _, e := range n.events {
		if p, ok := e.Payload.(domain.ChainTransactionPayload); ok {
			out = append(out, p.Outcome)
		}
	}
	return out
}

type harness struct {
	svc      Service
	farm     farm.Service
	wallet   *mocks.MockWallet
	progress *mocks.MockProgress
	game     *mocks.MockGame
	autosave *mocks.MockAutosaver
	seen     *notices
}

func newHarness(t *testing.T, offset int) *harness {
	t.Helper()
	bus := event.NewMemoryBus()
	seen := &notices{}
	for _, typ := range []event.Type{event.Notice, event.ChainTransaction, event.SessionChanged, event.ActionRejected} {
		bus.Subscribe(typ, seen.handle)
	}

	cat := catalog.Default()
	f := farm.NewService(cat, clock.NewSimulatedClock(time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)), bus)

	h := &harness{
		farm:     f,
		wallet:   mocks.NewMockWallet(t),
		progress: mocks.NewMockProgress(t),
		game:     mocks.NewMockGame(t),
		autosave: mocks.NewMockAutosaver(t),
		seen:     seen,
	}
	h.wallet.On("Address").Return(testAddress).Maybe()
	h.svc = NewService(Deps{
		Farm:        f,
		Catalog:     cat,
		Wallet:      h.wallet,
		Progress:    h.progress,
		Game:        h.game,
		Autosave:    h.autosave,
		Bus:         bus,
		LevelOffset: offset,
	})
	return h
}

// connect opens a session against an empty chain profile
func (h *harness) connect(t *testing.T) {
	t.Helper()
	h.autosave.On("Resume", mock.Anything).Once()
	h.autosave.On("LoadOnStart", mock.Anything).Return(false).Once()
	h.progress.On("GetPlayer", mock.Anything, testAddress).Return(domain.ChainProfile{}, nil).Once()
	_, err := h.svc.Connect(context.Background())
	require.NoError(t, err)
}

func minedTx(t *testing.T, hash string) *mocks.MockTxHandle {
	tx := mocks.NewMockTxHandle(t)
	tx.On("Hash").Return(hash)
	tx.On("Wait", mock.Anything).Return(nil).Once()
	return tx
}

func TestConnect_WithoutChain(t *testing.T) {
	bus := event.NewMemoryBus()
	seen := &notices{}
	bus.Subscribe(event.Notice, seen.handle)

	svc := NewService(Deps{Farm: farm.NewService(catalog.Default(), clock.NewRealClock(), bus), Catalog: catalog.Default(), Bus: bus})

	session, err := svc.Connect(context.Background())
	assert.ErrorIs(t, err, domain.ErrWalletUnavailable)
	assert.False(t, session.Connected)

	evt, ok := seen.last(event.Notice)
	require.True(t, ok)
	assert.Equal(t, MsgWalletMissing, evt.Payload.(domain.NoticePayload).Message)
	assert.Equal(t, domain.NoticeError, evt.Payload.(domain.NoticePayload).Level)

	_, err = svc.SaveToChain(context.Background())
	assert.ErrorIs(t, err, domain.ErrWalletUnavailable)
}

func TestChainActions_RequireSession(t *testing.T) {
	h := newHarness(t, 1)
	ctx := context.Background()

	_, err := h.svc.LoadFromChain(ctx)
	assert.ErrorIs(t, err, domain.ErrWalletNotConnected)
	_, err = h.svc.SaveToChain(ctx)
	assert.ErrorIs(t, err, domain.ErrWalletNotConnected)
	_, err = h.svc.BuySeeds(ctx, domain.CropWheat, PackSingle)
	assert.ErrorIs(t, err, domain.ErrWalletNotConnected)
	_, err = h.svc.ClaimDaily(ctx)
	assert.ErrorIs(t, err, domain.ErrWalletNotConnected)
}

func TestConnect_AppliesStoredProfile(t *testing.T) {
	h := newHarness(t, 1)
	h.autosave.On("Resume", mock.Anything).Once()
	h.autosave.On("LoadOnStart", mock.Anything).Return(true).Once()
	h.progress.On("GetPlayer", mock.Anything, testAddress).Return(domain.ChainProfile{
		Coins: 120, XP: 7, Level: 3, WheatSeeds: 9, Eggs: 2,
	}, nil).Once()

	session, err := h.svc.Connect(context.Background())
	require.NoError(t, err)
	assert.True(t, session.Connected)
	assert.Equal(t, testAddress.Hex(), session.Address)
	assert.Equal(t, session, h.svc.Session())

	prog := h.farm.Progression()
	assert.Equal(t, int64(120), prog.ArcCoins)
	assert.Equal(t, 2, prog.Level, "stored level carries the offset")
	assert.Equal(t, domain.XPForLevelUp(2), prog.NextLevelXP)
	assert.Equal(t, 9, h.farm.Snapshot().Seeds.Get(domain.CropWheat))
	assert.Equal(t, 0, h.farm.Snapshot().Seeds.Get(domain.CropCorn))
}

func TestConnect_ChainLoadFailureStillConnects(t *testing.T) {
	h := newHarness(t, 1)
	h.autosave.On("Resume", mock.Anything).Once()
	h.autosave.On("LoadOnStart", mock.Anything).Return(false).Once()
	h.progress.On("GetPlayer", mock.Anything, testAddress).
		Return(domain.ChainProfile{}, errors.New("dial tcp: connection refused")).Once()

	session, err := h.svc.Connect(context.Background())
	require.NoError(t, err)
	assert.True(t, session.Connected)
	assert.Equal(t, int64(domain.StartingArcCoins), h.farm.Progression().ArcCoins)

	evt, ok := h.seen.last(event.Notice)
	require.True(t, ok)
	notice := evt.Payload.(domain.NoticePayload)
	assert.Equal(t, MsgChainLoadFailed, notice.Message)
	assert.Contains(t, notice.Reason, "connection refused")
}

func TestLoadFromChain_EmptyProfile(t *testing.T) {
	tests := []struct {
		name    string
		offset  int
		profile domain.ChainProfile
		applied bool
	}{
		{"offset: level zero means never saved", 1, domain.ChainProfile{Coins: 80}, false},
		{"offset: saved at level zero", 1, domain.ChainProfile{Level: 1}, true},
		{"legacy: all zero", 0, domain.ChainProfile{}, false},
		{"legacy: any field set", 0, domain.ChainProfile{Coins: 5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, tt.offset)
			h.connect(t)
			before := h.farm.Revision()

			h.progress.On("GetPlayer", mock.Anything, testAddress).Return(tt.profile, nil).Once()
			res, err := h.svc.LoadFromChain(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.applied, res.Applied)
			if !tt.applied {
				assert.Equal(t, before, h.farm.Revision())
				assert.Equal(t, MsgNoChainProgress, res.Reason)
			}
		})
	}
}

func TestDisconnect_ResetsAndSuspends(t *testing.T) {
	h := newHarness(t, 1)
	h.connect(t)
	ctx := context.Background()

	_, err := h.farm.DebitCoins(ctx, 30)
	require.NoError(t, err)

	h.autosave.On("Suspend", mock.Anything).Once()
	session, err := h.svc.Disconnect(ctx)
	require.NoError(t, err)
	assert.False(t, session.Connected)
	assert.False(t, h.svc.Session().Connected)
	assert.Equal(t, int64(domain.StartingArcCoins), h.farm.Progression().ArcCoins)
	assert.Equal(t, domain.DefaultSeeds(), h.farm.Snapshot().Seeds)

	evt, ok := h.seen.last(event.SessionChanged)
	require.True(t, ok)
	assert.Equal(t, domain.Session{}, evt.Payload)
}

func TestSaveToChain(t *testing.T) {
	h := newHarness(t, 1)
	h.connect(t)
	ctx := context.Background()

	_, err := h.farm.BuyAnimal(ctx, 0, domain.AnimalChicken)
	require.NoError(t, err)
	snap := h.farm.Snapshot()

	tx := minedTx(t, "0xsave")
	h.progress.On("SavePlayer", mock.Anything, domain.ChainProfile{
		Coins:       snap.ArcCoins,
		XP:          snap.XP,
		Level:       snap.Level + 1,
		WheatSeeds:  domain.StartingWheatSeeds,
		CornSeeds:   domain.StartingCornSeeds,
		CarrotSeeds: domain.StartingCarrotSeeds,
		Chickens:    1,
	}).Return(tx, nil).Once()

	notice, err := h.svc.SaveToChain(ctx)
	require.NoError(t, err)
	assert.Equal(t, MsgChainSaved, notice.Message)
	assert.Equal(t, []string{domain.TxOutcomeSubmitted, domain.TxOutcomeMined}, h.seen.outcomes())
}

func TestSaveToChain_Reverted(t *testing.T) {
	h := newHarness(t, 1)
	h.connect(t)

	tx := mocks.NewMockTxHandle(t)
	tx.On("Hash").Return("0xbad")
	tx.On("Wait", mock.Anything).Return(domain.ErrTransactionReverted).Once()
	h.progress.On("SavePlayer", mock.Anything, mock.Anything).Return(tx, nil).Once()

	_, err := h.svc.SaveToChain(context.Background())
	assert.ErrorIs(t, err, domain.ErrTransactionReverted)
	assert.Equal(t, []string{domain.TxOutcomeSubmitted, domain.TxOutcomeFailed}, h.seen.outcomes())

	evt, ok := h.seen.last(event.Notice)
	require.True(t, ok)
	assert.Equal(t, domain.ErrMsgTransactionReverted, evt.Payload.(domain.NoticePayload).Reason)
}

func TestBuySeeds(t *testing.T) {
	h := newHarness(t, 1)
	h.connect(t)
	ctx := context.Background()

	tx := minedTx(t, "0xbuy")
	h.game.On("BuySeeds", mock.Anything, uint8(1), PackTen).Return(tx, nil).Once()

	res, err := h.svc.BuySeeds(ctx, domain.CropWheat, PackTen)
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.Equal(t, int64(-30), res.CoinsDelta)
	assert.Equal(t, int64(20), h.farm.Progression().ArcCoins)
	assert.Equal(t, domain.StartingWheatSeeds+10, h.farm.Snapshot().Seeds.Get(domain.CropWheat))

	require.NoError(t, h.svc.Shutdown(ctx))
	assert.Equal(t, []string{domain.TxOutcomeSubmitted, domain.TxOutcomeMined}, h.seen.outcomes())
}

func TestBuySeeds_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		cropID  string
		amount  int
		wantErr error
	}{
		{"not enough coins", domain.CropCorn, PackTen, domain.ErrActionRejected},
		{"unknown crop", "pumpkin", PackSingle, domain.ErrActionRejected},
		{"bad pack size", domain.CropWheat, 3, domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, 1)
			h.connect(t)
			before := h.farm.Snapshot()

			res, err := h.svc.BuySeeds(context.Background(), tt.cropID, tt.amount)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, res.Applied)
			assert.Equal(t, before, h.farm.Snapshot())
			h.game.AssertNotCalled(t, "BuySeeds", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestBuySeeds_SubmitFailureLeavesState(t *testing.T) {
	h := newHarness(t, 1)
	h.connect(t)
	before := h.farm.Snapshot()

	h.game.On("BuySeeds", mock.Anything, uint8(1), PackSingle).
		Return(nil, errors.New("insufficient funds for gas")).Once()

	_, err := h.svc.BuySeeds(context.Background(), domain.CropWheat, PackSingle)
	assert.ErrorIs(t, err, domain.ErrChainUnavailable)
	assert.Equal(t, before, h.farm.Snapshot())
	assert.Equal(t, []string{domain.TxOutcomeFailed}, h.seen.outcomes())
}

func TestClaimDaily(t *testing.T) {
	h := newHarness(t, 1)
	h.connect(t)

	tx := minedTx(t, "0xdaily")
	h.game.On("ClaimDailySeeds", mock.Anything).Return(tx, nil).Once()
	h.game.On("DailySeedCropID", mock.Anything).Return(uint8(3), nil).Once()
	h.game.On("DailySeedAmount", mock.Anything).Return(4, nil).Once()

	res, err := h.svc.ClaimDaily(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.Equal(t, domain.StartingCarrotSeeds+4, h.farm.Snapshot().Seeds.Get(domain.CropCarrot))
}

func TestClaimDaily_UnknownCrop(t *testing.T) {
	h := newHarness(t, 1)
	h.connect(t)
	before := h.farm.Snapshot()

	tx := minedTx(t, "0xdaily")
	h.game.On("ClaimDailySeeds", mock.Anything).Return(tx, nil).Once()
	h.game.On("DailySeedCropID", mock.Anything).Return(uint8(42), nil).Once()
	h.game.On("DailySeedAmount", mock.Anything).Return(4, nil).Once()

	_, err := h.svc.ClaimDaily(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnknownCatalogEntry)
	assert.Equal(t, before, h.farm.Snapshot())
}
