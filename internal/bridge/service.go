package bridge

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/ArcFarmia_Go/internal/catalog"
	"github.com/osse101/ArcFarmia_Go/internal/chain"
	"github.com/osse101/ArcFarmia_Go/internal/domain"
	"github.com/osse101/ArcFarmia_Go/internal/event"
	"github.com/osse101/ArcFarmia_Go/internal/farm"
	"github.com/osse101/ArcFarmia_Go/internal/logger"
)

// Service coordinates the wallet session and the remote ledger with the farm
type Service interface {
	Session() domain.Session
	Connect(ctx context.Context) (domain.Session, error)
	Disconnect(ctx context.Context) (domain.Session, error)

	LoadFromChain(ctx context.Context) (farm.Result, error)
	SaveToChain(ctx context.Context) (domain.NoticePayload, error)
	BuySeeds(ctx context.Context, cropID string, amount int) (farm.Result, error)
	ClaimDaily(ctx context.Context) (farm.Result, error)

	Shutdown(ctx context.Context) error
}

// Autosaver is the part of the persistence bridge that follows the session
type Autosaver interface {
	LoadOnStart(ctx context.Context) bool
	Suspend(ctx context.Context)
	Resume(ctx context.Context)
}

// Deps wires the bridge. Wallet, Progress and Game are nil when no chain is
// configured; every chain operation then fails with domain.ErrWalletUnavailable.
type Deps struct {
	Farm        farm.Service
	Catalog     *catalog.Catalog
	Wallet      chain.Wallet
	Progress    chain.Progress
	Game        chain.Game
	Autosave    Autosaver
	Bus         event.Bus
	LevelOffset int
}

type service struct {
	mu      sync.RWMutex
	session domain.Session

	farm        farm.Service
	catalog     *catalog.Catalog
	wallet      chain.Wallet
	progress    chain.Progress
	game        chain.Game
	autosave    Autosaver
	bus         event.Bus
	levelOffset int

	// pending tracks purchases whose mining is awaited in the background
	pending sync.WaitGroup
}

// NewService creates the chain bridge
func NewService(d Deps) Service {
	return &service{
		farm:        d.Farm,
		catalog:     d.Catalog,
		wallet:      d.Wallet,
		progress:    d.Progress,
		game:        d.Game,
		autosave:    d.Autosave,
		bus:         d.Bus,
		levelOffset: max(d.LevelOffset, 0),
	}
}

func (s *service) Session() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *service) chainReady() bool {
	return s.wallet != nil && s.progress != nil && s.game != nil
}

func (s *service) requireSession() error {
	if !s.chainReady() {
		return domain.ErrWalletUnavailable
	}
	if !s.Session().Connected {
		return domain.ErrWalletNotConnected
	}
	return nil
}

// Connect opens the session, reloads the local save and then the chain profile.
// A failed chain load is reported as a notice and does not fail the connect.
func (s *service) Connect(ctx context.Context) (domain.Session, error) {
	log := logger.FromContext(ctx)

	if !s.chainReady() {
		s.notify(ctx, domain.NoticeError, MsgWalletMissing, "")
		return s.Session(), domain.ErrWalletUnavailable
	}

	s.mu.Lock()
	s.session = domain.Session{Connected: true, Address: s.wallet.Address().Hex()}
	session := s.session
	s.mu.Unlock()

	if s.autosave != nil {
		s.autosave.Resume(ctx)
		s.autosave.LoadOnStart(ctx)
	}

	log.Info(LogMsgConnected, "address", session.Address)
	s.publish(ctx, event.NewSessionChangedEvent(session))
	s.notify(ctx, domain.NoticeInfo, MsgConnected, "")

	if _, err := s.LoadFromChain(ctx); err != nil {
		log.Warn(LogMsgChainCallFailed, "action", domain.ChainActionLoad, "error", err)
	}
	return session, nil
}

// Disconnect clears the session and resets coins, seeds and experience.
// In-flight chain calls are not cancelled.
func (s *service) Disconnect(ctx context.Context) (domain.Session, error) {
	s.mu.Lock()
	s.session = domain.Session{}
	s.mu.Unlock()

	if s.autosave != nil {
		s.autosave.Suspend(ctx)
	}
	if _, err := s.farm.Reset(ctx); err != nil {
		return domain.Session{}, err
	}

	logger.FromContext(ctx).Info(LogMsgDisconnected)
	s.publish(ctx, event.NewSessionChangedEvent(domain.Session{}))
	s.notify(ctx, domain.NoticeInfo, MsgDisconnected, "")
	return domain.Session{}, nil
}

// LoadFromChain applies the stored profile. An address that never saved
// leaves local state untouched.
func (s *service) LoadFromChain(ctx context.Context) (farm.Result, error) {
	if err := s.requireSession(); err != nil {
		return farm.Result{}, err
	}

	raw, err := s.progress.GetPlayer(ctx, s.wallet.Address())
	if err != nil {
		return farm.Result{}, s.fail(ctx, domain.ChainActionLoad, "", MsgChainLoadFailed, err)
	}

	profile, ok := s.fromChain(raw)
	if !ok {
		logger.FromContext(ctx).Info(LogMsgChainLoadEmpty, "address", s.Session().Address)
		s.notify(ctx, domain.NoticeInfo, MsgNoChainProgress, "")
		return farm.Result{Action: domain.ActionApplyChain, Reason: MsgNoChainProgress}, nil
	}

	res, err := s.farm.ApplyChainProfile(ctx, profile)
	if err != nil {
		return res, err
	}
	s.notify(ctx, domain.NoticeInfo, MsgChainLoaded, "")
	return res, nil
}

// SaveToChain submits the current progress and waits for it to be mined
func (s *service) SaveToChain(ctx context.Context) (domain.NoticePayload, error) {
	if err := s.requireSession(); err != nil {
		return domain.NoticePayload{}, err
	}

	handle, err := s.progress.SavePlayer(ctx, s.toChain(s.farm.Snapshot()))
	if err != nil {
		return domain.NoticePayload{}, s.fail(ctx, domain.ChainActionSave, "", MsgChainSaveFailed, err)
	}
	s.txEvent(ctx, domain.ChainActionSave, handle.Hash(), domain.TxOutcomeSubmitted, "")

	if err := handle.Wait(ctx); err != nil {
		return domain.NoticePayload{}, s.fail(ctx, domain.ChainActionSave, handle.Hash(), MsgChainSaveFailed, err)
	}
	s.txEvent(ctx, domain.ChainActionSave, handle.Hash(), domain.TxOutcomeMined, "")
	return s.notify(ctx, domain.NoticeInfo, MsgChainSaved, ""), nil
}

// BuySeeds submits a purchase and, once the node accepts it, debits coins and
// credits seeds locally. Mining is awaited in the background and only logged.
func (s *service) BuySeeds(ctx context.Context, cropID string, amount int) (farm.Result, error) {
	if amount != PackSingle && amount != PackTen {
		return farm.Result{}, fmt.Errorf("%w: seed pack must be %d or %d, got %d", domain.ErrInvalidInput, PackSingle, PackTen, amount)
	}
	if err := s.requireSession(); err != nil {
		return farm.Result{}, err
	}

	crop, ok := s.catalog.Crop(cropID)
	if !ok {
		return s.reject(ctx, domain.Rejectf("unknown crop %q", cropID))
	}
	if crop.ChainID == 0 {
		return s.reject(ctx, domain.Rejectf("%s seeds are not sold in the shop", crop.Name))
	}
	cost := crop.BuyPrice * int64(amount)
	if coins := s.farm.Progression().ArcCoins; coins < cost {
		return s.reject(ctx, domain.Rejectf("need %d coins, have %d", cost, coins))
	}

	handle, err := s.game.BuySeeds(ctx, crop.ChainID, amount)
	if err != nil {
		return farm.Result{}, s.fail(ctx, domain.ChainActionBuySeeds, "", MsgPurchaseFailed, err)
	}
	s.txEvent(ctx, domain.ChainActionBuySeeds, handle.Hash(), domain.TxOutcomeSubmitted, "")

	res, err := s.farm.ApplyPurchase(ctx, crop.ID, amount, cost)
	if err != nil {
		return res, err
	}
	s.notify(ctx, domain.NoticeInfo, fmt.Sprintf(MsgPurchaseFormat, amount, crop.Name), "")

	s.pending.Add(1)
	go s.awaitPurchase(context.WithoutCancel(ctx), handle)
	return res, nil
}

func (s *service) awaitPurchase(ctx context.Context, handle chain.TxHandle) {
	defer s.pending.Done()
	log := logger.FromContext(ctx)

	if err := handle.Wait(ctx); err != nil {
		log.Error(LogMsgPurchaseWaitError, "tx_hash", handle.Hash(), "error", err)
		s.txEvent(ctx, domain.ChainActionBuySeeds, handle.Hash(), domain.TxOutcomeFailed, chain.Reason(err))
		return
	}
	log.Info(LogMsgPurchaseMined, "tx_hash", handle.Hash())
	s.txEvent(ctx, domain.ChainActionBuySeeds, handle.Hash(), domain.TxOutcomeMined, "")
}

// ClaimDaily submits the daily claim, waits for it to be mined, then credits
// the seeds the contract hands out.
func (s *service) ClaimDaily(ctx context.Context) (farm.Result, error) {
	if err := s.requireSession(); err != nil {
		return farm.Result{}, err
	}

	handle, err := s.game.ClaimDailySeeds(ctx)
	if err != nil {
		return farm.Result{}, s.fail(ctx, domain.ChainActionClaimDaily, "", MsgDailyClaimFailed, err)
	}
	s.txEvent(ctx, domain.ChainActionClaimDaily, handle.Hash(), domain.TxOutcomeSubmitted, "")

	if err := handle.Wait(ctx); err != nil {
		return farm.Result{}, s.fail(ctx, domain.ChainActionClaimDaily, handle.Hash(), MsgDailyClaimFailed, err)
	}
	s.txEvent(ctx, domain.ChainActionClaimDaily, handle.Hash(), domain.TxOutcomeMined, "")

	chainCropID, err := s.game.DailySeedCropID(ctx)
	if err != nil {
		return farm.Result{}, s.fail(ctx, domain.ChainActionClaimDaily, "", MsgDailyClaimFailed, err)
	}
	amount, err := s.game.DailySeedAmount(ctx)
	if err != nil {
		return farm.Result{}, s.fail(ctx, domain.ChainActionClaimDaily, "", MsgDailyClaimFailed, err)
	}

	crop, ok := s.catalog.CropByChainID(chainCropID)
	if !ok {
		err := fmt.Errorf("%w: chain crop id %d", domain.ErrUnknownCatalogEntry, chainCropID)
		s.notify(ctx, domain.NoticeError, MsgDailyClaimFailed, err.Error())
		return farm.Result{}, err
	}

	res, err := s.farm.CreditSeeds(ctx, crop.ID, amount)
	if err != nil {
		return res, err
	}
	s.notify(ctx, domain.NoticeInfo, fmt.Sprintf(MsgDailyClaimedFormat, amount, crop.Name), "")
	return res, nil
}

// Shutdown waits for background purchase confirmations
func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShutdown)

	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}

// fromChain converts a stored profile, reporting false for one never saved
func (s *service) fromChain(raw domain.ChainProfile) (domain.ChainProfile, bool) {
	if s.levelOffset == 0 {
		return raw, !raw.IsZero()
	}
	if raw.Level < s.levelOffset {
		return raw, false
	}
	raw.Level -= s.levelOffset
	return raw, true
}

func (s *service) toChain(snap domain.Snapshot) domain.ChainProfile {
	profile := domain.ChainProfile{
		Coins:       snap.ArcCoins,
		XP:          snap.XP,
		Level:       snap.Level + s.levelOffset,
		WheatSeeds:  snap.Seeds.Get(domain.CropWheat),
		CornSeeds:   snap.Seeds.Get(domain.CropCorn),
		CarrotSeeds: snap.Seeds.Get(domain.CropCarrot),
		Eggs:        snap.Produce.Get(domain.ProductEgg),
		Milk:        snap.Produce.Get(domain.ProductMilk),
	}
	for _, slot := range snap.Barn {
		switch slot.AnimalID {
		case domain.AnimalChicken:
			profile.Chickens++
		case domain.AnimalCow:
			profile.Cows++
		}
	}
	return profile
}

func (s *service) reject(ctx context.Context, err error) (farm.Result, error) {
	s.publish(ctx, event.NewActionRejectedEvent(domain.ActionPurchase, err.Error()))
	return farm.Result{Action: domain.ActionPurchase, Revision: s.farm.Revision(), Reason: err.Error()}, err
}

// fail reports a remote failure and classifies it for the transport layer
func (s *service) fail(ctx context.Context, action, txHash, message string, err error) error {
	reason := chain.Reason(err)
	logger.FromContext(ctx).Error(LogMsgChainCallFailed, "action", action, "tx_hash", txHash, "error", err)
	s.txEvent(ctx, action, txHash, domain.TxOutcomeFailed, reason)
	s.notify(ctx, domain.NoticeError, message, reason)

	switch {
	case errors.Is(err, domain.ErrWalletUnavailable),
		errors.Is(err, domain.ErrTransactionReverted),
		errors.Is(err, domain.ErrChainUnavailable),
		errors.Is(err, domain.ErrInvalidInput):
		return err
	default:
		return fmt.Errorf("%w: %w", domain.ErrChainUnavailable, err)
	}
}

func (s *service) txEvent(ctx context.Context, action, txHash, outcome, reason string) {
	s.publish(ctx, event.NewChainTransactionEvent(domain.ChainTransactionPayload{
		Action:  action,
		TxHash:  txHash,
		Outcome: outcome,
		Reason:  reason,
	}))
}

func (s *service) notify(ctx context.Context, level domain.NoticeLevel, message, reason string) domain.NoticePayload {
	n := domain.NoticePayload{
		ID:      uuid.NewString(),
		Level:   level,
		Message: message,
		Reason:  reason,
	}
	s.publish(ctx, event.NewNoticeEvent(n))
	return n
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
