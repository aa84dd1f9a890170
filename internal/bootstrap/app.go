package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/osse101/ArcFarmia_Go/internal/ambience"
	"github.com/osse101/ArcFarmia_Go/internal/bridge"
	"github.com/osse101/ArcFarmia_Go/internal/catalog"
	"github.com/osse101/ArcFarmia_Go/internal/chain"
	"github.com/osse101/ArcFarmia_Go/internal/clock"
	"github.com/osse101/ArcFarmia_Go/internal/config"
	"github.com/osse101/ArcFarmia_Go/internal/domain"
	"github.com/osse101/ArcFarmia_Go/internal/event"
	"github.com/osse101/ArcFarmia_Go/internal/farm"
	"github.com/osse101/ArcFarmia_Go/internal/savestore"
	"github.com/osse101/ArcFarmia_Go/internal/scheduler"
	"github.com/osse101/ArcFarmia_Go/internal/server"
	"github.com/osse101/ArcFarmia_Go/internal/sse"
	"github.com/osse101/ArcFarmia_Go/internal/worker"
	"github.com/osse101/ArcFarmia_Go/internal/ws"
)

// App is the wired game service
type App struct {
	Config *config.Config

	Catalog  *catalog.Catalog
	Clock    clock.Clock
	Bus      event.Bus
	Farm     farm.Service
	Bridge   bridge.Service
	Store    savestore.Store
	Autosave *worker.AutosaveWorker

	sky       *ambience.Sky
	chain     *chain.Client
	sseHub    *sse.Hub
	wsHub     *ws.Hub
	pool      *worker.Pool
	scheduler *scheduler.Scheduler
	server    *server.Server
}

// Build wires every component from cfg. Nothing is started; call Start.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	slog.Info(LogMsgCatalogLoaded,
		"path", cfg.CatalogPath,
		"crops", len(cat.Crops()),
		"animals", len(cat.Animals()),
		"quests", len(cat.Quests()))

	app := &App{
		Config:  cfg,
		Catalog: cat,
		Clock:   clock.NewRealClock(),
		Bus:     event.NewMemoryBus(),
		sky:     ambience.NewSky(nil),
	}
	app.Farm = farm.NewService(cat, app.Clock, app.Bus)

	app.Store, err = OpenSaveStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.Autosave = worker.NewAutosaveWorker(app.Farm, app.Store, cfg.SaveKey, cfg.AutosaveDebounce)

	deps := bridge.Deps{
		Farm:        app.Farm,
		Catalog:     cat,
		Autosave:    app.Autosave,
		Bus:         app.Bus,
		LevelOffset: cfg.ChainLevelOffset,
	}
	if cfg.ChainEnabled() {
		if err := app.connectChain(ctx, &deps); err != nil {
			_ = app.Store.Close()
			return nil, err
		}
	} else {
		slog.Info(LogMsgChainDisabled)
	}
	app.Bridge = bridge.NewService(deps)

	app.sseHub = sse.NewHub()
	app.wsHub = ws.NewHub(app.Farm, app.Bridge, app.sky, app.Clock)

	app.pool = worker.NewPool(WorkerPoolSize, WorkerQueueSize)
	app.scheduler = scheduler.New(app.pool)

	app.server = server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, server.Deps{
		Farm:    app.Farm,
		Bridge:  app.Bridge,
		Catalog: cat,
		Sky:     app.sky,
		Clock:   app.Clock,
		Store:   app.Store,
		SSEHub:  app.sseHub,
		WSHub:   app.wsHub,
	})

	return app, nil
}

// connectChain dials the node and fills the chain side of deps. A missing
// wallet key leaves the wallet out; chain actions then report it unavailable.
func (a *App) connectChain(ctx context.Context, deps *bridge.Deps) error {
	client, err := chain.Dial(ctx, a.Config.ChainRPCURL)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedDialChain, err)
	}
	a.chain = client

	wallet, err := chain.NewKeyWallet(a.Config.WalletPrivateKey, client.ChainID)
	if err != nil {
		if errors.Is(err, domain.ErrWalletUnavailable) {
			slog.Warn(LogMsgWalletMissing, "error", err)
			return nil
		}
		return err
	}

	var signer chain.Wallet = wallet
	progress, err := chain.NewProgressContract(a.Config.ProgressContractAddress, client.Backend, signer)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedBindContract, err)
	}
	game, err := chain.NewGameContract(a.Config.GameContractAddress, client.Backend, signer)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedBindContract, err)
	}

	deps.Wallet = signer
	deps.Progress = progress
	deps.Game = game
	slog.Info(LogMsgChainConnected,
		"chain_id", client.ChainID.String(),
		"address", wallet.Address().Hex(),
		"progress_contract", a.Config.ProgressContractAddress,
		"game_contract", a.Config.GameContractAddress)
	return nil
}

// Start restores the local save, registers event handlers and starts the
// background jobs. The HTTP server is started by Run.
func (a *App) Start(ctx context.Context) error {
	if err := RegisterEventHandlers(ctx, EventHandlerDependencies{
		EventBus: a.Bus,
		Autosave: a.Autosave,
		SSEHub:   a.sseHub,
		WSHub:    a.wsHub,
	}); err != nil {
		return err
	}

	a.Autosave.LoadOnStart(ctx)
	a.sseHub.Start()

	a.pool.Start(ctx)
	interval := a.Config.TickInterval
	a.scheduler.Schedule(interval, worker.NewGrowthJob(a.Farm, a.Clock))
	a.scheduler.Schedule(interval, worker.NewAmbienceJob(a.sky, a.Clock, a.Bus))
	a.scheduler.Schedule(interval, worker.NewPushJob(a.wsHub))
	slog.Info(LogMsgJobsScheduled, "interval", interval, "workers", WorkerPoolSize)
	return nil
}

// Run serves HTTP until ctx is cancelled or the listener fails
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// Shutdown stops every component in dependency order
func (a *App) Shutdown(ctx context.Context) {
	GracefulShutdown(ctx, ShutdownComponents{
		Server:    a.server,
		Scheduler: a.scheduler,
		Pool:      a.pool,
		Bridge:    a.Bridge,
		Autosave:  a.Autosave,
		SSEHub:    a.sseHub,
		Store:     a.Store,
		Chain:     a.chain,
	})
}

// OpenSaveStore opens the configured save backend
func OpenSaveStore(ctx context.Context, cfg *config.Config) (savestore.Store, error) {
	opts := savestore.Options{
		Backend:  cfg.SaveBackend,
		Path:     cfg.SavePath,
		Compress: cfg.SaveCompress,
	}
	if cfg.SaveBackend == config.SaveBackendPostgres {
		opts.ConnString = cfg.GetDBConnString()
		opts.MaxConns = cfg.DBMaxConns
		opts.MaxConnIdle = cfg.DBMaxConnIdleTime
		opts.MaxConnLife = cfg.DBMaxConnLifetime
	}

	store, err := savestore.Open(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
	}
	return store, nil
}
