// internal/app.go
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	router "bingo-engine/internal/api"
	"bingo-engine/internal/api/handler"
	"bingo-engine/internal/bingo"
	"bingo-engine/internal/cache"
	"bingo-engine/internal/catalog"
	"bingo-engine/internal/config"
	"bingo-engine/internal/repository/postgres"
	"bingo-engine/internal/service"
	"bingo-engine/internal/util"
	"bingo-engine/internal/worker"
	"bingo-engine/internal/ws"
	"bingo-engine/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *zap.Logger
	DB     *sqlx.DB
	Redis  *goredis.Client // nil when caching is disabled

	// Services
	GameService   service.GameService
	WalletService service.WalletService
	AdminService  service.AdminService

	// Background
	Hub     *ws.Hub
	Sweeper *worker.TimeoutSweeper
	Caller  *worker.AutoCaller // nil when automatic calling is disabled

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components and makes sure a round is open.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	app.Logger = util.InitLogger(cfg.Log)
	app.Logger.Info("Application configuration loaded successfully.",
		zap.String("db_driver", cfg.DB.Driver),
		zap.Int64("card_price", cfg.Game.CardPrice),
		zap.Duration("round_duration", cfg.Game.RoundDuration),
	)

	// 3. Connect to Database and apply the schema
	database, err := db.NewPostgresDB(cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	if err := postgres.Migrate(ctx, app.DB); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	app.Logger.Info("Database connection established.")

	// 4. Optional result cache
	var roundCache service.RoundCache
	app.Redis = cache.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if app.Redis != nil {
		if err := cache.Ping(ctx, app.Redis, 3*time.Second); err != nil {
			return fmt.Errorf("failed to reach redis at %s: %w", cfg.Redis.Addr, err)
		}
		roundCache = cache.NewRoundCache(app.Redis, app.Logger)
		app.Logger.Info("Redis cache enabled.", zap.String("addr", cfg.Redis.Addr))
	}

	// 5. Event fan-out
	app.Hub = ws.NewHub(app.Logger)

	// 6. Initialize Services
	cards, err := catalog.Standard()
	if err != nil {
		return fmt.Errorf("failed to load card catalog: %w", err)
	}
	deps := service.Dependencies{
		DBBeginner:  app.DB,
		DBExecutor:  app.DB,
		Users:       postgres.NewUserRepository(),
		Rounds:      postgres.NewRoundRepository(),
		Called:      postgres.NewCalledNumberRepository(),
		Cards:       postgres.NewCardRepository(),
		Settings:    postgres.NewSettingsRepository(),
		Ledger:      postgres.NewLedgerRepository(),
		Reports:     postgres.NewReportRepository(),
		Payments:    postgres.NewPaymentRepository(),
		Withdrawals: postgres.NewWithdrawalRepository(),
		BeginTx:     db.BeginTx,
		CommitTx:    db.CommitTx,
		RollbackTx:  db.RollbackTx,
		Publisher:   app.Hub,
		Logger:      app.Logger,
	}
	if roundCache != nil {
		deps.Cache = roundCache
	}

	ledger := service.NewLedger(deps.Users, deps.Ledger, deps.Rounds)
	settlement := service.NewSettlementService(deps, ledger)
	app.GameService = service.NewGameService(deps, cfg.Game, cards, bingo.NewCaller(), ledger, settlement)
	app.WalletService = service.NewWalletService(deps)
	app.AdminService = service.NewAdminService(deps, cfg.Game, app.GameService, ledger, settlement)

	round, err := app.GameService.Bootstrap(ctx)
	if err != nil {
		return fmt.Errorf("failed to bootstrap game: %w", err)
	}
	app.Logger.Info("Services initialized.", zap.Int64("round_id", round.ID))

	// 7. Background workers
	app.Sweeper = worker.NewTimeoutSweeper(app.GameService, cfg.Game.SweepInterval, app.Logger)
	if cfg.Game.CallInterval > 0 {
		app.Caller = worker.NewAutoCaller(app.GameService, cfg.Game.CallInterval, app.Logger)
	}

	// 8. Initialize HTTP Handlers and Router
	app.HTTPHandler = router.NewRouter(router.Handlers{
		Game:   handler.NewGameHandler(app.GameService, app.Logger),
		Wallet: handler.NewWalletHandler(app.WalletService, app.GameService, app.Logger),
		Admin:  handler.NewAdminHandler(app.AdminService, app.Logger),
		Events: http.HandlerFunc(app.Hub.ServeWS),
	}, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.Redis != nil {
		if err := app.Redis.Close(); err != nil {
			app.Logger.Warn("Failed to close redis client", zap.Error(err))
		}
	}
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", zap.Error(err))
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	_ = app.Logger.Sync()
	return nil
}
