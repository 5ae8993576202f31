// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"bingo-engine/internal/util"
	"bingo-engine/pkg/db"
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort string
	DB         db.Config
	Redis      RedisConfig
	Log        util.LogConfig
	Game       GameConfig
}

// RedisConfig configures the optional result cache. An empty Addr disables it.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// GameConfig carries the engine's tunables, including the administrator identity.
type GameConfig struct {
	AdminID                  int64
	CardPrice                int64
	HousePercent             int
	WithdrawalFeePercent     int
	RoundDuration            time.Duration
	MaxCardsPerUser          int
	DepositBonus             int64
	SweepInterval            time.Duration
	CallInterval             time.Duration // zero disables automatic calling
	AllowPurchaseWhilePaused bool
}

// DefaultGameConfig returns the stock game parameters.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		AdminID:              6835994100,
		CardPrice:            20,
		HousePercent:         10,
		WithdrawalFeePercent: 5,
		RoundDuration:        300 * time.Second,
		MaxCardsPerUser:      3,
		DepositBonus:         10,
		SweepInterval:        5 * time.Second,
	}
}

// LoadConfig loads configuration from environment variables, after an optional .env file.
// It returns an AppConfig instance or an error if any variable is invalid.
func LoadConfig() (*AppConfig, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	dbPort, err := envInt("DB_PORT", 5432)
	if err != nil {
		return nil, err
	}
	redisDB, err := envInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	logCfg := util.LogConfig{
		Level: envString("LOG_LEVEL", "info"),
		File:  os.Getenv("LOG_FILE"),
	}
	if logCfg.MaxSizeMB, err = envInt("LOG_MAX_SIZE_MB", 100); err != nil {
		return nil, err
	}
	if logCfg.MaxBackups, err = envInt("LOG_MAX_BACKUPS", 7); err != nil {
		return nil, err
	}
	if logCfg.MaxAgeDays, err = envInt("LOG_MAX_DAYS", 14); err != nil {
		return nil, err
	}

	game, err := loadGameConfig()
	if err != nil {
		return nil, err
	}

	return &AppConfig{
		ServerPort: envString("SERVER_PORT", "8080"),
		DB: db.Config{
			Driver:   envString("DB_DRIVER", db.DriverPQ),
			Host:     envString("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     envString("DB_USER", "user"),
			Password: envString("DB_PASSWORD", "password"),
			DBName:   envString("DB_NAME", "bingodb"),
			SSLMode:  envString("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Log:  logCfg,
		Game: game,
	}, nil
}

func loadGameConfig() (GameConfig, error) {
	g := DefaultGameConfig()
	var err error

	if g.AdminID, err = envInt64("ADMIN_ID", g.AdminID); err != nil {
		return g, err
	}
	if g.CardPrice, err = envInt64("CARD_PRICE", g.CardPrice); err != nil {
		return g, err
	}
	if g.HousePercent, err = envInt("HOUSE_PERCENT", g.HousePercent); err != nil {
		return g, err
	}
	if g.WithdrawalFeePercent, err = envInt("WITHDRAWAL_FEE_PERCENT", g.WithdrawalFeePercent); err != nil {
		return g, err
	}
	seconds, err := envInt("ROUND_DURATION_SECONDS", int(g.RoundDuration/time.Second))
	if err != nil {
		return g, err
	}
	g.RoundDuration = time.Duration(seconds) * time.Second
	if g.MaxCardsPerUser, err = envInt("MAX_CARDS_PER_USER", g.MaxCardsPerUser); err != nil {
		return g, err
	}
	if g.DepositBonus, err = envInt64("DEPOSIT_BONUS", g.DepositBonus); err != nil {
		return g, err
	}
	if g.SweepInterval, err = envDuration("SWEEP_INTERVAL", g.SweepInterval); err != nil {
		return g, err
	}
	if g.CallInterval, err = envDuration("CALL_INTERVAL", g.CallInterval); err != nil {
		return g, err
	}
	if g.AllowPurchaseWhilePaused, err = envBool("ALLOW_PURCHASE_WHILE_PAUSED", false); err != nil {
		return g, err
	}

	switch {
	case g.CardPrice <= 0:
		return g, fmt.Errorf("invalid CARD_PRICE: must be positive")
	case g.HousePercent < 0 || g.HousePercent > 100:
		return g, fmt.Errorf("invalid HOUSE_PERCENT: must be within 0..100")
	case g.WithdrawalFeePercent < 0 || g.WithdrawalFeePercent > 100:
		return g, fmt.Errorf("invalid WITHDRAWAL_FEE_PERCENT: must be within 0..100")
	case g.RoundDuration <= 0:
		return g, fmt.Errorf("invalid ROUND_DURATION_SECONDS: must be positive")
	case g.MaxCardsPerUser <= 0:
		return g, fmt.Errorf("invalid MAX_CARDS_PER_USER: must be positive")
	case g.SweepInterval <= 0:
		return g, fmt.Errorf("invalid SWEEP_INTERVAL: must be positive")
	}
	return g, nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envInt64(key string, def int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func envBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
