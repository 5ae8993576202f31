// internal/cache/redis.go
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"bingo-engine/internal/domain"
)

const (
	calledNumbersTTL = 10 * time.Minute
	roundResultTTL   = 24 * time.Hour
)

// NewClient builds a Redis client. An empty addr disables caching and returns nil.
func NewClient(addr, password string, db int) *goredis.Client {
	if addr == "" {
		return nil
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// Ping checks the connection within timeout. A nil client is always healthy.
func Ping(ctx context.Context, client *goredis.Client, timeout time.Duration) error {
	if client == nil {
		return nil
	}
	c, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return client.Ping(c).Err()
}

// RoundCache holds display copies of called numbers and settled round results.
// The database stays authoritative; every failure here is logged and treated as a miss.
type RoundCache struct {
	client *goredis.Client
	logger *zap.Logger
}

// NewRoundCache wraps client, which may be nil.
func NewRoundCache(client *goredis.Client, logger *zap.Logger) *RoundCache {
	return &RoundCache{client: client, logger: logger}
}

// CalledNumbers returns the cached call list of a round.
func (c *RoundCache) CalledNumbers(ctx context.Context, roundID int64) ([]int, bool) {
	var numbers []int
	if !c.getJSON(ctx, calledNumbersKey(roundID), &numbers) {
		return nil, false
	}
	return numbers, true
}

// storeLongerList replaces a cached call list only when the new list is at least as long.
// Call lists only grow within a round, so a slow reader can never roll a newer list back.
var storeLongerList = goredis.NewScript(`
local current = redis.call('GET', KEYS[1])
if current then
	local ok, list = pcall(cjson.decode, current)
	if ok and type(list) == 'table' and #list > tonumber(ARGV[2]) then
		return 0
	end
end
redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
return 1
`)

// StoreCalledNumbers caches a round's call list unless a longer one is already cached.
func (c *RoundCache) StoreCalledNumbers(ctx context.Context, roundID int64, numbers []int) {
	if c.client == nil {
		return
	}
	if numbers == nil {
		numbers = []int{}
	}
	raw, err := json.Marshal(numbers)
	if err != nil {
		c.logger.Warn("failed to encode called numbers", zap.Int64("round_id", roundID), zap.Error(err))
		return
	}
	key := calledNumbersKey(roundID)
	err = storeLongerList.Run(ctx, c.client, []string{key}, raw, len(numbers), calledNumbersTTL.Milliseconds()).Err()
	if err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// RoundResult returns a cached settled round.
func (c *RoundCache) RoundResult(ctx context.Context, roundID int64) (*domain.Round, bool) {
	var round domain.Round
	if !c.getJSON(ctx, roundResultKey(roundID), &round) {
		return nil, false
	}
	return &round, true
}

// StoreRoundResult caches a round once it is terminal. Non-terminal rounds are ignored.
func (c *RoundCache) StoreRoundResult(ctx context.Context, round *domain.Round) {
	if round == nil || !round.Status.IsTerminal() {
		return
	}
	c.setJSON(ctx, roundResultKey(round.ID), round, roundResultTTL)
}

func (c *RoundCache) getJSON(ctx context.Context, key string, dest any) bool {
	if c.client == nil {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.logger.Warn("cache entry is corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *RoundCache) setJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	if c.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("failed to encode cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}
