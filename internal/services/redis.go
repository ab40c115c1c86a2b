package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"fairmines/internal/config"
	"fairmines/internal/game"
)

// RedisStore keeps the per-session balance scalar and sequence counter
// in redis. A session's balance key holds a single decimal value;
// absence means the session is new and reads as the starting balance.
type RedisStore struct {
	client          *redis.Client
	startingBalance float64
}

func NewRedisStore(cfg *config.Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %v", err)
	}

	return &RedisStore{
		client:          client,
		startingBalance: cfg.StartingBalance,
	}, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) Balance(ctx context.Context, sessionID string) (float64, error) {
	key := fmt.Sprintf(KeyBalance, sessionID)

	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		if err := s.client.Set(ctx, key, s.startingBalance, TTLSession).Err(); err != nil {
			return 0, fmt.Errorf("failed to initialize balance: %v", err)
		}
		return s.startingBalance, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get balance: %v", err)
	}

	balance, err := strconv.ParseFloat(data, 64)
	if err != nil {
		// Corrupted value: fall back to the starting balance.
		if err := s.client.Set(ctx, key, s.startingBalance, TTLSession).Err(); err != nil {
			return 0, fmt.Errorf("failed to reset balance: %v", err)
		}
		return s.startingBalance, nil
	}

	return balance, nil
}

// debitScript rejects atomically when the balance does not cover the
// amount, so a failed bet can never leave a partial deduction.
var debitScript = redis.NewScript(`
	local key = KEYS[1]
	local amount = tonumber(ARGV[1])
	local starting = tonumber(ARGV[2])
	local ttl = tonumber(ARGV[3])

	local balance = tonumber(redis.call("GET", key))
	if not balance then
		balance = starting
	end

	if balance < amount then
		return redis.error_reply("insufficient balance")
	end

	balance = balance - amount
	redis.call("SET", key, tostring(balance), "EX", ttl)

	return tostring(balance)
`)

func (s *RedisStore) Debit(ctx context.Context, sessionID string, amount float64) (float64, error) {
	key := fmt.Sprintf(KeyBalance, sessionID)

	result, err := debitScript.Run(ctx, s.client, []string{key},
		amount, s.startingBalance, int(TTLSession.Seconds())).Text()
	if err != nil {
		if strings.Contains(err.Error(), "insufficient balance") {
			return 0, game.ErrInsufficientBalance
		}
		return 0, fmt.Errorf("failed to debit balance: %v", err)
	}

	return strconv.ParseFloat(result, 64)
}

var creditScript = redis.NewScript(`
	local key = KEYS[1]
	local amount = tonumber(ARGV[1])
	local starting = tonumber(ARGV[2])
	local ttl = tonumber(ARGV[3])

	local balance = tonumber(redis.call("GET", key))
	if not balance then
		balance = starting
	end

	balance = balance + amount
	redis.call("SET", key, tostring(balance), "EX", ttl)

	return tostring(balance)
`)

func (s *RedisStore) Credit(ctx context.Context, sessionID string, amount float64) (float64, error) {
	key := fmt.Sprintf(KeyBalance, sessionID)

	result, err := creditScript.Run(ctx, s.client, []string{key},
		amount, s.startingBalance, int(TTLSession.Seconds())).Text()
	if err != nil {
		return 0, fmt.Errorf("failed to credit balance: %v", err)
	}

	return strconv.ParseFloat(result, 64)
}

// DeleteSession removes a session's balance and sequence keys.
func (s *RedisStore) DeleteSession(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx,
		fmt.Sprintf(KeyBalance, sessionID),
		fmt.Sprintf(KeySequence, sessionID)).Err()
}

func (s *RedisStore) NextSequence(ctx context.Context, sessionID string) (int64, error) {
	key := fmt.Sprintf(KeySequence, sessionID)

	seq, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to advance sequence: %v", err)
	}
	s.client.Expire(ctx, key, TTLSession)

	return seq, nil
}
