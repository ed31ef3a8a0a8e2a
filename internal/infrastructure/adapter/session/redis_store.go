package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aabinvest/vip-ledger/internal/domain/entity"
	coreport "github.com/aabinvest/vip-ledger/internal/domain/port/core"
	sessionport "github.com/aabinvest/vip-ledger/internal/domain/port/session"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "vip-ledger:session:"

// RedisStore implements the session store on Redis. Each slot is one
// key; every write is also published on a channel named after the
// slot so other processes sharing the store can follow along.
type RedisStore struct {
	client *redis.Client
	logger coreport.Logger
}

// NewRedisStore creates a session store over the given client
func NewRedisStore(client *redis.Client, logger coreport.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		logger: logger,
	}
}

// Ping verifies the Redis connection
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// SetUser writes the user slot and publishes the new value
func (s *RedisStore) SetUser(ctx context.Context, user *entity.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user session: %w", err)
	}
	return s.write(ctx, sessionport.SlotUser, payload)
}

// GetUser reads the user slot; nil when no user is logged in
func (s *RedisStore) GetUser(ctx context.Context) (*entity.User, error) {
	payload, err := s.read(ctx, sessionport.SlotUser)
	if err != nil || payload == nil {
		return nil, err
	}
	var user entity.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, fmt.Errorf("failed to deserialize user session: %w", err)
	}
	return &user, nil
}

// ClearUser empties the user slot and publishes the removal
func (s *RedisStore) ClearUser(ctx context.Context) error {
	return s.clear(ctx, sessionport.SlotUser)
}

// SetAdmin writes the admin slot and publishes the new value
func (s *RedisStore) SetAdmin(ctx context.Context, admin *entity.Admin) error {
	payload, err := json.Marshal(admin)
	if err != nil {
		return fmt.Errorf("failed to serialize admin session: %w", err)
	}
	return s.write(ctx, sessionport.SlotAdmin, payload)
}

// GetAdmin reads the admin slot; nil when no admin is logged in
func (s *RedisStore) GetAdmin(ctx context.Context) (*entity.Admin, error) {
	payload, err := s.read(ctx, sessionport.SlotAdmin)
	if err != nil || payload == nil {
		return nil, err
	}
	var admin entity.Admin
	if err := json.Unmarshal(payload, &admin); err != nil {
		return nil, fmt.Errorf("failed to deserialize admin session: %w", err)
	}
	return &admin, nil
}

// ClearAdmin empties the admin slot and publishes the removal
func (s *RedisStore) ClearAdmin(ctx context.Context) error {
	return s.clear(ctx, sessionport.SlotAdmin)
}

// Subscribe delivers every published value for a slot until the
// context is cancelled.
func (s *RedisStore) Subscribe(ctx context.Context, slot string) (<-chan []byte, error) {
	sub := s.client.Subscribe(ctx, channelName(slot))
	// Wait for the subscription before reading so no publish is missed.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("failed to subscribe to session slot %s: %w", slot, err)
	}

	out := make(chan []byte)
	go func() {
		defer close(out)
		defer func() { _ = sub.Close() }()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				select {
				case out <- []byte(msg.Payload):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func (s *RedisStore) write(ctx context.Context, slot string, payload []byte) error {
	if err := s.client.Set(ctx, keyPrefix+slot, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to write session slot %s: %w", slot, err)
	}
	if err := s.client.Publish(ctx, channelName(slot), payload).Err(); err != nil {
		s.logger.Warn("Failed to publish session change", map[string]any{
			"slot":  slot,
			"error": err.Error(),
		})
	}
	return nil
}

func (s *RedisStore) read(ctx context.Context, slot string) ([]byte, error) {
	payload, err := s.client.Get(ctx, keyPrefix+slot).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session slot %s: %w", slot, err)
	}
	if len(payload) == 0 {
		return nil, nil
	}
	return payload, nil
}

func (s *RedisStore) clear(ctx context.Context, slot string) error {
	if err := s.client.Del(ctx, keyPrefix+slot).Err(); err != nil {
		return fmt.Errorf("failed to clear session slot %s: %w", slot, err)
	}
	if err := s.client.Publish(ctx, channelName(slot), "").Err(); err != nil {
		s.logger.Warn("Failed to publish session removal", map[string]any{
			"slot":  slot,
			"error": err.Error(),
		})
	}
	return nil
}

func channelName(slot string) string {
	return keyPrefix + "events:" + slot
}
