// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mgrodionov/fullstack-homework/internal/platform/constants"
	"github.com/mgrodionov/fullstack-homework/internal/platform/ctxutil"
)

// CachedStore fronts a [UserStore] with a Redis read-through cache for
// [UserStore.FindByID], the lookup every authenticated request performs.
//
// # Consistency
//
// Entries are written after a successful miss and removed by DeleteByID. Redis
// failures are logged and treated as misses, so the cache can only make a
// request faster, never fail it. A delete on another replica may leave a stale
// entry here for at most the configured TTL.
type CachedStore struct {
	UserStore

	client *redis.Client
	ttl    time.Duration
}

// NewCachedStore wraps next with a Redis cache whose entries live for ttl.
func NewCachedStore(next UserStore, client *redis.Client, ttl time.Duration) *CachedStore {
	return &CachedStore{UserStore: next, client: client, ttl: ttl}
}

// cacheKey returns the Redis key of an account ID.
func cacheKey(id string) string {
	return constants.RedisPrefixAccount + id
}

// FindByID serves the account from Redis when present and fills the cache on a miss.
func (repository *CachedStore) FindByID(context context.Context, id string) (*Account, error) {
	logger := ctxutil.Logger(context)
	key := cacheKey(id)

	// ── 1. Cache Lookup ───────────────────────────────────────────────────
	payload, err := repository.client.Get(context, key).Bytes()
	switch {
	case err == nil:
		cached := &Account{}
		if err := json.Unmarshal(payload, cached); err == nil {
			return cached, nil
		}
		logger.WarnContext(context, "account_cache_entry_corrupt", slog.String("key", key))
	case !errors.Is(err, redis.Nil):
		logger.WarnContext(context, "account_cache_get_failed", slog.Any("error", err))
	}

	// ── 2. Source of Truth ────────────────────────────────────────────────
	account, err := repository.UserStore.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	// ── 3. Cache Fill ─────────────────────────────────────────────────────
	if err := repository.store(context, key, account); err != nil {
		logger.WarnContext(context, "account_cache_set_failed", slog.Any("error", err))
	}

	return account, nil
}

// DeleteByID deletes from the underlying store, then evicts the cache entry.
func (repository *CachedStore) DeleteByID(context context.Context, id string) error {
	if err := repository.UserStore.DeleteByID(context, id); err != nil {
		return err
	}

	if err := repository.client.Del(context, cacheKey(id)).Err(); err != nil {
		ctxutil.Logger(context).WarnContext(context, "account_cache_evict_failed",
			slog.String("uid", id),
			slog.Any("error", err),
		)
	}

	return nil
}

// store serializes account under key with the configured TTL.
func (repository *CachedStore) store(context context.Context, key string, account *Account) error {
	payload, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("redis_account_encode_failed: %w", err)
	}

	if err := repository.client.Set(context, key, payload, repository.ttl).Err(); err != nil {
		return fmt.Errorf("redis_account_set_failed: %w", err)
	}

	return nil
}
