// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mgrodionov/fullstack-homework/internal/account"
	"github.com/mgrodionov/fullstack-homework/internal/platform/dberr"
)

// memoryStore is an in-memory [account.UserStore] for service and handler tests.
type memoryStore struct {
	mu       sync.Mutex
	accounts map[string]account.Account
	hashes   map[string]string

	findByIDCalls int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		accounts: make(map[string]account.Account),
		hashes:   make(map[string]string),
	}
}

func (store *memoryStore) FindByID(_ context.Context, id string) (*account.Account, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.findByIDCalls++
	found, ok := store.accounts[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return &found, nil
}

func (store *memoryStore) FindByEmail(_ context.Context, email string) (*account.Account, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, candidate := range store.accounts {
		if candidate.Email == email {
			found := candidate
			return &found, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (store *memoryStore) FindByEmailAndHash(ctx context.Context, email, hash string) (*account.Account, error) {
	found, err := store.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	if store.hashes[found.ID] != hash {
		return nil, dberr.ErrNotFound
	}
	return found, nil
}

func (store *memoryStore) Insert(ctx context.Context, email, hash string) (*account.Account, error) {
	if _, err := store.FindByEmail(ctx, email); err == nil {
		return nil, dberr.ErrDuplicate
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	created := account.Account{ID: uuid.NewString(), Email: email, CreatedAt: time.Now().UTC()}
	store.accounts[created.ID] = created
	store.hashes[created.ID] = hash
	return &created, nil
}

func (store *memoryStore) DeleteByID(_ context.Context, id string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, ok := store.accounts[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(store.accounts, id)
	delete(store.hashes, id)
	return nil
}

func (store *memoryStore) hashOf(id string) string {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.hashes[id]
}

func (store *memoryStore) idLookups() int {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.findByIDCalls
}
