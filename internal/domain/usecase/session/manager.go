package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/aabinvest/vip-ledger/internal/domain/entity"
	errs "github.com/aabinvest/vip-ledger/internal/domain/error"
	coreport "github.com/aabinvest/vip-ledger/internal/domain/port/core"
	"github.com/aabinvest/vip-ledger/internal/domain/port/persistence"
	sessionport "github.com/aabinvest/vip-ledger/internal/domain/port/session"
)

// Manager tracks the single logged-in user or admin identity, mirrors
// it into the session store, and follows external changes published by
// other views of the same store. User and admin are mutually
// exclusive: setting one clears the other.
type Manager struct {
	store    sessionport.Store
	userRepo persistence.UserRepository
	logger   coreport.Logger

	mu     sync.RWMutex
	user   *entity.User
	admin  *entity.Admin
	cancel context.CancelFunc
}

// NewManager creates a session manager over the given store.
func NewManager(store sessionport.Store, userRepo persistence.UserRepository, logger coreport.Logger) *Manager {
	return &Manager{
		store:    store,
		userRepo: userRepo,
		logger:   logger,
	}
}

// SetActiveUser logs a user in: the identity is mirrored to the store
// slot and any admin session is dropped.
func (m *Manager) SetActiveUser(ctx context.Context, user *entity.User) error {
	if err := m.store.ClearAdmin(ctx); err != nil {
		return err
	}
	if err := m.store.SetUser(ctx, user); err != nil {
		return err
	}
	m.mu.Lock()
	m.user = user
	m.admin = nil
	m.mu.Unlock()
	return nil
}

// SetActiveAdmin logs an admin in, dropping any user session.
func (m *Manager) SetActiveAdmin(ctx context.Context, admin *entity.Admin) error {
	if err := m.store.ClearUser(ctx); err != nil {
		return err
	}
	if err := m.store.SetAdmin(ctx, admin); err != nil {
		return err
	}
	m.mu.Lock()
	m.admin = admin
	m.user = nil
	m.mu.Unlock()
	return nil
}

// ActiveUser returns the logged-in user, if any.
func (m *Manager) ActiveUser() *entity.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// ActiveAdmin returns the logged-in admin, if any.
func (m *Manager) ActiveAdmin() *entity.Admin {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.admin
}

// Clear logs out whichever identity is active.
func (m *Manager) Clear(ctx context.Context) error {
	if err := m.store.ClearUser(ctx); err != nil {
		return err
	}
	if err := m.store.ClearAdmin(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	m.user = nil
	m.admin = nil
	m.mu.Unlock()
	return nil
}

// Sync re-reads the canonical record for the active user and writes it
// through the session slot. Called after every ledger write and on the
// periodic tick. A user deleted underneath the session is logged out.
func (m *Manager) Sync(ctx context.Context) error {
	m.mu.RLock()
	active := m.user
	m.mu.RUnlock()
	if active == nil {
		return nil
	}

	fresh, err := m.userRepo.GetByID(ctx, active.ID)
	if err != nil {
		if errs.IsNotFoundError(err) {
			m.logger.Warn("Active user no longer exists, clearing session", map[string]any{
				"userId": active.ID,
			})
			return m.Clear(ctx)
		}
		return err
	}

	if err := m.store.SetUser(ctx, fresh); err != nil {
		return err
	}
	m.mu.Lock()
	m.user = fresh
	m.mu.Unlock()
	return nil
}

// Follow subscribes to both session slots and overwrites the in-memory
// mirror wholesale with every published value, until the context is
// cancelled. This is the receiving side of cross-view propagation:
// push-based, no merge.
func (m *Manager) Follow(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	m.cancel = cancel

	userCh, err := m.store.Subscribe(ctx, sessionport.SlotUser)
	if err != nil {
		cancel()
		return err
	}
	adminCh, err := m.store.Subscribe(ctx, sessionport.SlotAdmin)
	if err != nil {
		cancel()
		return err
	}

	go m.follow(ctx, userCh, adminCh)
	return nil
}

// Stop ends the Follow subscription.
func (m *Manager) Stop() {
	if m.cancel != nil {
		m.cancel()
	}
}

func (m *Manager) follow(ctx context.Context, userCh, adminCh <-chan []byte) {
	for {
		select {
		case <-ctx.Done():
			return
		case payload, ok := <-userCh:
			if !ok {
				return
			}
			m.applyUserPayload(payload)
		case payload, ok := <-adminCh:
			if !ok {
				return
			}
			m.applyAdminPayload(payload)
		}
	}
}

func (m *Manager) applyUserPayload(payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(payload) == 0 {
		m.user = nil
		return
	}
	var user entity.User
	if err := json.Unmarshal(payload, &user); err != nil {
		m.logger.Error("Discarding malformed session payload", map[string]any{
			"slot":  sessionport.SlotUser,
			"error": err.Error(),
		})
		return
	}
	m.user = &user
}

func (m *Manager) applyAdminPayload(payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(payload) == 0 {
		m.admin = nil
		return
	}
	var admin entity.Admin
	if err := json.Unmarshal(payload, &admin); err != nil {
		m.logger.Error("Discarding malformed session payload", map[string]any{
			"slot":  sessionport.SlotAdmin,
			"error": err.Error(),
		})
		return
	}
	m.admin = &admin
}
