// Package kvstore manages access to the external key-value store.
//
// The store offers single-key atomicity only: point get/set, list push, set
// add and cardinality. There are no cross-key transactions, and the manager
// adds none. Its single job is the connection discipline: connect lazily on
// first use, reuse the handle afterwards, and invalidate the connected flag
// when an operation fails so the next call re-establishes the connection.
package kvstore

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/clubstem/registration-service/internal/events"
)

// StoreError wraps any failure of an underlying key-value operation. It is
// reported upward as an internal error; there are no retries.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store operation %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Manager is the single entry point for store access. It is constructed once
// per process and passed explicitly to the repositories; the connected flag
// lives inside the instance, not in package state.
type Manager struct {
	opts      *redis.Options
	logger    *slog.Logger
	publisher events.Publisher

	mu        sync.Mutex
	client    *redis.Client
	connected bool
}

// NewManager parses the store URL (redis:// or rediss://, TLS follows the
// scheme) and returns a manager. No connection is made until the first Do.
func NewManager(url string, logger *slog.Logger, publisher events.Publisher) (*Manager, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid store URL: %w", err)
	}
	return &Manager{
		opts:      opts,
		logger:    logger,
		publisher: publisher,
	}, nil
}

// Do runs op against a connected client. On the first call (or the first call
// after a failure) the connection is verified with a ping; afterwards the
// cached handle is reused. If op fails, the connected flag is cleared so the
// next call reconnects; the current call's error still propagates, wrapped
// in a *StoreError.
func (m *Manager) Do(ctx context.Context, name string, op func(*redis.Client) error) error {
	client, err := m.acquire(ctx)
	if err != nil {
		return &StoreError{Op: name, Err: err}
	}

	if err := op(client); err != nil {
		m.invalidate(name, err)
		return &StoreError{Op: name, Err: err}
	}
	return nil
}

// Ping verifies connectivity, used by the health endpoint.
func (m *Manager) Ping(ctx context.Context) error {
	return m.Do(ctx, "ping", func(client *redis.Client) error {
		return client.Ping(ctx).Err()
	})
}

// Close releases the underlying client, if one was ever created.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = false
	if m.client == nil {
		return nil
	}
	return m.client.Close()
}

func (m *Manager) acquire(ctx context.Context) (*redis.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		m.client = redis.NewClient(m.opts)
	}
	if m.connected {
		return m.client, nil
	}

	if err := m.client.Ping(ctx).Err(); err != nil {
		m.logger.Error("store connection failed", "addr", m.opts.Addr, "error", err)
		return nil, err
	}

	m.connected = true
	m.logger.Info("store connected", "addr", m.opts.Addr)
	m.publishTransition(true, "")
	return m.client, nil
}

func (m *Manager) invalidate(op string, err error) {
	m.mu.Lock()
	wasConnected := m.connected
	m.connected = false
	m.mu.Unlock()

	m.logger.Error("store operation failed, connection invalidated", "op", op, "error", err)
	if wasConnected {
		m.publishTransition(false, err.Error())
	}
}

func (m *Manager) publishTransition(connected bool, reason string) {
	if m.publisher == nil {
		return
	}
	if err := m.publisher.Publish(events.TopicStoreConnectivity, events.StoreConnectivityChanged{
		Connected: connected,
		Reason:    reason,
	}); err != nil {
		m.logger.Warn("failed to publish connectivity event", "error", err)
	}
}
