package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/calebmv/netweave-core/internal/profile"
	"github.com/calebmv/netweave-core/internal/settings"
)

// EventSink receives profile lifecycle notifications. The daemon wires
// implementations that publish to MQTT and record history in InfluxDB; a
// nil sink is replaced by a no-op.
type EventSink interface {
	ProfileAdded(rec *Record)
	ProfileUpdated(rec *Record)
	ProfileRemoved(uuid string)
	ProfileSecretsUpdated(rec *Record, settingName string)
}

type noopSink struct{}

func (noopSink) ProfileAdded(*Record)                  {}
func (noopSink) ProfileUpdated(*Record)                {}
func (noopSink) ProfileRemoved(string)                 {}
func (noopSink) ProfileSecretsUpdated(*Record, string) {}

// Logger is the minimal logging interface the manager needs.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...any) {}
func (noopLogger) Warn(string, ...any) {}

// Manager keeps verified profiles in memory in front of a Repository.
// Reads are served from the cache; every accessor hands out deep copies
// so callers can mutate freely and commit through Update.
type Manager struct {
	mu     sync.RWMutex
	repo   Repository
	cache  map[string]*profile.Connection
	events EventSink
	log    Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithEventSink routes lifecycle notifications to sink.
func WithEventSink(sink EventSink) Option {
	return func(m *Manager) {
		if sink != nil {
			m.events = sink
		}
	}
}

// WithLogger sets the manager's logger.
func WithLogger(log Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// NewManager creates a manager over repo. Call Load before serving reads.
func NewManager(repo Repository, opts ...Option) *Manager {
	m := &Manager{
		repo:   repo,
		cache:  make(map[string]*profile.Connection),
		events: noopSink{},
		log:    noopLogger{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load fills the cache from the repository. Records that no longer
// rebuild into a valid profile are skipped with a warning rather than
// failing the whole load; one corrupt row should not take the daemon
// down.
func (m *Manager) Load(ctx context.Context) error {
	records, err := m.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("loading profiles: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.cache = make(map[string]*profile.Connection, len(records))
	for i := range records {
		rec := &records[i]
		conn, err := rec.Connection()
		if err != nil {
			m.log.Warn("skipping stored profile", "uuid", rec.UUID, "error", err)
			continue
		}
		m.cache[rec.UUID] = conn
	}
	m.log.Info("profiles loaded", "count", len(m.cache))
	return nil
}

// Get returns a deep copy of the cached profile.
func (m *Manager) Get(uuid string) (*profile.Connection, error) {
	m.mu.RLock()
	conn, ok := m.cache[uuid]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrProfileNotFound
	}
	return conn.Duplicate(), nil
}

// List returns deep copies of all cached profiles sorted by display name,
// with UUID breaking ties.
func (m *Manager) List() []*profile.Connection {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*profile.Connection, 0, len(m.cache))
	for _, conn := range m.cache {
		out = append(out, conn.Duplicate())
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := settings.ID(out[i]), settings.ID(out[j])
		if a != b {
			return a < b
		}
		return settings.UUID(out[i]) < settings.UUID(out[j])
	})
	return out
}

// Count returns the number of cached profiles.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cache)
}

// Add verifies and stores a new profile. The manager keeps its own copy;
// the caller's connection stays theirs.
func (m *Manager) Add(ctx context.Context, c *profile.Connection) error {
	if err := c.Verify(); err != nil {
		return fmt.Errorf("%w: %v", ErrProfileInvalid, err)
	}
	rec, err := RecordFrom(c)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.cache[rec.UUID]; ok {
		return ErrProfileExists
	}
	if err := m.repo.Create(ctx, rec); err != nil {
		return err
	}
	m.cache[rec.UUID] = c.Duplicate()
	m.log.Info("profile added", "uuid", rec.UUID, "id", rec.ID, "type", rec.Type)
	m.events.ProfileAdded(rec)
	return nil
}

// Update verifies and rewrites an existing profile.
func (m *Manager) Update(ctx context.Context, c *profile.Connection) error {
	if err := c.Verify(); err != nil {
		return fmt.Errorf("%w: %v", ErrProfileInvalid, err)
	}
	rec, err := RecordFrom(c)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.cache[rec.UUID]; !ok {
		return ErrProfileNotFound
	}
	if err := m.repo.Update(ctx, rec); err != nil {
		return err
	}
	m.cache[rec.UUID] = c.Duplicate()
	m.log.Info("profile updated", "uuid", rec.UUID, "id", rec.ID)
	m.events.ProfileUpdated(rec)
	return nil
}

// Remove deletes a profile from storage and cache.
func (m *Manager) Remove(ctx context.Context, uuid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.cache[uuid]; !ok {
		return ErrProfileNotFound
	}
	if err := m.repo.Delete(ctx, uuid); err != nil {
		return err
	}
	delete(m.cache, uuid)
	m.log.Info("profile removed", "uuid", uuid)
	m.events.ProfileRemoved(uuid)
	return nil
}

// UpdateSecrets merges agent-supplied secrets into a cached profile and
// persists the result. settingName may be empty to update every kind the
// secrets map names.
func (m *Manager) UpdateSecrets(ctx context.Context, uuid, settingName string, secrets map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	conn, ok := m.cache[uuid]
	if !ok {
		return ErrProfileNotFound
	}

	work := conn.Duplicate()
	if err := work.UpdateSecrets(settingName, secrets); err != nil {
		return err
	}
	rec, err := RecordFrom(work)
	if err != nil {
		return err
	}
	if err := m.repo.Update(ctx, rec); err != nil {
		return err
	}
	m.cache[uuid] = work
	m.log.Info("profile secrets updated", "uuid", uuid, "setting", settingName)
	m.events.ProfileSecretsUpdated(rec, settingName)
	return nil
}
