package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/calebmv/netweave-core/internal/profile"
	"github.com/calebmv/netweave-core/internal/settings"
)

// Record is a profile as it sits in persistence: identity columns pulled
// out for indexing, the settings body serialized without secrets, and the
// system-owned secrets held separately so they can be stripped or
// re-keyed without rewriting the body.
type Record struct {
	UUID      string
	ID        string
	Type      string
	Settings  map[string]map[string]any
	Secrets   map[string]map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecordFrom flattens a verified connection into a Record. Secrets
// flagged agent-owned or not-saved are dropped; the daemon only persists
// what it owns.
func RecordFrom(c *profile.Connection) (*Record, error) {
	uuid := settings.UUID(c)
	if uuid == "" {
		return nil, fmt.Errorf("%w: missing uuid", ErrProfileInvalid)
	}

	dup := c.Duplicate()
	dup.ClearSecretsWithFilter(func(_, _ string, flags profile.SecretFlags) bool {
		return flags&(profile.SecretFlagAgentOwned|profile.SecretFlagNotSaved) != 0
	})

	rec := &Record{
		UUID:     uuid,
		ID:       settings.ID(c),
		Settings: dup.ToMap(profile.SerializeNoSecrets),
		Secrets:  dup.ToMap(profile.SerializeOnlySecrets),
	}
	if cs := settings.ConnectionFrom(c); cs != nil {
		rec.Type = cs.Type()
	}
	return rec, nil
}

// Connection rebuilds the profile from the record, merging stored secrets
// back into the settings body.
func (r *Record) Connection() (*profile.Connection, error) {
	merged := make(map[string]map[string]any, len(r.Settings))
	for name, props := range r.Settings {
		cpy := make(map[string]any, len(props))
		for k, v := range props {
			cpy[k] = v
		}
		merged[name] = cpy
	}
	for name, secretProps := range r.Secrets {
		props, ok := merged[name]
		if !ok {
			props = make(map[string]any, len(secretProps))
			merged[name] = props
		}
		for k, v := range secretProps {
			props[k] = v
		}
	}
	return profile.NewFromMap(merged)
}

// Repository defines the persistence operations for connection profiles.
// The abstraction keeps the profile manager testable without a database.
type Repository interface {
	// GetByUUID retrieves a stored profile.
	// Returns ErrProfileNotFound if no profile has the UUID.
	GetByUUID(ctx context.Context, uuid string) (*Record, error)

	// List retrieves all stored profiles ordered by their display name.
	List(ctx context.Context) ([]Record, error)

	// ListByType retrieves the profiles whose connection type matches.
	ListByType(ctx context.Context, ctype string) ([]Record, error)

	// Create inserts a new profile.
	// Returns ErrProfileExists if the UUID is already stored.
	Create(ctx context.Context, rec *Record) error

	// Update rewrites an existing profile.
	// Returns ErrProfileNotFound if the UUID is not stored.
	Update(ctx context.Context, rec *Record) error

	// Delete removes a profile by UUID.
	// Returns ErrProfileNotFound if the UUID is not stored.
	Delete(ctx context.Context, uuid string) error
}

// SQLiteRepository implements Repository using SQLite.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite-backed repository.
// The db parameter should be an open SQLite connection with the
// connections migration applied.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// GetByUUID retrieves a stored profile.
func (r *SQLiteRepository) GetByUUID(ctx context.Context, uuid string) (*Record, error) {
	query := `
		SELECT uuid, id, ctype, settings, secrets, created_at, updated_at
		FROM connections
		WHERE uuid = ?`

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, uuid))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("querying profile by uuid: %w", err)
	}
	return rec, nil
}

// List retrieves all stored profiles ordered by display name.
func (r *SQLiteRepository) List(ctx context.Context) ([]Record, error) {
	query := `
		SELECT uuid, id, ctype, settings, secrets, created_at, updated_at
		FROM connections
		ORDER BY id`

	return r.queryRecords(ctx, query)
}

// ListByType retrieves the profiles whose connection type matches.
func (r *SQLiteRepository) ListByType(ctx context.Context, ctype string) ([]Record, error) {
	query := `
		SELECT uuid, id, ctype, settings, secrets, created_at, updated_at
		FROM connections
		WHERE ctype = ?
		ORDER BY id`

	return r.queryRecords(ctx, query, ctype)
}

// Create inserts a new profile.
func (r *SQLiteRepository) Create(ctx context.Context, rec *Record) error {
	settingsJSON, secretsJSON, err := marshalRecord(rec)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	query := `
		INSERT INTO connections (uuid, id, ctype, settings, secrets, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err = r.db.ExecContext(ctx, query,
		rec.UUID,
		rec.ID,
		rec.Type,
		settingsJSON,
		secretsJSON,
		rec.CreatedAt.Format(time.RFC3339),
		rec.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrProfileExists
		}
		return fmt.Errorf("inserting profile: %w", err)
	}
	return nil
}

// Update rewrites an existing profile.
func (r *SQLiteRepository) Update(ctx context.Context, rec *Record) error {
	settingsJSON, secretsJSON, err := marshalRecord(rec)
	if err != nil {
		return err
	}

	rec.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE connections
		SET id = ?, ctype = ?, settings = ?, secrets = ?, updated_at = ?
		WHERE uuid = ?`

	result, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.Type,
		settingsJSON,
		secretsJSON,
		rec.UpdatedAt.Format(time.RFC3339),
		rec.UUID,
	)
	if err != nil {
		return fmt.Errorf("updating profile: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// Delete removes a profile by UUID.
func (r *SQLiteRepository) Delete(ctx context.Context, uuid string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM connections WHERE uuid = ?", uuid)
	if err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// queryRecords executes a query and returns the matching records.
func (r *SQLiteRepository) queryRecords(ctx context.Context, query string, args ...any) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying profiles: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning profile: %w", err)
		}
		records = append(records, *rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating profiles: %w", err)
	}
	return records, nil
}

func marshalRecord(rec *Record) (settingsJSON, secretsJSON string, err error) {
	sb, err := json.Marshal(rec.Settings)
	if err != nil {
		return "", "", fmt.Errorf("marshalling settings: %w", err)
	}
	secrets := rec.Secrets
	if secrets == nil {
		secrets = map[string]map[string]any{}
	}
	kb, err := json.Marshal(secrets)
	if err != nil {
		return "", "", fmt.Errorf("marshalling secrets: %w", err)
	}
	return string(sb), string(kb), nil
}

// rowScanner is an interface that sql.Row and sql.Rows both implement.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(scanner rowScanner) (*Record, error) {
	var rec Record
	var settingsJSON, secretsJSON string
	var createdAt, updatedAt string

	err := scanner.Scan(
		&rec.UUID,
		&rec.ID,
		&rec.Type,
		&settingsJSON,
		&secretsJSON,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(settingsJSON), &rec.Settings); err != nil {
		return nil, fmt.Errorf("unmarshalling settings: %w", err)
	}
	if secretsJSON != "" {
		if err := json.Unmarshal([]byte(secretsJSON), &rec.Secrets); err != nil {
			return nil, fmt.Errorf("unmarshalling secrets: %w", err)
		}
	}

	rec.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	rec.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &rec, nil
}

// isUniqueConstraintError checks if an error is a SQLite unique
// constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "unique constraint")
}
