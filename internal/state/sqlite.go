// ABOUTME: SQLite-backed state store using modernc.org/sqlite.
// ABOUTME: INSERT OR IGNORE gives atomic insert-if-absent for dedup ids.

package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/2389/bizmsg-gateway/internal/bizmsg"
)

// SQLite implements Store on a SQLite database. Dedup and ownership state
// survive restarts and can live on a volume shared between instances.
type SQLite struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLite opens (or creates) the database at path. Parent directories
// are created if needed and the schema is created if it doesn't exist.
func NewSQLite(path string) (*SQLite, error) {
	logger := slog.Default().With("component", "state")

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// WAL mode for better concurrent performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &SQLite{db: db, logger: logger}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	logger.Info("SQLite state store initialized", "path", path)
	return s, nil
}

func (s *SQLite) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS seen_ids (
			id TEXT PRIMARY KEY,
			seen_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS conversation_owners (
			conversation_id TEXT PRIMARY KEY,
			representative_type TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// CheckAndMark records a delivery id. The INSERT OR IGNORE either claims
// the id or leaves it untouched, so concurrent duplicate deliveries cannot
// both win.
func (s *SQLite) CheckAndMark(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO seen_ids (id, seen_at) VALUES (?, ?)",
		id, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("recording delivery id: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading rows affected: %w", err)
	}

	return affected == 0, nil
}

// OwnerType returns the recorded owner of the conversation, if any.
func (s *SQLite) OwnerType(ctx context.Context, conversationID string) (bizmsg.RepresentativeType, bool, error) {
	var t string
	err := s.db.QueryRowContext(ctx,
		"SELECT representative_type FROM conversation_owners WHERE conversation_id = ?",
		conversationID).Scan(&t)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("querying conversation owner: %w", err)
	}

	return bizmsg.RepresentativeType(t), true, nil
}

// SetOwnerType records the owner of the conversation.
func (s *SQLite) SetOwnerType(ctx context.Context, conversationID string, t bizmsg.RepresentativeType) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO conversation_owners (conversation_id, representative_type, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(conversation_id) DO UPDATE SET
			representative_type = excluded.representative_type,
			updated_at = excluded.updated_at`,
		conversationID, string(t), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("recording conversation owner: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
