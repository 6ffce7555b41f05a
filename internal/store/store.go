// Package store handles SQLite persistence of selection state.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/barviz/internal/selection"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for persisted selections.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS selections (
			key TEXT PRIMARY KEY,
			column_name TEXT NOT NULL,
			row_idx INTEGER NOT NULL,
			selected_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_selections_column ON selections(column_name);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Toggle flips membership of id and returns the resulting selection set.
func (s *Store) Toggle(ctx context.Context, id selection.ID) ([]selection.ID, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM selections WHERE key = ?`, id.Key())
	if err != nil {
		return nil, err
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if deleted == 0 {
		_, err = s.db.ExecContext(ctx,
			`INSERT INTO selections (key, column_name, row_idx, selected_at) VALUES (?, ?, ?, ?)`,
			id.Key(), id.Column(), id.Row(), time.Now().Format(time.RFC3339Nano))
		if err != nil {
			return nil, err
		}
	}
	return s.Selected(ctx)
}

// Selected returns the persisted selection set ordered by row index.
func (s *Store) Selected(ctx context.Context) ([]selection.ID, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT column_name, row_idx FROM selections ORDER BY column_name, row_idx`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var out []selection.ID
	for rows.Next() {
		var column string
		var row int
		if err := rows.Scan(&column, &row); err != nil {
			return nil, err
		}
		out = append(out, selection.Restore(column, row))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Clear removes every persisted selection.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM selections`)
	return err
}

// SelectionManager adapts the store to the selection.Manager contract.
// A failed toggle leaves the completion pending, so bar opacity stays as
// it was until the next successful selection or a full re-render.
type SelectionManager struct {
	store *Store
}

// NewSelectionManager returns a manager persisting through st.
func NewSelectionManager(st *Store) *SelectionManager {
	return &SelectionManager{store: st}
}

// Select toggles id in the store and completes with the resulting set.
func (m *SelectionManager) Select(id selection.ID, done func(selected []selection.ID)) {
	selected, err := m.store.Toggle(context.Background(), id)
	if err != nil {
		return
	}
	if done != nil {
		done(selected)
	}
}
