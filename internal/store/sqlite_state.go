package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"sharapu/internal/model"

	_ "modernc.org/sqlite"
)

func (s Store) openSQLite(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.Path())
	if err != nil {
		return nil, err
	}
	// WAL lets the TUI read while a CLI import writes.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrateSQLiteState(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrateSQLiteState(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS state_meta (
			k TEXT PRIMARY KEY,
			v TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS items (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			tags_json TEXT NOT NULL DEFAULT '[]',
			summary TEXT NOT NULL DEFAULT '',
			body TEXT NOT NULL DEFAULT '',
			author TEXT NOT NULL DEFAULT '',
			published_at TEXT,
			json TEXT NOT NULL,
			updated_at_unixms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_items_position ON items(position);`,
		`CREATE INDEX IF NOT EXISTS idx_items_category ON items(category);`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate sqlite: %w", err)
		}
	}
	return nil
}

// LoadItems returns every item in content order.
func (s Store) LoadItems(ctx context.Context) ([]model.ContentItem, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT json FROM items ORDER BY position ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.ContentItem{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var it model.ContentItem
		if err := json.Unmarshal([]byte(raw), &it); err != nil {
			return nil, fmt.Errorf("decode item: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// GetItem returns one item by id, or ErrNotFound.
func (s Store) GetItem(ctx context.Context, id string) (model.ContentItem, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return model.ContentItem{}, err
	}
	defer db.Close()

	var raw string
	err = db.QueryRowContext(ctx, `SELECT json FROM items WHERE id = ?`, strings.TrimSpace(id)).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ContentItem{}, fmt.Errorf("item %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return model.ContentItem{}, err
	}
	var it model.ContentItem
	if err := json.Unmarshal([]byte(raw), &it); err != nil {
		return model.ContentItem{}, fmt.Errorf("decode item: %w", err)
	}
	return it, nil
}

// SaveItems replaces the store content with items, keeping their order.
func (s Store) SaveItems(ctx context.Context, items []model.ContentItem) error {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	// Replace-all: seed files are the unit of change.
	if _, err := tx.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return err
	}

	nowMs := time.Now().UTC().UnixMilli()
	for i, it := range items {
		if strings.TrimSpace(it.ID) == "" {
			return fmt.Errorf("item at position %d has no id", i)
		}
		raw, err := json.Marshal(it)
		if err != nil {
			return err
		}
		tags, err := json.Marshal(it.Tags)
		if err != nil {
			return err
		}
		var published any
		if it.PublishedAt != nil {
			published = it.PublishedAt.UTC().Format(time.RFC3339)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO items(id, position, title, category, tags_json, summary, body, author, published_at, json, updated_at_unixms)
			 VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			it.ID, i, it.Title, it.Category, string(tags), it.Summary, it.Body, it.Author, published, string(raw), nowMs); err != nil {
			return fmt.Errorf("insert item %q: %w", it.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO state_meta(k, v) VALUES(?, ?)`, "item_count", fmt.Sprintf("%d", len(items))); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	// Fold the WAL back so the main file is complete for backups.
	_, _ = db.ExecContext(ctx, `PRAGMA wal_checkpoint(TRUNCATE);`)
	return nil
}
