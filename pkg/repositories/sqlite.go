package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(ctx context.Context, path string) (Repository, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is empty")
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	migrations, err := readMigrations("sqlite")
	if err != nil {
		db.Close()
		return nil, err
	}
	for _, migration := range migrations {
		if _, err := db.ExecContext(ctx, migration); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute migration: %v", err)
		}
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) GetPreference(ctx context.Context, key string) (string, error) {
	q := `
	SELECT value FROM preferences WHERE key = ?;
	`
	var value string
	if err := r.db.QueryRowContext(ctx, q, key).Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", &ErrNotFound{}
		}
		return "", fmt.Errorf("failed to scan preference: %v", err)
	}

	return value, nil
}

func (r *SQLiteRepository) SetPreference(ctx context.Context, key string, value string) error {
	q := `
	INSERT OR REPLACE INTO preferences (key, value, updated_at)
	VALUES (?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, q, key, value, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to upsert preference: %v", err)
	}

	return nil
}
