package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cbodonnell/bomberman/pkg/log"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository connects to the database and applies migrations.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string) (Repository, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	var username string
	var database string
	err = pool.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to query database: %v", err)
	}
	log.Info("Connected to %s as %s", database, username)

	migrations, err := readMigrations("postgres")
	if err != nil {
		pool.Close()
		return nil, err
	}
	for _, migration := range migrations {
		if _, err := pool.Exec(ctx, migration); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to execute migration: %v", err)
		}
	}

	return &PostgresRepository{
		pool: pool,
	}, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	r.pool.Close()
	return nil
}

func (r *PostgresRepository) GetPreference(ctx context.Context, key string) (string, error) {
	q := `
	SELECT value FROM preferences WHERE key = $1;
	`
	var value string
	if err := r.pool.QueryRow(ctx, q, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", &ErrNotFound{}
		}
		return "", fmt.Errorf("failed to scan preference: %v", err)
	}

	return value, nil
}

func (r *PostgresRepository) SetPreference(ctx context.Context, key string, value string) error {
	q := `
	INSERT INTO preferences (key, value, updated_at) VALUES ($1, $2, $3)
	ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = $3;
	`
	_, err := r.pool.Exec(ctx, q, key, value, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to upsert preference: %v", err)
	}

	return nil
}
