package repositories

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"net/url"
	"sort"
	"strings"
)

//go:embed migrations
var migrationsFS embed.FS

// Repository is the key/value store behind persisted player preferences.
// Implementations must be safe for concurrent use.
type Repository interface {
	Close(ctx context.Context) error
	// GetPreference returns ErrNotFound when the key has never been set.
	GetPreference(ctx context.Context, key string) (string, error)
	SetPreference(ctx context.Context, key string, value string) error
}

// NewRepository picks an implementation from the connection string scheme:
// sqlite://<path>, postgresql://... or memory://.
func NewRepository(ctx context.Context, connStr string) (Repository, error) {
	u, err := url.Parse(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %v", err)
	}

	switch u.Scheme {
	case "sqlite":
		return NewSQLiteRepository(ctx, strings.TrimPrefix(connStr, "sqlite://"))
	case "postgres", "postgresql":
		return NewPostgresRepository(ctx, connStr)
	case "memory":
		return NewMemoryRepository(), nil
	default:
		return nil, fmt.Errorf("unknown database type %s", u.Scheme)
	}
}

// readMigrations returns the migration scripts for dialect in name order.
func readMigrations(dialect string) ([]string, error) {
	dir := "migrations/" + dialect
	entries, err := fs.ReadDir(migrationsFS, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %v", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	scripts := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		migrationPath := dir + "/" + entry.Name()
		migration, err := fs.ReadFile(migrationsFS, migrationPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %v", migrationPath, err)
		}
		scripts = append(scripts, string(migration))
	}
	return scripts, nil
}
