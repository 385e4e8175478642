package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRepository(t *testing.T, repository Repository) {
	ctx := context.Background()

	_, err := repository.GetPreference(ctx, "playerName")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	require.NoError(t, repository.SetPreference(ctx, "playerName", "Alice"))
	value, err := repository.GetPreference(ctx, "playerName")
	require.NoError(t, err)
	assert.Equal(t, "Alice", value)

	require.NoError(t, repository.SetPreference(ctx, "playerName", "Bob"))
	value, err = repository.GetPreference(ctx, "playerName")
	require.NoError(t, err)
	assert.Equal(t, "Bob", value)
}

func TestMemoryRepository(t *testing.T) {
	testRepository(t, NewMemoryRepository())
}

func TestSQLiteRepository(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs.db")

	repository, err := NewSQLiteRepository(ctx, path)
	require.NoError(t, err)
	testRepository(t, repository)
	require.NoError(t, repository.Close(ctx))

	// values survive reopening and migrations are idempotent
	reopened, err := NewSQLiteRepository(ctx, path)
	require.NoError(t, err)
	defer reopened.Close(ctx)
	value, err := reopened.GetPreference(ctx, "playerName")
	require.NoError(t, err)
	assert.Equal(t, "Bob", value)
}

func TestPostgresRepository(t *testing.T) {
	connStr := os.Getenv("BOMBERMAN_TEST_POSTGRES_URL")
	if connStr == "" {
		t.Skip("BOMBERMAN_TEST_POSTGRES_URL not set")
	}
	ctx := context.Background()
	repository, err := NewPostgresRepository(ctx, connStr)
	require.NoError(t, err)
	defer repository.Close(ctx)

	_, err = repository.(*PostgresRepository).pool.Exec(ctx, "DELETE FROM preferences")
	require.NoError(t, err)
	testRepository(t, repository)
}

func TestNewRepository(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		connStr string
		want    interface{}
		wantErr bool
	}{
		{name: "memory", connStr: "memory://", want: &MemoryRepository{}},
		{name: "sqlite", connStr: "sqlite://" + filepath.Join(t.TempDir(), "a.db"), want: &SQLiteRepository{}},
		{name: "unknown scheme", connStr: "redis://localhost", wantErr: true},
		{name: "empty sqlite path", connStr: "sqlite://", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRepository(ctx, tt.connStr)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer got.Close(ctx)
			assert.IsType(t, tt.want, got)
		})
	}
}
