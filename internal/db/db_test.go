package db

import (
	"context"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthtrack/internal/auth"
	"healthtrack/internal/db/migrations"
)

func TestOpenMemory(t *testing.T) {
	ctx := context.Background()
	stores, err := Open(ctx, "memory://", "ignored")
	require.NoError(t, err)
	assert.Equal(t, "memory", stores.Backend)

	u := &auth.User{Username: "alice", Role: auth.RolePatient}
	require.NoError(t, stores.Users.Insert(ctx, u))
	got, err := stores.Users.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	assert.NoError(t, stores.Close(ctx))
}

func TestOpenUnsupportedScheme(t *testing.T) {
	for _, uri := range []string{"redis://localhost:6379", "localhost", ""} {
		_, err := Open(context.Background(), uri, "db")
		assert.ErrorIs(t, err, ErrUnsupportedScheme, uri)
	}
}

func TestOpenMalformedURI(t *testing.T) {
	_, err := Open(context.Background(), "postgres://%zz", "db")
	assert.Error(t, err)
}

func TestMigrationsEmbedded(t *testing.T) {
	files, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	assert.Contains(t, files, "00001_init.sql")
}
