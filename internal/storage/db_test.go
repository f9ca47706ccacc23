package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	"github.com/campus-suite/campusctl/internal/storage/inquiries"
)

func TestInitDatabase(t *testing.T) {
	ctx := context.Background()
	repos, err := InitDatabase(ctx, filepath.Join(t.TempDir(), "campus.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	// both tables exist and are usable after migration
	require.NoError(t, repos.Metadata.Set(ctx, "token", []byte("abc")))
	got, err := repos.Metadata.Get(ctx, "token")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), got)

	inq, err := repos.Inquiries.Add(ctx, inquiries.KindInformation, []byte(`{"nombre":"Ana"}`))
	require.NoError(t, err)
	require.NotEmpty(t, inq.ID)
}

func TestInitDatabase_MigrationFailureClosesDB(t *testing.T) {
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("migrate boom")
	}

	_, err := InitDatabase(context.Background(), filepath.Join(t.TempDir(), "campus.db"))
	require.ErrorContains(t, err, "db migration error")
}

func TestRunMigrations_UsesEmbeddedDir(t *testing.T) {
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	var gotDir string
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		return nil
	}

	require.NoError(t, RunMigrations(context.Background(), nil))
	require.Equal(t, ".", gotDir)
}
