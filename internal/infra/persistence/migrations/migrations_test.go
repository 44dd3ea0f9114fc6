package migrations

import (
	"context"
	"database/sql"
	"io/fs"
	"testing"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubGooseUp(t *testing.T, fn func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error) {
	t.Helper()

	orig := gooseUpContext
	gooseUpContext = fn
	t.Cleanup(func() { gooseUpContext = orig })
}

func TestMigrations_EmbedsOrderedFiles(t *testing.T) {
	names, err := fs.Glob(Migrations, "*.sql")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"00001_accounts_profiles.sql",
		"00002_registry_sequences.sql",
		"00003_session_tokens.sql",
	}, names)
}

func TestUp_RunsFromEmbeddedRoot(t *testing.T) {
	var gotDir string
	stubGooseUp(t, func(_ context.Context, _ *sql.DB, dir string, _ ...goose.OptionsFunc) error {
		gotDir = dir

		return nil
	})

	require.NoError(t, Up(context.Background(), nil))
	assert.Equal(t, ".", gotDir)
}

func TestUp_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	stubGooseUp(t, func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		return boom
	})

	err := Up(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
}
