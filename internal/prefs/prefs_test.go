package prefs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/floractl/internal/prefs"
)

func stores(t *testing.T) map[string]prefs.Store {
	t.Helper()
	dir := t.TempDir()

	sq, err := prefs.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { sq.Close() })

	return map[string]prefs.Store{
		"file":   prefs.NewFileStore(filepath.Join(dir, "prefs.yml")),
		"sqlite": sq,
	}
}

func TestStore_SetGetDelete(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := s.Get(ctx, "theme")
			assert.ErrorIs(t, err, prefs.ErrNotFound)

			require.NoError(t, s.Set(ctx, "theme", "light"))
			require.NoError(t, s.Set(ctx, "theme", "dark"))

			v, err := s.Get(ctx, "theme")
			require.NoError(t, err)
			assert.Equal(t, "dark", v)

			require.NoError(t, s.Delete(ctx, "theme"))
			_, err = s.Get(ctx, "theme")
			assert.ErrorIs(t, err, prefs.ErrNotFound)

			assert.ErrorIs(t, s.Delete(ctx, "theme"), prefs.ErrNotFound)
		})
	}
}

func TestTheme(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			theme, err := prefs.Theme(ctx, s)
			require.NoError(t, err)
			assert.Equal(t, prefs.ThemeLight, theme, "unset defaults to light")

			next, err := prefs.ToggleTheme(ctx, s)
			require.NoError(t, err)
			assert.Equal(t, prefs.ThemeDark, next)

			theme, err = prefs.Theme(ctx, s)
			require.NoError(t, err)
			assert.Equal(t, prefs.ThemeDark, theme)

			next, err = prefs.ToggleTheme(ctx, s)
			require.NoError(t, err)
			assert.Equal(t, prefs.ThemeLight, next)

			assert.Error(t, prefs.SetTheme(ctx, s, "sepia"))
			require.NoError(t, prefs.SetTheme(ctx, s, prefs.ThemeDark))

			require.NoError(t, s.Set(ctx, prefs.KeyTheme, "neon"))
			theme, err = prefs.Theme(ctx, s)
			require.NoError(t, err)
			assert.Equal(t, prefs.ThemeLight, theme, "garbage falls back to light")
		})
	}
}

func TestFileStore_Persists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "prefs.yml")
	ctx := context.Background()

	require.NoError(t, prefs.NewFileStore(path).Set(ctx, "theme", "dark"))

	v, err := prefs.NewFileStore(path).Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", v)
}

func TestFileStore_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yml")
	require.NoError(t, os.WriteFile(path, []byte("- not\n- a map\n"), 0600))

	_, err := prefs.NewFileStore(path).Get(context.Background(), "theme")
	assert.Error(t, err)
}

func TestSQLiteStore_Persists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	ctx := context.Background()

	s, err := prefs.NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "theme", "dark"))
	require.NoError(t, s.Close())

	s, err = prefs.NewSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()
	v, err := s.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", v)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := prefs.Open("", filepath.Join(dir, "p.yml"))
	require.NoError(t, err)
	assert.IsType(t, &prefs.FileStore{}, s)

	s, err = prefs.Open(prefs.BackendSQLite, filepath.Join(dir, "p.db"))
	require.NoError(t, err)
	assert.IsType(t, &prefs.SQLiteStore{}, s)
	require.NoError(t, s.Close())

	_, err = prefs.Open("redis", "")
	assert.Error(t, err)
}
