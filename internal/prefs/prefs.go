// Package prefs stores user preferences such as the color theme.
package prefs

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("preference not found")

// Store is a string key-value preference store.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Open returns the store for the named backend rooted at path.
func Open(backend, path string) (Store, error) {
	switch backend {
	case "", BackendFile:
		return NewFileStore(path), nil
	case BackendSQLite:
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown preference backend %q (want %s or %s)", backend, BackendFile, BackendSQLite)
	}
}

// Theme preference.
const (
	KeyTheme   = "theme"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Theme returns the stored theme, or light when unset or unrecognized.
func Theme(ctx context.Context, s Store) (string, error) {
	v, err := s.Get(ctx, KeyTheme)
	if errors.Is(err, ErrNotFound) {
		return ThemeLight, nil
	}
	if err != nil {
		return ThemeLight, err
	}
	if !validTheme(v) {
		return ThemeLight, nil
	}
	return v, nil
}

// SetTheme stores theme after validating it.
func SetTheme(ctx context.Context, s Store, theme string) error {
	if !validTheme(theme) {
		return fmt.Errorf("invalid theme %q (want %s or %s)", theme, ThemeLight, ThemeDark)
	}
	return s.Set(ctx, KeyTheme, theme)
}

// ToggleTheme flips between light and dark and returns the new theme.
func ToggleTheme(ctx context.Context, s Store) (string, error) {
	cur, err := Theme(ctx, s)
	if err != nil {
		return "", err
	}
	next := ThemeDark
	if cur == ThemeDark {
		next = ThemeLight
	}
	if err := s.Set(ctx, KeyTheme, next); err != nil {
		return "", err
	}
	return next, nil
}

func validTheme(t string) bool {
	return t == ThemeLight || t == ThemeDark
}
