package storage

import (
	"context"
	"time"
)

// Theme is the console colour scheme preference
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// PreferencesStorage defines interface for storing client preferences
type PreferencesStorage interface {
	// SaveTheme stores the preferred theme
	SaveTheme(ctx context.Context, theme Theme) error

	// GetTheme returns the preferred theme
	// Returns ThemeDark if no preference has been saved yet
	GetTheme(ctx context.Context) (Theme, error)

	// SaveLastBackup stores the time of the last successful backup export
	SaveLastBackup(ctx context.Context, at time.Time) error

	// GetLastBackup returns the time of the last backup export
	// Returns ErrPreferenceNotFound if no backup has been exported yet
	GetLastBackup(ctx context.Context) (time.Time, error)
}
