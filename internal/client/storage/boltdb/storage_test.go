package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/devhub-admin/internal/client/storage"
)

func TestNew_StateSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "devhub-admin.db")
	backupAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.SaveToken(ctx, "header.payload.sig"))
	require.NoError(t, store.SaveTheme(ctx, storage.ThemeLight))
	require.NoError(t, store.SaveLastBackup(ctx, backupAt))
	require.NoError(t, store.Close())

	// Следующий запуск консоли видит ту же сессию и настройки
	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	token, err := reopened.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "header.payload.sig", token)

	theme, err := reopened.GetTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, storage.ThemeLight, theme)

	last, err := reopened.GetLastBackup(ctx)
	require.NoError(t, err)
	assert.True(t, backupAt.Equal(last))
}

func TestNew_FreshFileHasNoSession(t *testing.T) {
	ctx := context.Background()
	store, err := New(ctx, filepath.Join(t.TempDir(), "devhub-admin.db"))
	require.NoError(t, err)
	defer store.Close()

	_, err = store.GetToken(ctx)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)

	theme, err := store.GetTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, storage.ThemeDark, theme)

	_, err = store.GetLastBackup(ctx)
	assert.ErrorIs(t, err, storage.ErrPreferenceNotFound)
}

func TestNew_MissingDirectory(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "no-such-dir", "devhub-admin.db"))
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNew_FileLockedByAnotherConsole(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "devhub-admin.db")

	first, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer first.Close()

	second, err := New(ctx, dbPath)
	assert.Error(t, err)
	assert.Nil(t, second)
}

func TestClose_ThenUse(t *testing.T) {
	ctx := context.Background()
	store, err := New(ctx, filepath.Join(t.TempDir(), "devhub-admin.db"))
	require.NoError(t, err)

	require.NoError(t, store.Close())
	// Повторный Close ничего не делает
	require.NoError(t, store.Close())

	_, err = store.GetToken(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.ErrorIs(t, store.SaveToken(ctx, "t"), storage.ErrStorageClosed)
	assert.ErrorIs(t, store.DeleteToken(ctx), storage.ErrStorageClosed)
	assert.ErrorIs(t, store.SaveTheme(ctx, storage.ThemeDark), storage.ErrStorageClosed)
	_, err = store.GetLastBackup(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
