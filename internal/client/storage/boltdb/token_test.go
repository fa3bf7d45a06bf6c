package boltdb

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/devhub-admin/internal/client/storage"
)

// создаём тестовое BoltDB хранилище
func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "client_test.db")
	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestStorage_SaveGetDeleteToken(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// До сохранения слот пуст
	_, err := store.GetToken(ctx)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)

	require.NoError(t, store.SaveToken(ctx, "header.payload.signature"))

	got, err := store.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "header.payload.signature", got)

	// Перезапись заменяет значение целиком
	require.NoError(t, store.SaveToken(ctx, "other"))
	got, err = store.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "other", got)

	require.NoError(t, store.DeleteToken(ctx))

	_, err = store.GetToken(ctx)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)

	// Повторное удаление сообщает, что слот уже пуст
	err = store.DeleteToken(ctx)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestStorage_SaveToken_NoValidation(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Слот принимает любую строку, даже не похожую на JWT
	require.NoError(t, store.SaveToken(ctx, "not-a-jwt"))

	got, err := store.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "not-a-jwt", got)
}

func TestStorage_Token_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketSession)
	})
	require.NoError(t, err)

	err = store.SaveToken(ctx, "token")
	assert.ErrorContains(t, err, "session bucket not found")

	_, err = store.GetToken(ctx)
	assert.ErrorContains(t, err, "session bucket not found")

	err = store.DeleteToken(ctx)
	assert.ErrorContains(t, err, "session bucket not found")
}

func TestStorage_Token_ConcurrentDelete(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.SaveToken(ctx, "token"))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.DeleteToken(ctx)
			if err != nil {
				assert.ErrorIs(t, err, storage.ErrTokenNotFound)
			}
		}()
	}
	wg.Wait()

	_, err := store.GetToken(ctx)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}
