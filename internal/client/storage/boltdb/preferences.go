package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/devhub-admin/internal/client/storage"
)

const (
	keyTheme      = "theme"
	keyLastBackup = "last-backup"
)

// SaveTheme stores the preferred theme
func (s *Storage) SaveTheme(ctx context.Context, theme storage.Theme) error {
	if theme != storage.ThemeDark && theme != storage.ThemeLight {
		return fmt.Errorf("unknown theme: %q", theme)
	}

	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPreferences)
		if bucket == nil {
			return fmt.Errorf("preferences bucket not found")
		}

		if err := bucket.Put([]byte(keyTheme), []byte(theme)); err != nil {
			return fmt.Errorf("failed to save theme: %w", err)
		}

		return nil
	})
}

// GetTheme returns the preferred theme, ThemeDark when nothing is saved
func (s *Storage) GetTheme(ctx context.Context) (storage.Theme, error) {
	theme := storage.ThemeDark

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPreferences)
		if bucket == nil {
			return fmt.Errorf("preferences bucket not found")
		}

		if data := bucket.Get([]byte(keyTheme)); data != nil {
			theme = storage.Theme(data)
		}
		return nil
	})

	if err != nil {
		return "", fmt.Errorf("failed to get theme: %w", err)
	}

	return theme, nil
}

// SaveLastBackup stores the time of the last backup export
func (s *Storage) SaveLastBackup(ctx context.Context, at time.Time) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPreferences)
		if bucket == nil {
			return fmt.Errorf("preferences bucket not found")
		}

		// Храним unix-время в миллисекундах, big endian
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, uint64(at.UnixMilli()))

		if err := bucket.Put([]byte(keyLastBackup), buf); err != nil {
			return fmt.Errorf("failed to save last backup time: %w", err)
		}

		return nil
	})
}

// GetLastBackup returns the time of the last backup export
func (s *Storage) GetLastBackup(ctx context.Context) (time.Time, error) {
	var at time.Time

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPreferences)
		if bucket == nil {
			return fmt.Errorf("preferences bucket not found")
		}

		data := bucket.Get([]byte(keyLastBackup))
		if data == nil {
			return storage.ErrPreferenceNotFound
		}
		if len(data) != 8 {
			return fmt.Errorf("corrupted last backup value: %d bytes", len(data))
		}

		at = time.UnixMilli(int64(binary.BigEndian.Uint64(data)))
		return nil
	})

	if err != nil {
		return time.Time{}, err
	}

	return at, nil
}
