package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/devhub-admin/internal/client/storage"
)

var _ storage.BackupHistoryStorage = (*Storage)(nil)

// AddBackupRecord stores a record and keeps only the newest storage.MaxBackupHistory rows
func (s *Storage) AddBackupRecord(ctx context.Context, record *storage.BackupRecord) error {
	if record == nil {
		return fmt.Errorf("backup record is nil")
	}
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO backup_history (id, created_at, size, collections)
		VALUES (?, ?, ?, ?)
	`,
		record.ID,
		record.CreatedAt.UnixMilli(),
		record.Size,
		strings.Join(record.Collections, ","),
	)
	if err != nil {
		return fmt.Errorf("failed to insert backup record: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		DELETE FROM backup_history
		WHERE seq NOT IN (
			SELECT seq FROM backup_history
			ORDER BY created_at DESC, seq DESC
			LIMIT ?
		)
	`, storage.MaxBackupHistory)
	if err != nil {
		return fmt.Errorf("failed to trim backup history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit backup record: %w", err)
	}

	return nil
}

// ListBackupRecords returns up to limit records, newest first
func (s *Storage) ListBackupRecords(ctx context.Context, limit int) ([]*storage.BackupRecord, error) {
	if limit <= 0 {
		limit = -1 // в SQLite LIMIT -1 означает без ограничения
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, size, collections
		FROM backup_history
		ORDER BY created_at DESC, seq DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query backup history: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []*storage.BackupRecord

	for rows.Next() {
		var (
			record      storage.BackupRecord
			createdAt   int64
			collections string
		)

		if err := rows.Scan(&record.ID, &createdAt, &record.Size, &collections); err != nil {
			return nil, fmt.Errorf("failed to scan backup record: %w", err)
		}

		record.CreatedAt = time.UnixMilli(createdAt)
		if collections != "" {
			record.Collections = strings.Split(collections, ",")
		}

		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate backup history: %w", err)
	}

	return records, nil
}
