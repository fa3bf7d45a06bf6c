package storage

import (
	"context"
	"time"
)

// MaxBackupHistory is how many backup records are kept, newest first
const MaxBackupHistory = 10

// BackupRecord describes one exported backup. Display only, not authoritative.
type BackupRecord struct {
	CreatedAt   time.Time
	ID          string
	Collections []string
	Size        int64
}

// BackupHistoryStorage defines interface for the local backup history log
type BackupHistoryStorage interface {
	// AddBackupRecord stores a record and drops the oldest ones beyond MaxBackupHistory
	AddBackupRecord(ctx context.Context, record *BackupRecord) error

	// ListBackupRecords returns up to limit records, newest first
	// limit <= 0 returns every stored record
	ListBackupRecords(ctx context.Context, limit int) ([]*BackupRecord, error)
}
