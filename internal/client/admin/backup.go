package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/iudanet/devhub-admin/internal/client/api"
	"github.com/iudanet/devhub-admin/internal/client/notify"
	"github.com/iudanet/devhub-admin/internal/client/session"
	"github.com/iudanet/devhub-admin/internal/client/storage"
	pkgapi "github.com/iudanet/devhub-admin/pkg/api"
)

// DefaultHistoryLimit is how many history records the backup page shows
const DefaultHistoryLimit = 3

// QuickCollections are exported by the quick backup
var QuickCollections = []string{"users", "projects"}

var (
	// ErrInvalidBackup is returned for a backup file that is not JSON
	ErrInvalidBackup = errors.New("backup file is not valid JSON")
	// ErrEmptyBackup is returned when the server exported no data
	ErrEmptyBackup = errors.New("server returned an empty backup")
	// ErrUnknownCollection is returned for a collection the server cannot export
	ErrUnknownCollection = errors.New("unknown collection")
)

// ValidateCollections checks every name against pkgapi.BackupCollections
func ValidateCollections(collections []string) error {
	for _, c := range collections {
		if !slices.Contains(pkgapi.BackupCollections, c) {
			return fmt.Errorf("%w: %q", ErrUnknownCollection, c)
		}
	}
	return nil
}

// ExportResult describes a written backup file
type ExportResult struct {
	Record *storage.BackupRecord
	Path   string
}

// Backup backs the backup page: export, restore and local history
type Backup struct {
	base
	guard   *session.Guard
	history storage.BackupHistoryStorage
	prefs   storage.PreferencesStorage
	now     func() time.Time
}

// NewBackup creates the backup service
func NewBackup(
	client *api.Client,
	guard *session.Guard,
	history storage.BackupHistoryStorage,
	prefs storage.PreferencesStorage,
	notifier notify.Notifier,
	logger *slog.Logger,
) *Backup {
	return &Backup{
		base:    newBase(client, notifier, logger),
		guard:   guard,
		history: history,
		prefs:   prefs,
		now:     time.Now,
	}
}

// FileName returns the backup file name for a date
func FileName(at time.Time) string {
	return "backup_" + at.Format(time.DateOnly) + ".json"
}

// Export downloads the collections (all when empty), writes them indented
// to dir and records the export in the local history.
func (b *Backup) Export(ctx context.Context, collections []string, dir string) (*ExportResult, error) {
	if err := ValidateCollections(collections); err != nil {
		return nil, err
	}

	export, err := b.client.ExportBackup(ctx, collections)
	if err != nil {
		return nil, b.fail("Failed to export backup", err)
	}
	if export == nil {
		return nil, nil
	}
	if len(bytes.TrimSpace(export.Data)) == 0 {
		return nil, b.fail("Failed to export backup", ErrEmptyBackup)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, export.Data, "", "  "); err != nil {
		return nil, b.fail("Failed to export backup", fmt.Errorf("failed to format backup: %w", err))
	}

	now := b.now()
	path := filepath.Join(dir, FileName(now))
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return nil, b.fail("Failed to export backup", fmt.Errorf("failed to write backup file: %w", err))
	}

	if len(collections) == 0 {
		collections = pkgapi.BackupCollections
	}
	size := export.Size
	if size <= 0 {
		size = int64(buf.Len())
	}
	record := &storage.BackupRecord{
		CreatedAt:   now,
		Collections: slices.Clone(collections),
		Size:        size,
	}

	// История только для отображения: ошибки не мешают экспорту
	if err := b.history.AddBackupRecord(ctx, record); err != nil {
		b.logger.Warn("failed to record backup history", "error", err)
	}
	if err := b.prefs.SaveLastBackup(ctx, now); err != nil {
		b.logger.Warn("failed to save last backup time", "error", err)
	}

	b.logger.Info("backup exported", "path", path, "size", size)
	b.success("Backup exported")
	return &ExportResult{Path: path, Record: record}, nil
}

// Import restores a backup file and ends the session: the restored data
// may not contain the current account.
func (b *Backup) Import(ctx context.Context, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return b.fail("Failed to read the file", err)
	}
	if !json.Valid(raw) {
		return b.fail("Failed to restore backup", ErrInvalidBackup)
	}

	resp, err := b.client.ImportBackup(ctx, raw)
	if err != nil {
		return b.fail("Failed to restore backup", err)
	}
	if resp == nil {
		return nil
	}

	b.logger.Info("backup restored", "path", path)
	b.success("Backup restored")
	b.guard.Logout(ctx, session.ReasonBackupRestored)
	return nil
}

// History returns up to limit records, newest first; limit <= 0 uses
// DefaultHistoryLimit
func (b *Backup) History(ctx context.Context, limit int) ([]*storage.BackupRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	records, err := b.history.ListBackupRecords(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load backup history: %w", err)
	}
	return records, nil
}

// LastBackup returns the time of the last export; false when there was none
func (b *Backup) LastBackup(ctx context.Context) (time.Time, bool, error) {
	at, err := b.prefs.GetLastBackup(ctx)
	if errors.Is(err, storage.ErrPreferenceNotFound) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to read last backup time: %w", err)
	}
	return at, true, nil
}

// Size asks the server for the export size of the collections
func (b *Backup) Size(ctx context.Context, collections []string) (*pkgapi.BackupSize, error) {
	if err := ValidateCollections(collections); err != nil {
		return nil, err
	}
	size, err := b.client.BackupSize(ctx, collections)
	if err != nil {
		return nil, b.fail("Failed to get backup size", err)
	}
	return size, nil
}

// FormatSize renders a byte count, e.g. "1.5 KiB"
func FormatSize(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}

// FormatSince renders t relative to now, e.g. "3 hours ago"
func FormatSince(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}
