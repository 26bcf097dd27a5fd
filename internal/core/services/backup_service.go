package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/trovehq/trove-backend/internal/apperrors"
	"github.com/trovehq/trove-backend/internal/dto"
	"github.com/trovehq/trove-backend/pkg/database"
)

const backupFilePrefix = "trove-backup-"

// BackupService copies the store file into the backup directory and restores
// from it. Restores only accept files whose embedded signature matches the
// running application's.
type BackupService struct {
	BaseService
	store     *database.Store
	backupDir string
}

// NewBackupService creates a new BackupService.
func NewBackupService(store *database.Store, backupDir string) *BackupService {
	return &BackupService{store: store, backupDir: backupDir}
}

// CreateBackup checkpoints the store and copies its file into the backup
// directory.
func (s *BackupService) CreateBackup(ctx context.Context) (*dto.BackupResponse, error) {
	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		s.LogError(ctx, err, "Failed to create backup directory", "backup_dir", s.backupDir)
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}

	// Fold the WAL into the main file so the copy is self-contained.
	if err := s.store.Checkpoint(ctx); err != nil {
		s.LogError(ctx, err, "Failed to checkpoint store before backup")
		return nil, fmt.Errorf("failed to checkpoint store: %w", err)
	}

	fileName := fmt.Sprintf("%s%s.db", backupFilePrefix, time.Now().Format("20060102-150405"))
	destPath := filepath.Join(s.backupDir, fileName)
	if err := s.store.CopyTo(destPath); err != nil {
		s.LogError(ctx, err, "Failed to copy store file", "dest", destPath)
		return nil, fmt.Errorf("failed to write backup file: %w", err)
	}

	info, err := os.Stat(destPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat backup file: %w", err)
	}

	s.LogInfo(ctx, "Backup created successfully", "file_name", fileName, "size_bytes", info.Size())
	return &dto.BackupResponse{
		FileName:  fileName,
		SizeBytes: info.Size(),
		CreatedAt: info.ModTime(),
	}, nil
}

// ListBackups returns the backup files currently on disk, newest first.
func (s *BackupService) ListBackups(ctx context.Context) ([]dto.BackupResponse, error) {
	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []dto.BackupResponse{}, nil
		}
		s.LogError(ctx, err, "Failed to read backup directory", "backup_dir", s.backupDir)
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := make([]dto.BackupResponse, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), backupFilePrefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, dto.BackupResponse{
			FileName:  entry.Name(),
			SizeBytes: info.Size(),
			CreatedAt: info.ModTime(),
		})
	}
	sort.Slice(backups, func(i, j int) bool {
		return backups[i].CreatedAt.After(backups[j].CreatedAt)
	})
	return backups, nil
}

// RestoreBackup swaps the named backup file in as the live store after
// verifying its embedded signature.
func (s *BackupService) RestoreBackup(ctx context.Context, fileName string) error {
	// Reject path traversal; backups are addressed by bare file name only.
	if fileName != filepath.Base(fileName) {
		return fmt.Errorf("%w: invalid backup file name", apperrors.ErrValidation)
	}

	sourcePath := filepath.Join(s.backupDir, fileName)
	if _, err := os.Stat(sourcePath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: backup file %s", apperrors.ErrNotFound, fileName)
		}
		return fmt.Errorf("failed to stat backup file: %w", err)
	}

	signature, err := database.ReadSignature(ctx, sourcePath)
	if err != nil {
		s.LogError(ctx, err, "Failed to read backup signature", "file_name", fileName)
		return fmt.Errorf("%w: backup file is not a readable store", apperrors.ErrValidation)
	}
	if signature != s.store.Signature() {
		s.LogInfo(ctx, "Rejected backup with mismatched signature", "file_name", fileName)
		return fmt.Errorf("%w: backup signature does not match this application", apperrors.ErrValidation)
	}

	if err := s.store.Replace(sourcePath); err != nil {
		s.LogError(ctx, err, "Failed to replace store with backup", "file_name", fileName)
		return fmt.Errorf("failed to restore backup: %w", err)
	}

	s.LogInfo(ctx, "Backup restored successfully", "file_name", fileName)
	return nil
}

// ResetDatabase drops all data and reinitializes an empty store.
func (s *BackupService) ResetDatabase(ctx context.Context) error {
	if err := s.store.Reset(); err != nil {
		s.LogError(ctx, err, "Failed to reset store")
		return fmt.Errorf("failed to reset store: %w", err)
	}
	s.LogInfo(ctx, "Store reset successfully")
	return nil
}
