package services

import (
	"context"

	"github.com/trovehq/trove-backend/internal/dto"
)

// BackupSvcFacade defines database backup and restore operations.
type BackupSvcFacade interface {
	// CreateBackup checkpoints the database and copies it into the backup
	// directory, returning the created file's metadata.
	CreateBackup(ctx context.Context) (*dto.BackupResponse, error)

	// ListBackups returns available backup files, newest first.
	ListBackups(ctx context.Context) ([]dto.BackupResponse, error)

	// RestoreBackup verifies the named backup's signature and swaps it in as
	// the live database.
	RestoreBackup(ctx context.Context, fileName string) error

	// ResetDatabase drops all data and re-runs migrations on a fresh file.
	ResetDatabase(ctx context.Context) error
}
