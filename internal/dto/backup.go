package dto

import "time"

// BackupResponse describes a single backup file on disk.
type BackupResponse struct {
	FileName  string    `json:"fileName"`
	SizeBytes int64     `json:"sizeBytes"`
	CreatedAt time.Time `json:"createdAt"`
}

// RestoreRequest names the backup file to restore from.
type RestoreRequest struct {
	FileName string `json:"fileName" binding:"required"`
}
