// Package file holds the drive file record: the single entity behind both
// the drive view (active records) and the trash view (trashed records).
package file

import (
	"time"

	"github.com/google/uuid"

	"github.com/kieeler123/cloud-service/internal/domain/account"
)

type (
	// Record is in exactly one of two states: active (IsTrashed=false,
	// TrashedAt ignored) or trashed (IsTrashed=true, TrashedAt set).
	// Restoring clears the flag but leaves TrashedAt behind; that is
	// cosmetic and callers must not key off TrashedAt alone.
	Record struct {
		UUID    uuid.UUID
		OwnerID *account.ID

		Name        string
		SizeBytes   uint64
		ContentType string
		StoragePath string
		DownloadURL string

		IsTrashed bool
		CreatedAt time.Time
		TrashedAt *time.Time
	}
	Records []*Record
)
