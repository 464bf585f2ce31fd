package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	File struct {
		UUID        uuid.UUID  `json:"uuid"`
		Name        string     `json:"name"`
		SizeBytes   uint64     `json:"size_bytes"`
		ContentType string     `json:"content_type,omitempty"`
		DownloadURL string     `json:"download_url,omitempty"`
		IsTrashed   bool       `json:"is_trashed"`
		CreatedAt   time.Time  `json:"created_at"`
		TrashedAt   *time.Time `json:"trashed_at,omitempty"`
	}
	Files        []File
	ResponseData struct {
		Data Files `json:"data"`
	}
)
