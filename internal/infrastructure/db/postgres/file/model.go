package file

import (
	"time"

	"github.com/google/uuid"

	domainAccount "github.com/kieeler123/cloud-service/internal/domain/account"
)

type (
	Record struct {
		ID      uint64
		UUID    uuid.UUID
		OwnerID *domainAccount.ID

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
