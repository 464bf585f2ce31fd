package ports

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"

	"github.com/kieeler123/cloud-service/internal/application/uploads"
	"github.com/kieeler123/cloud-service/internal/domain/account"
	"github.com/kieeler123/cloud-service/internal/domain/file"
)

type FileService interface {
	FindFiles(ctx context.Context, ownerUUID account.UUID, scope file.Scope) (file.Records, error)
	// Upload runs the whole lifecycle: transfer to the object store,
	// resolve the download locator, commit the record. Progress and state
	// are observable under taskID while the transfer is in flight.
	Upload(ctx context.Context, ownerUUID account.UUID, taskID uuid.UUID, in *multipart.FileHeader) (*file.Record, error)
	UploadStatus(taskID uuid.UUID) (uploads.Status, bool)
	MoveToTrash(ctx context.Context, ownerUUID account.UUID, fileUUID uuid.UUID) error
	Restore(ctx context.Context, ownerUUID account.UUID, fileUUID uuid.UUID) error
	DeleteForever(ctx context.Context, ownerUUID account.UUID, fileUUID uuid.UUID) error
	DownloadURL(ctx context.Context, ownerUUID account.UUID, fileUUID uuid.UUID) (string, error)
}
