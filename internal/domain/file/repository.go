package file

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kieeler123/cloud-service/internal/domain/account"
)

type Repository interface {
	// FetchByOwner returns every record of an owner, trashed included,
	// newest first. The trashed-exclusion filter for the drive view is
	// applied by the caller on every snapshot.
	FetchByOwner(ctx context.Context, ownerID account.ID) (Records, error)
	// FetchTrashedByOwner returns only trashed records, most recently
	// trashed first.
	FetchTrashedByOwner(ctx context.Context, ownerID account.ID) (Records, error)
	FetchByUUID(ctx context.Context, ownerID account.ID, fileUUID uuid.UUID) (*Record, error)
	CreateRecord(ctx context.Context, ownerID account.ID, req *Record) (*Record, error)
	TrashRecord(ctx context.Context, ownerID account.ID, fileUUID uuid.UUID) error
	RestoreRecord(ctx context.Context, ownerID account.ID, fileUUID uuid.UUID) error
	DeleteRecord(ctx context.Context, ownerID account.ID, fileUUID uuid.UUID) error
	DeleteRecordsByOwner(ctx context.Context, ownerID account.ID) error
	// FetchTrashedBefore lists trashed records across all owners whose
	// TrashedAt is older than the cutoff; used by the reconciliation sweep.
	FetchTrashedBefore(ctx context.Context, cutoff time.Time) (Records, error)
}
