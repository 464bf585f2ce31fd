package file

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainAccount "github.com/kieeler123/cloud-service/internal/domain/account"
	domain "github.com/kieeler123/cloud-service/internal/domain/file"
)

// Querier is the subset of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Repository struct {
	db Querier
}

func NewRepository(db Querier) domain.Repository {
	return &Repository{db: db}
}

func scanRecord(row pgx.Row) (*Record, error) {
	r := new(Record)
	err := row.Scan(
		&r.ID,
		&r.UUID,
		&r.OwnerID,

		&r.Name,
		&r.SizeBytes,
		&r.ContentType,
		&r.StoragePath,
		&r.DownloadURL,

		&r.IsTrashed,
		&r.CreatedAt,
		&r.TrashedAt,
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Repository) fetch(ctx context.Context, query string, args ...any) (domain.Records, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rs Records
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		rs = append(rs, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&rs), nil
}

func (r *Repository) FetchByOwner(ctx context.Context, ownerID domainAccount.ID) (domain.Records, error) {
	return r.fetch(ctx, SelectFilesByOwner, uint64(ownerID))
}

func (r *Repository) FetchTrashedByOwner(ctx context.Context, ownerID domainAccount.ID) (domain.Records, error) {
	return r.fetch(ctx, SelectTrashedFilesByOwner, uint64(ownerID))
}

func (r *Repository) FetchByUUID(ctx context.Context, ownerID domainAccount.ID, fileUUID uuid.UUID) (*domain.Record, error) {
	rec, err := scanRecord(r.db.QueryRow(ctx, SelectFileByUUID, uint64(ownerID), fileUUID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(rec), nil
}

func (r *Repository) CreateRecord(ctx context.Context, ownerID domainAccount.ID, req *domain.Record) (*domain.Record, error) {
	rec, err := scanRecord(r.db.QueryRow(
		ctx,
		InsertFile,
		uint64(ownerID), req.Name, req.SizeBytes, req.ContentType, req.StoragePath, req.DownloadURL,
	))
	if err != nil {
		return nil, err
	}

	return fromDBModel(rec), nil
}

func (r *Repository) TrashRecord(ctx context.Context, ownerID domainAccount.ID, fileUUID uuid.UUID) error {
	_, err := r.db.Exec(ctx, TrashFileByUUID, uint64(ownerID), fileUUID)
	return err
}

func (r *Repository) RestoreRecord(ctx context.Context, ownerID domainAccount.ID, fileUUID uuid.UUID) error {
	_, err := r.db.Exec(ctx, RestoreFileByUUID, uint64(ownerID), fileUUID)
	return err
}

func (r *Repository) DeleteRecord(ctx context.Context, ownerID domainAccount.ID, fileUUID uuid.UUID) error {
	_, err := r.db.Exec(ctx, DeleteFileByUUID, uint64(ownerID), fileUUID)
	return err
}

func (r *Repository) DeleteRecordsByOwner(ctx context.Context, ownerID domainAccount.ID) error {
	_, err := r.db.Exec(ctx, DeleteFilesByOwner, uint64(ownerID))
	return err
}

func (r *Repository) FetchTrashedBefore(ctx context.Context, cutoff time.Time) (domain.Records, error) {
	return r.fetch(ctx, SelectTrashedFilesBefore, cutoff)
}
