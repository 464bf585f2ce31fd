package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kieeler123/cloud-service/internal/application/ports"
	"github.com/kieeler123/cloud-service/internal/application/uploads"
	accdomain "github.com/kieeler123/cloud-service/internal/domain/account"
	domain "github.com/kieeler123/cloud-service/internal/domain/file"
	"github.com/kieeler123/cloud-service/internal/infrastructure/mq"
	"github.com/kieeler123/cloud-service/internal/interface/api/rest/dto/file"
)

type FileService struct {
	fileRepository    domain.Repository
	accountRepository accdomain.Repository
	s3                ports.S3Client
	hub               ports.SnapshotHub
	mq                ports.RabbitMQ
	mCounter          *prometheus.CounterVec
	tracker           *uploads.Tracker
}

func NewFileService(
	fileRepository domain.Repository,
	accountRepository accdomain.Repository,
	s3 ports.S3Client,
	hub ports.SnapshotHub,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
	tracker *uploads.Tracker,
) ports.FileService {
	return &FileService{
		fileRepository:    fileRepository,
		accountRepository: accountRepository,
		s3:                s3,
		hub:               hub,
		mq:                rabbit,
		mCounter:          mCounter,
		tracker:           tracker,
	}
}

func (fs *FileService) FindFiles(ctx context.Context, ownerUUID accdomain.UUID, scope domain.Scope) (domain.Records, error) {
	id, err := fs.accountRepository.FetchInternalID(ctx, ownerUUID)
	if err != nil {
		return nil, err
	}

	var recs domain.Records
	if scope == domain.ScopeTrashed {
		recs, err = fs.fileRepository.FetchTrashedByOwner(ctx, id)
	} else {
		recs, err = fs.fileRepository.FetchByOwner(ctx, id)
	}
	if err != nil {
		return nil, err
	}

	return domain.Project(recs, scope), nil
}

// Upload runs transfer and commit as one call. Once the transfer completes the
// commit is detached from the request context: a client that disconnects after
// the last byte still gets its record written.
func (fs *FileService) Upload(ctx context.Context, ownerUUID accdomain.UUID, taskID uuid.UUID, in *multipart.FileHeader) (*domain.Record, error) {
	id, err := fs.accountRepository.FetchInternalID(ctx, ownerUUID)
	if err != nil {
		return nil, err
	}

	task := fs.tracker.Begin(taskID, ownerUUID, in.Filename)

	f, err := in.Open()
	if err != nil {
		task.Fail("could not read the uploaded file")
		return nil, fmt.Errorf("%w: %s", ErrUploadTransport, err)
	}
	defer f.Close()

	key := uploads.StorageKey(ownerUUID, in.Filename)
	body := uploads.NewProgressReader(f, in.Size, task.SetProgress)

	if err = fs.s3.PutObject(ctx, key, body, in.Size, in.Header.Get("Content-Type")); err != nil {
		task.Fail("upload transfer failed")
		return nil, fmt.Errorf("%w: %s", ErrUploadTransport, err)
	}

	task.ToCommitting()
	commitCtx := context.WithoutCancel(ctx)

	rec, err := fs.fileRepository.CreateRecord(commitCtx, id, &domain.Record{
		OwnerID:     &id,
		Name:        in.Filename,
		SizeBytes:   uint64(in.Size),
		ContentType: in.Header.Get("Content-Type"),
		StoragePath: key,
		DownloadURL: fs.s3.GetPublicURL(key),
	})
	if err != nil {
		// The object stays behind; there is no compensating delete here.
		task.Fail("saving the file record failed")
		return nil, fmt.Errorf("%w: %s", ErrUploadCommit, err)
	}

	task.Done()

	fs.hub.Invalidate(commitCtx, ownerUUID)
	fs.emit(mq.ActionCreated, ownerUUID, rec)
	fs.mCounter.WithLabelValues("file_uploaded_total").Inc()

	return rec, nil
}

func (fs *FileService) UploadStatus(taskID uuid.UUID) (uploads.Status, bool) {
	return fs.tracker.Status(taskID)
}

func (fs *FileService) MoveToTrash(ctx context.Context, ownerUUID accdomain.UUID, fileUUID uuid.UUID) error {
	id, rec, err := fs.lookup(ctx, ownerUUID, fileUUID)
	if err != nil {
		return err
	}

	// Trashing a trashed record converges; no state check here.
	if err = fs.fileRepository.TrashRecord(ctx, id, fileUUID); err != nil {
		return err
	}

	fs.hub.Invalidate(ctx, ownerUUID)
	fs.emit(mq.ActionTrashed, ownerUUID, rec)
	fs.mCounter.WithLabelValues("file_trashed_total").Inc()

	return nil
}

func (fs *FileService) Restore(ctx context.Context, ownerUUID accdomain.UUID, fileUUID uuid.UUID) error {
	id, rec, err := fs.lookup(ctx, ownerUUID, fileUUID)
	if err != nil {
		return err
	}

	if err = fs.fileRepository.RestoreRecord(ctx, id, fileUUID); err != nil {
		return err
	}

	fs.hub.Invalidate(ctx, ownerUUID)
	fs.emit(mq.ActionRestored, ownerUUID, rec)
	fs.mCounter.WithLabelValues("file_restored_total").Inc()

	return nil
}

// DeleteForever removes the object first and the record second. If the record
// delete fails the row points at a missing object; the reconciliation sweep
// picks those up later.
func (fs *FileService) DeleteForever(ctx context.Context, ownerUUID accdomain.UUID, fileUUID uuid.UUID) error {
	id, rec, err := fs.lookup(ctx, ownerUUID, fileUUID)
	if err != nil {
		return err
	}

	if err = fs.s3.DeleteObject(ctx, rec.StoragePath); err != nil {
		return err
	}
	if err = fs.fileRepository.DeleteRecord(ctx, id, fileUUID); err != nil {
		return err
	}

	fs.hub.Invalidate(ctx, ownerUUID)
	fs.emit(mq.ActionDeleted, ownerUUID, rec)
	fs.mCounter.WithLabelValues("file_deleted_total").Inc()

	return nil
}

func (fs *FileService) DownloadURL(ctx context.Context, ownerUUID accdomain.UUID, fileUUID uuid.UUID) (string, error) {
	_, rec, err := fs.lookup(ctx, ownerUUID, fileUUID)
	if err != nil {
		return "", err
	}

	return fs.s3.PresignGetURL(ctx, rec.StoragePath)
}

func (fs *FileService) lookup(ctx context.Context, ownerUUID accdomain.UUID, fileUUID uuid.UUID) (accdomain.ID, *domain.Record, error) {
	id, err := fs.accountRepository.FetchInternalID(ctx, ownerUUID)
	if err != nil {
		return 0, nil, err
	}

	rec, err := fs.fileRepository.FetchByUUID(ctx, id, fileUUID)
	if err != nil {
		return 0, nil, err
	}
	if rec == nil {
		return 0, nil, ErrFileNotFound
	}

	return id, rec, nil
}

func (fs *FileService) emit(action string, ownerUUID accdomain.UUID, rec *domain.Record) {
	if rec == nil {
		return
	}
	fs.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Action:  action,
		Entity:  mq.EntityFile,
		OwnerID: ownerUUID.String(),
		Payload: file.ToResponseFile(*rec),
	}
}
