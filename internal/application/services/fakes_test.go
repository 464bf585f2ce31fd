package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"

	accdomain "github.com/kieeler123/cloud-service/internal/domain/account"
	domain "github.com/kieeler123/cloud-service/internal/domain/file"
	"github.com/kieeler123/cloud-service/internal/infrastructure/mq"
)

type FakeAccountRepository struct {
	FetchAccountByUUIDFunc  func(ctx context.Context, uuid accdomain.UUID) (*accdomain.Account, error)
	FetchAccountByEmailFunc func(ctx context.Context, email string) (*accdomain.Account, error)
	CreateAccountFunc       func(ctx context.Context, req accdomain.Account) (*accdomain.Account, error)
	UpdateAccountFunc       func(ctx context.Context, req accdomain.Account) (*accdomain.Account, error)
	FetchInternalIDFunc     func(ctx context.Context, uuid accdomain.UUID) (accdomain.ID, error)
	DeleteAccountFunc       func(ctx context.Context, id accdomain.ID) (*accdomain.Account, error)
}

func (f *FakeAccountRepository) FetchAccountByUUID(ctx context.Context, uuid accdomain.UUID) (*accdomain.Account, error) {
	if f.FetchAccountByUUIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchAccountByUUIDFunc(ctx, uuid)
}
func (f *FakeAccountRepository) FetchAccountByEmail(ctx context.Context, email string) (*accdomain.Account, error) {
	if f.FetchAccountByEmailFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchAccountByEmailFunc(ctx, email)
}
func (f *FakeAccountRepository) CreateAccount(ctx context.Context, req accdomain.Account) (*accdomain.Account, error) {
	if f.CreateAccountFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateAccountFunc(ctx, req)
}
func (f *FakeAccountRepository) UpdateAccount(ctx context.Context, req accdomain.Account) (*accdomain.Account, error) {
	if f.UpdateAccountFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateAccountFunc(ctx, req)
}
func (f *FakeAccountRepository) FetchInternalID(ctx context.Context, uuid accdomain.UUID) (accdomain.ID, error) {
	if f.FetchInternalIDFunc == nil {
		return 1, nil
	}
	return f.FetchInternalIDFunc(ctx, uuid)
}
func (f *FakeAccountRepository) DeleteAccount(ctx context.Context, id accdomain.ID) (*accdomain.Account, error) {
	if f.DeleteAccountFunc == nil {
		return nil, errors.New("not used")
	}
	return f.DeleteAccountFunc(ctx, id)
}

type FakeFileRepository struct {
	FetchByOwnerFunc         func(ctx context.Context, ownerID accdomain.ID) (domain.Records, error)
	FetchTrashedByOwnerFunc  func(ctx context.Context, ownerID accdomain.ID) (domain.Records, error)
	FetchByUUIDFunc          func(ctx context.Context, ownerID accdomain.ID, fileUUID uuid.UUID) (*domain.Record, error)
	CreateRecordFunc         func(ctx context.Context, ownerID accdomain.ID, req *domain.Record) (*domain.Record, error)
	TrashRecordFunc          func(ctx context.Context, ownerID accdomain.ID, fileUUID uuid.UUID) error
	RestoreRecordFunc        func(ctx context.Context, ownerID accdomain.ID, fileUUID uuid.UUID) error
	DeleteRecordFunc         func(ctx context.Context, ownerID accdomain.ID, fileUUID uuid.UUID) error
	DeleteRecordsByOwnerFunc func(ctx context.Context, ownerID accdomain.ID) error
	FetchTrashedBeforeFunc   func(ctx context.Context, cutoff time.Time) (domain.Records, error)
}

func (f *FakeFileRepository) FetchByOwner(ctx context.Context, ownerID accdomain.ID) (domain.Records, error) {
	if f.FetchByOwnerFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchByOwnerFunc(ctx, ownerID)
}
func (f *FakeFileRepository) FetchTrashedByOwner(ctx context.Context, ownerID accdomain.ID) (domain.Records, error) {
	if f.FetchTrashedByOwnerFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchTrashedByOwnerFunc(ctx, ownerID)
}
func (f *FakeFileRepository) FetchByUUID(ctx context.Context, ownerID accdomain.ID, fileUUID uuid.UUID) (*domain.Record, error) {
	if f.FetchByUUIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchByUUIDFunc(ctx, ownerID, fileUUID)
}
func (f *FakeFileRepository) CreateRecord(ctx context.Context, ownerID accdomain.ID, req *domain.Record) (*domain.Record, error) {
	if f.CreateRecordFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateRecordFunc(ctx, ownerID, req)
}
func (f *FakeFileRepository) TrashRecord(ctx context.Context, ownerID accdomain.ID, fileUUID uuid.UUID) error {
	if f.TrashRecordFunc == nil {
		return errors.New("not used")
	}
	return f.TrashRecordFunc(ctx, ownerID, fileUUID)
}
func (f *FakeFileRepository) RestoreRecord(ctx context.Context, ownerID accdomain.ID, fileUUID uuid.UUID) error {
	if f.RestoreRecordFunc == nil {
		return errors.New("not used")
	}
	return f.RestoreRecordFunc(ctx, ownerID, fileUUID)
}
func (f *FakeFileRepository) DeleteRecord(ctx context.Context, ownerID accdomain.ID, fileUUID uuid.UUID) error {
	if f.DeleteRecordFunc == nil {
		return errors.New("not used")
	}
	return f.DeleteRecordFunc(ctx, ownerID, fileUUID)
}
func (f *FakeFileRepository) DeleteRecordsByOwner(ctx context.Context, ownerID accdomain.ID) error {
	if f.DeleteRecordsByOwnerFunc == nil {
		return errors.New("not used")
	}
	return f.DeleteRecordsByOwnerFunc(ctx, ownerID)
}
func (f *FakeFileRepository) FetchTrashedBefore(ctx context.Context, cutoff time.Time) (domain.Records, error) {
	if f.FetchTrashedBeforeFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchTrashedBeforeFunc(ctx, cutoff)
}

type FakeS3Client struct {
	PutObjectFunc     func(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	DeleteObjectFunc  func(ctx context.Context, key string) error
	ObjectExistsFunc  func(ctx context.Context, key string) (bool, error)
	PresignGetURLFunc func(ctx context.Context, key string) (string, error)
}

func (f *FakeS3Client) PutObject(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	if f.PutObjectFunc == nil {
		return errors.New("not used")
	}
	return f.PutObjectFunc(ctx, key, body, size, contentType)
}
func (f *FakeS3Client) DeleteObject(ctx context.Context, key string) error {
	if f.DeleteObjectFunc == nil {
		return errors.New("not used")
	}
	return f.DeleteObjectFunc(ctx, key)
}
func (f *FakeS3Client) ObjectExists(ctx context.Context, key string) (bool, error) {
	if f.ObjectExistsFunc == nil {
		return false, errors.New("not used")
	}
	return f.ObjectExistsFunc(ctx, key)
}
func (f *FakeS3Client) PresignGetURL(ctx context.Context, key string) (string, error) {
	if f.PresignGetURLFunc == nil {
		return "", errors.New("not used")
	}
	return f.PresignGetURLFunc(ctx, key)
}
func (f *FakeS3Client) GetPublicURL(key string) string {
	return "https://bucket.s3.eu-west-3.amazonaws.com/" + key
}
func (f *FakeS3Client) GetBucket() string { return "bucket" }

type FakeRabbitMQ struct {
	in chan mq.Event
}

func NewFakeRabbitMQ() *FakeRabbitMQ {
	return &FakeRabbitMQ{in: make(chan mq.Event, 16)}
}

func (f *FakeRabbitMQ) Connect(ctx context.Context, dsn string) error { return nil }
func (f *FakeRabbitMQ) Init() error                                   { return nil }
func (f *FakeRabbitMQ) PublisherWorker(ctx context.Context)           {}
func (f *FakeRabbitMQ) GetInputChan() chan mq.Event                   { return f.in }
func (f *FakeRabbitMQ) GetConn() *amqp091.Connection                  { return nil }

func (f *FakeRabbitMQ) drain() []mq.Event {
	var out []mq.Event
	for {
		select {
		case e := <-f.in:
			out = append(out, e)
		default:
			return out
		}
	}
}

type FakeSnapshotHub struct {
	invalidated []accdomain.UUID
}

func (f *FakeSnapshotHub) Invalidate(ctx context.Context, ownerUUID accdomain.UUID) {
	f.invalidated = append(f.invalidated, ownerUUID)
}

func newTestCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "test", Name: "general_counters"},
		[]string{"result"})
}

// makeFileHeader builds a real multipart.FileHeader the way a gin handler
// would receive one.
func makeFileHeader(t *testing.T, fileName string, content []byte) *multipart.FileHeader {
	t.Helper()

	var b bytes.Buffer
	w := multipart.NewWriter(&b)
	fw, err := w.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&b, w.Boundary()).ReadForm(int64(len(content)) + 1024)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}
