package services

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	accdomain "github.com/kieeler123/cloud-service/internal/domain/account"
	domain "github.com/kieeler123/cloud-service/internal/domain/file"
	accountDB "github.com/kieeler123/cloud-service/internal/infrastructure/db/postgres/account"
	"github.com/kieeler123/cloud-service/internal/infrastructure/mq"
)

func newAccountService(
	accounts *FakeAccountRepository,
	files *FakeFileRepository,
	s3 *FakeS3Client,
) (*AccountService, *FakeSnapshotHub, *FakeRabbitMQ) {
	hub := &FakeSnapshotHub{}
	rabbit := NewFakeRabbitMQ()
	as := NewAccountService(accounts, files, s3, hub, rabbit, newTestCounter()).(*AccountService)
	return as, hub, rabbit
}

func TestAccountService_SignUp(t *testing.T) {
	t.Run("creates the account with a bcrypt hash and a normalized email", func(t *testing.T) {
		var created accdomain.Account
		accounts := &FakeAccountRepository{
			CreateAccountFunc: func(ctx context.Context, req accdomain.Account) (*accdomain.Account, error) {
				created = req
				out := req
				out.UUID = uuid.New()
				return &out, nil
			},
		}
		as, _, rabbit := newAccountService(accounts, &FakeFileRepository{}, &FakeS3Client{})

		a, err := as.SignUp(context.Background(), "  Jane.Doe@Example.COM ", "s3cret-enough")
		require.NoError(t, err)
		require.NotNil(t, a)

		assert.Equal(t, "jane.doe@example.com", created.Email)
		require.NotNil(t, created.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*created.PasswordHash), []byte("s3cret-enough")))

		events := rabbit.drain()
		require.Len(t, events, 1)
		assert.Equal(t, mq.ActionCreated, events[0].Action)
		assert.Equal(t, mq.EntityAccount, events[0].Entity)
		assert.Equal(t, a.UUID.String(), events[0].OwnerID)
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		as, _, _ := newAccountService(&FakeAccountRepository{}, &FakeFileRepository{}, &FakeS3Client{})
		_, err := as.SignUp(context.Background(), "not-an-email", "s3cret-enough")
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("rejects a short password", func(t *testing.T) {
		as, _, _ := newAccountService(&FakeAccountRepository{}, &FakeFileRepository{}, &FakeS3Client{})
		_, err := as.SignUp(context.Background(), "jane@example.com", "short")
		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("maps a duplicate email to ErrEmailInUse", func(t *testing.T) {
		accounts := &FakeAccountRepository{
			CreateAccountFunc: func(ctx context.Context, req accdomain.Account) (*accdomain.Account, error) {
				return nil, accountDB.ErrEmailAlreadyExists
			},
		}
		as, _, _ := newAccountService(accounts, &FakeFileRepository{}, &FakeS3Client{})
		_, err := as.SignUp(context.Background(), "jane@example.com", "s3cret-enough")
		assert.ErrorIs(t, err, ErrEmailInUse)
	})
}

func TestAccountService_DeleteAccount(t *testing.T) {
	ownerUUID := uuid.New()
	ownerID := accdomain.ID(7)

	t.Run("rejects a stale token", func(t *testing.T) {
		as, _, _ := newAccountService(&FakeAccountRepository{}, &FakeFileRepository{}, &FakeS3Client{})
		err := as.DeleteAccount(context.Background(), ownerUUID, time.Now().Add(-time.Hour))
		assert.ErrorIs(t, err, ErrRequiresRecentLogin)
	})

	t.Run("cascades objects, records, then the account row", func(t *testing.T) {
		var deletedKeys []string
		var recordsDeleted, rowDeleted bool

		accounts := &FakeAccountRepository{
			FetchInternalIDFunc: func(ctx context.Context, u accdomain.UUID) (accdomain.ID, error) {
				return ownerID, nil
			},
			DeleteAccountFunc: func(ctx context.Context, id accdomain.ID) (*accdomain.Account, error) {
				assert.True(t, recordsDeleted, "records must be deleted before the account row")
				rowDeleted = true
				return &accdomain.Account{UUID: ownerUUID}, nil
			},
		}
		files := &FakeFileRepository{
			FetchByOwnerFunc: func(ctx context.Context, id accdomain.ID) (domain.Records, error) {
				return domain.Records{
					{UUID: uuid.New(), StoragePath: "uploads/a"},
					{UUID: uuid.New(), StoragePath: "uploads/b", IsTrashed: true},
				}, nil
			},
			DeleteRecordsByOwnerFunc: func(ctx context.Context, id accdomain.ID) error {
				assert.Len(t, deletedKeys, 3, "objects go first")
				recordsDeleted = true
				return nil
			},
		}
		s3 := &FakeS3Client{
			DeleteObjectFunc: func(ctx context.Context, key string) error {
				deletedKeys = append(deletedKeys, key)
				return nil
			},
		}

		as, hub, rabbit := newAccountService(accounts, files, s3)
		err := as.DeleteAccount(context.Background(), ownerUUID, time.Now())
		require.NoError(t, err)

		assert.True(t, rowDeleted)
		// trashed records included, plus the avatar object
		assert.Contains(t, deletedKeys, "uploads/a")
		assert.Contains(t, deletedKeys, "uploads/b")
		assert.Contains(t, deletedKeys, "avatars/"+ownerUUID.String())
		assert.Equal(t, []accdomain.UUID{ownerUUID}, hub.invalidated)

		events := rabbit.drain()
		require.Len(t, events, 1)
		assert.Equal(t, mq.ActionDeleted, events[0].Action)
	})

	t.Run("an object delete failure aborts before any row is touched", func(t *testing.T) {
		accounts := &FakeAccountRepository{
			FetchInternalIDFunc: func(ctx context.Context, u accdomain.UUID) (accdomain.ID, error) {
				return ownerID, nil
			},
		}
		files := &FakeFileRepository{
			FetchByOwnerFunc: func(ctx context.Context, id accdomain.ID) (domain.Records, error) {
				return domain.Records{{UUID: uuid.New(), StoragePath: "uploads/a"}}, nil
			},
		}
		s3 := &FakeS3Client{
			DeleteObjectFunc: func(ctx context.Context, key string) error {
				return assert.AnError
			},
		}

		as, _, rabbit := newAccountService(accounts, files, s3)
		err := as.DeleteAccount(context.Background(), ownerUUID, time.Now())
		require.Error(t, err)
		assert.Empty(t, rabbit.drain())
	})
}

func TestAccountService_UpdateProfile(t *testing.T) {
	ownerUUID := uuid.New()
	stored := &accdomain.Account{UUID: ownerUUID, Email: "jane@example.com", DisplayName: "old"}

	accounts := &FakeAccountRepository{
		FetchAccountByUUIDFunc: func(ctx context.Context, u accdomain.UUID) (*accdomain.Account, error) {
			cp := *stored
			return &cp, nil
		},
		UpdateAccountFunc: func(ctx context.Context, req accdomain.Account) (*accdomain.Account, error) {
			cp := req
			return &cp, nil
		},
	}

	as, _, rabbit := newAccountService(accounts, &FakeFileRepository{}, &FakeS3Client{})

	name := "  Jane D.  "
	a, err := as.UpdateProfile(context.Background(), ownerUUID, &name)
	require.NoError(t, err)
	assert.Equal(t, "Jane D.", a.DisplayName)

	events := rabbit.drain()
	require.Len(t, events, 1)
	assert.Equal(t, mq.ActionUpdated, events[0].Action)

	// nil display name leaves the stored value alone
	a, err = as.UpdateProfile(context.Background(), ownerUUID, nil)
	require.NoError(t, err)
	assert.Equal(t, "old", a.DisplayName)
}

func TestAccountService_UpdatePhoto(t *testing.T) {
	ownerUUID := uuid.New()

	var putKey string
	s3 := &FakeS3Client{
		PutObjectFunc: func(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
			putKey = key
			return nil
		},
	}

	accounts := &FakeAccountRepository{
		FetchAccountByUUIDFunc: func(ctx context.Context, u accdomain.UUID) (*accdomain.Account, error) {
			return &accdomain.Account{UUID: ownerUUID, Email: "jane@example.com"}, nil
		},
		UpdateAccountFunc: func(ctx context.Context, req accdomain.Account) (*accdomain.Account, error) {
			cp := req
			return &cp, nil
		},
	}

	as, _, _ := newAccountService(accounts, &FakeFileRepository{}, s3)

	fh := makeFileHeader(t, "me.png", []byte("png-bytes"))
	a, err := as.UpdatePhoto(context.Background(), ownerUUID, fh)
	require.NoError(t, err)

	assert.Equal(t, "avatars/"+ownerUUID.String(), putKey)
	assert.Contains(t, a.PhotoURL, putKey)
}
