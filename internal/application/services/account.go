package services

import (
	"context"
	"errors"
	"mime/multipart"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"github.com/kieeler123/cloud-service/internal/application/ports"
	"github.com/kieeler123/cloud-service/internal/application/uploads"
	domain "github.com/kieeler123/cloud-service/internal/domain/account"
	"github.com/kieeler123/cloud-service/internal/domain/file"
	accountDB "github.com/kieeler123/cloud-service/internal/infrastructure/db/postgres/account"
	"github.com/kieeler123/cloud-service/internal/infrastructure/mq"
	"github.com/kieeler123/cloud-service/internal/interface/api/rest/dto/account"
)

const (
	passwordMinLen = 8
	passwordMaxLen = 72 // bcrypt input cap

	// recentLoginWindow bounds how old the caller's token may be for the
	// destructive account path.
	recentLoginWindow = 5 * time.Minute
)

type AccountService struct {
	accountRepository domain.Repository
	fileRepository    file.Repository
	s3                ports.S3Client
	hub               ports.SnapshotHub
	mq                ports.RabbitMQ
	mCounter          *prometheus.CounterVec
}

func NewAccountService(
	accountRepository domain.Repository,
	fileRepository file.Repository,
	s3 ports.S3Client,
	hub ports.SnapshotHub,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.AccountService {
	return &AccountService{
		accountRepository: accountRepository,
		fileRepository:    fileRepository,
		s3:                s3,
		hub:               hub,
		mq:                rabbit,
		mCounter:          mCounter,
	}
}

func (as *AccountService) SignUp(ctx context.Context, email, password string) (*domain.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}
	if n := utf8.RuneCountInString(password); n < passwordMinLen || len(password) > passwordMaxLen {
		return nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	h := string(hash)

	aRet, err := as.accountRepository.CreateAccount(ctx, domain.Account{
		Email:        email,
		PasswordHash: &h,
	})
	if err != nil {
		if errors.Is(err, accountDB.ErrEmailAlreadyExists) {
			return nil, ErrEmailInUse
		}
		return nil, err
	}

	if aRet != nil {
		as.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Action:  mq.ActionCreated,
			Entity:  mq.EntityAccount,
			OwnerID: aRet.UUID.String(),
			Payload: account.ToResponseAccount(*aRet),
		}
	}

	as.mCounter.WithLabelValues("account_created_total").Inc()

	return aRet, nil
}

func (as *AccountService) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	a, err := as.accountRepository.FetchAccountByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}

	return a, nil
}

func (as *AccountService) Profile(ctx context.Context, ownerUUID domain.UUID) (*domain.Account, error) {
	a, err := as.accountRepository.FetchAccountByUUID(ctx, ownerUUID)
	if err != nil {
		return nil, err
	}

	return a, nil
}

func (as *AccountService) UpdateProfile(ctx context.Context, ownerUUID domain.UUID, displayName *string) (*domain.Account, error) {
	a, err := as.accountRepository.FetchAccountByUUID(ctx, ownerUUID)
	if err != nil || a == nil {
		return nil, err
	}

	if displayName != nil {
		a.DisplayName = strings.TrimSpace(*displayName)
	}

	aRet, err := as.accountRepository.UpdateAccount(ctx, *a)
	if err != nil {
		return nil, err
	}

	as.emitUpdated(aRet)
	as.mCounter.WithLabelValues("account_updated_total").Inc()

	return aRet, nil
}

func (as *AccountService) UpdatePhoto(ctx context.Context, ownerUUID domain.UUID, in *multipart.FileHeader) (*domain.Account, error) {
	a, err := as.accountRepository.FetchAccountByUUID(ctx, ownerUUID)
	if err != nil || a == nil {
		return nil, err
	}

	f, err := in.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	key := uploads.AvatarKey(ownerUUID)
	if err = as.s3.PutObject(ctx, key, f, in.Size, in.Header.Get("Content-Type")); err != nil {
		return nil, err
	}

	a.PhotoURL = as.s3.GetPublicURL(key)

	aRet, err := as.accountRepository.UpdateAccount(ctx, *a)
	if err != nil {
		return nil, err
	}

	as.emitUpdated(aRet)
	as.mCounter.WithLabelValues("account_photo_updated_total").Inc()

	return aRet, nil
}

// DeleteAccount cascades: every stored object first, then the file records,
// then the account row. An object-delete failure aborts the cascade, so a
// retry sees the remaining records.
func (as *AccountService) DeleteAccount(ctx context.Context, ownerUUID domain.UUID, tokenIssuedAt time.Time) error {
	if time.Since(tokenIssuedAt) > recentLoginWindow {
		return ErrRequiresRecentLogin
	}

	id, err := as.accountRepository.FetchInternalID(ctx, ownerUUID)
	if err != nil {
		return err
	}

	recs, err := as.fileRepository.FetchByOwner(ctx, id)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		if err = as.s3.DeleteObject(ctx, rec.StoragePath); err != nil {
			return err
		}
	}
	// The avatar object may not exist; S3 treats that delete as a no-op.
	if err = as.s3.DeleteObject(ctx, uploads.AvatarKey(ownerUUID)); err != nil {
		return err
	}

	if err = as.fileRepository.DeleteRecordsByOwner(ctx, id); err != nil {
		return err
	}
	a, err := as.accountRepository.DeleteAccount(ctx, id)
	if err != nil {
		return err
	}

	as.hub.Invalidate(ctx, ownerUUID)

	if a != nil {
		as.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Action:  mq.ActionDeleted,
			Entity:  mq.EntityAccount,
			OwnerID: a.UUID.String(),
			Payload: account.ToResponseAccount(*a),
		}
	}

	as.mCounter.WithLabelValues("account_deleted_total").Inc()

	return nil
}

func (as *AccountService) emitUpdated(a *domain.Account) {
	if a == nil {
		return
	}
	as.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Action:  mq.ActionUpdated,
		Entity:  mq.EntityAccount,
		OwnerID: a.UUID.String(),
		Payload: account.ToResponseAccount(*a),
	}
}
