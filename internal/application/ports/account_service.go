package ports

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/kieeler123/cloud-service/internal/domain/account"
)

type AccountService interface {
	SignUp(ctx context.Context, email, password string) (*account.Account, error)
	FindByEmail(ctx context.Context, email string) (*account.Account, error)
	Profile(ctx context.Context, ownerUUID account.UUID) (*account.Account, error)
	UpdateProfile(ctx context.Context, ownerUUID account.UUID, displayName *string) (*account.Account, error)
	UpdatePhoto(ctx context.Context, ownerUUID account.UUID, in *multipart.FileHeader) (*account.Account, error)
	// DeleteAccount cascades over the owner's objects and records.
	// tokenIssuedAt enforces the recent-login requirement for the
	// destructive path.
	DeleteAccount(ctx context.Context, ownerUUID account.UUID, tokenIssuedAt time.Time) error
}
