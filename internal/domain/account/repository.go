package account

import (
	"context"
)

type Repository interface {
	FetchAccountByUUID(ctx context.Context, uuid UUID) (*Account, error)
	FetchAccountByEmail(ctx context.Context, email string) (*Account, error)
	CreateAccount(ctx context.Context, req Account) (*Account, error)
	UpdateAccount(ctx context.Context, req Account) (*Account, error)
	FetchInternalID(ctx context.Context, uuid UUID) (ID, error)
	DeleteAccount(ctx context.Context, id ID) (*Account, error)
}
