package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/kieeler123/cloud-service/internal/domain/account"
	"github.com/kieeler123/cloud-service/internal/infrastructure/db/postgres"
)

var ErrEmailAlreadyExists = errors.New("email already exists")

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchAccountByUUID(ctx context.Context, uuid domain.UUID) (*domain.Account, error) {
	a := new(Account)
	err := r.db.QueryRow(ctx, SelectAccountByUUID, uuid.String()).Scan(
		&a.ID,
		&a.UUID,
		&a.Email,
		&a.PasswordHash,
		&a.DisplayName,
		&a.PhotoURL,

		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(a), nil
}

func (r *Repository) FetchAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	a := new(Account)
	err := r.db.QueryRow(ctx, SelectAccountByEmail, email).Scan(
		&a.ID,
		&a.UUID,
		&a.Email,
		&a.PasswordHash,
		&a.DisplayName,
		&a.PhotoURL,

		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(a), nil
}

func (r *Repository) CreateAccount(ctx context.Context, req domain.Account) (*domain.Account, error) {
	a := new(Account)

	err := r.db.QueryRow(
		ctx,
		InsertAccount,
		req.Email, req.PasswordHash, req.DisplayName, req.PhotoURL,
	).Scan(
		&a.ID,
		&a.UUID,
		&a.Email,
		&a.PasswordHash,
		&a.DisplayName,
		&a.PhotoURL,

		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(a), nil
}

func (r *Repository) UpdateAccount(ctx context.Context, req domain.Account) (*domain.Account, error) {
	a := new(Account)

	err := r.db.QueryRow(ctx, UpdateAccountByUUID,
		req.DisplayName, req.PhotoURL, req.UUID,
	).Scan(
		&a.ID,
		&a.UUID,
		&a.Email,
		&a.PasswordHash,
		&a.DisplayName,
		&a.PhotoURL,

		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(a), nil
}

func (r *Repository) FetchInternalID(ctx context.Context, uuid domain.UUID) (domain.ID, error) {
	var id uint64
	if err := r.db.QueryRow(ctx, SelectIdByUUID, uuid.String()).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("account not found by uuid %s: %w", uuid.String(), err)
		}
		return 0, err
	}

	return domain.ID(id), nil
}

func (r *Repository) DeleteAccount(ctx context.Context, id domain.ID) (*domain.Account, error) {
	a := new(Account)

	err := r.db.QueryRow(ctx, DeleteAccountByID, uint64(id)).Scan(
		&a.ID,
		&a.UUID,
		&a.Email,
		&a.PasswordHash,
		&a.DisplayName,
		&a.PhotoURL,

		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(a), nil
}
