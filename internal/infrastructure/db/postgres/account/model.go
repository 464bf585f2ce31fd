package account

import (
	"time"

	"github.com/google/uuid"
)

type (
	Account struct {
		ID           uint64
		UUID         uuid.UUID
		Email        string
		PasswordHash *string
		DisplayName  string
		PhotoURL     string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Accounts []*Account
)
