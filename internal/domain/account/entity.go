package account

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID   uint64
	UUID = uuid.UUID
	Account struct {
		UUID         UUID
		Email        string
		PasswordHash *string
		DisplayName  string
		PhotoURL     string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Accounts []*Account
)
