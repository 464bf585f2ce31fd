package account

import (
	"time"

	"github.com/google/uuid"
)

type (
	Account struct {
		UUID        uuid.UUID `json:"uuid"`
		Email       string    `json:"email"`
		DisplayName string    `json:"display_name,omitempty"`
		PhotoURL    string    `json:"photo_url,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}
	UpdateProfileRequest struct {
		DisplayName *string `json:"display_name"`
	}
)
