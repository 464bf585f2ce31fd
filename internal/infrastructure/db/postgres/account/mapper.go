package account

import (
	domain "github.com/kieeler123/cloud-service/internal/domain/account"
)

func fromDBModel(model *Account) *domain.Account {
	return &domain.Account{
		UUID:         model.UUID,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		DisplayName:  model.DisplayName,
		PhotoURL:     model.PhotoURL,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
