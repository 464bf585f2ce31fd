package account

import (
	domain "github.com/kieeler123/cloud-service/internal/domain/account"
)

func ToResponseAccount(aDomain domain.Account) Account {
	var a = Account{
		UUID:        aDomain.UUID,
		Email:       aDomain.Email,
		DisplayName: aDomain.DisplayName,
		PhotoURL:    aDomain.PhotoURL,
		CreatedAt:   aDomain.CreatedAt,
	}

	return a
}
