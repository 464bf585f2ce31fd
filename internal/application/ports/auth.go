package ports

import (
	"github.com/kieeler123/cloud-service/internal/domain/account"
)

type Auth interface {
	GenerateToken(a *account.Account, requestPassword string) (string, error)
}
