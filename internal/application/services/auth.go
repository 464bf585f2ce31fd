package services

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/kieeler123/cloud-service/internal/application/ports"
	"github.com/kieeler123/cloud-service/internal/domain/account"
	"github.com/kieeler123/cloud-service/internal/infrastructure/jwt"
)

const tokenTTL = time.Hour

type AuthService struct {
	jwtService *jwt.Service
}

func NewAuthService(
	jwtService *jwt.Service,
) ports.Auth {
	return &AuthService{
		jwtService: jwtService,
	}
}

func (as *AuthService) GenerateToken(a *account.Account, requestPassword string) (string, error) {
	if a.PasswordHash == nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*a.PasswordHash), []byte(requestPassword)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := as.jwtService.GenerateJWT(a.UUID.String(), tokenTTL)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}
