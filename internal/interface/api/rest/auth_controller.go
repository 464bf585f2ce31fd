package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kieeler123/cloud-service/internal/application/ports"
	"github.com/kieeler123/cloud-service/internal/application/services"
	"github.com/kieeler123/cloud-service/internal/interface/api/rest/dto/account"
	"github.com/kieeler123/cloud-service/internal/interface/api/rest/dto/auth"
	"github.com/kieeler123/cloud-service/internal/interface/api/rest/validator"
)

type AuthController struct {
	logger         *zap.Logger
	accountService ports.AccountService
	authService    ports.Auth
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	accountService ports.AccountService,
	authService ports.Auth,
) *AuthController {
	ac := &AuthController{
		logger:         logger,
		accountService: accountService,
		authService:    authService,
	}

	r.POST(RouteSignup, ac.SignupHandler)
	r.POST(RouteLogin, ac.LoginHandler)

	return ac
}

// SignupHandler creates the account and signs the caller in with one call.
func (ac *AuthController) SignupHandler(c *gin.Context) {
	var req auth.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateSignup(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	a, err := ac.accountService.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailInUse):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidEmail), errors.Is(err, services.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to sign up"},
			)
			ac.logger.Error("SignUp() error", zap.Error(err))
		}
		return
	}

	token, err := ac.authService.GenerateToken(a, req.Password)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to sign up"},
		)
		ac.logger.Error("GenerateToken() error", zap.Error(err), zap.Stringer("owner_uuid", a.UUID))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"account":      account.ToResponseAccount(*a),
		"access_token": token,
		"token_type":   "Bearer",
	})
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateLogin(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	a, err := ac.accountService.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to sign in"},
		)
		ac.logger.Error("FindByEmail() error", zap.Error(err))
		return
	}
	// Unknown email and wrong password answer identically.
	if a == nil {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": services.ErrInvalidCredentials.Error()},
		)
		return
	}

	token, err := ac.authService.GenerateToken(a, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to sign in"},
		)
		ac.logger.Error("GenerateToken() error", zap.Error(err), zap.Stringer("owner_uuid", a.UUID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "Bearer",
	})
}
