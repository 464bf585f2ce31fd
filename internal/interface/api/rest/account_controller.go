package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kieeler123/cloud-service/internal/application/ports"
	"github.com/kieeler123/cloud-service/internal/application/services"
	"github.com/kieeler123/cloud-service/internal/infrastructure/jwt"
	"github.com/kieeler123/cloud-service/internal/interface/api/rest/dto/account"
	"github.com/kieeler123/cloud-service/internal/interface/api/rest/middleware"
)

// 5MB
const maxAvatarSize = int64(5 << 20)

type AccountController struct {
	accountService ports.AccountService
	logger         *zap.Logger
}

func NewAccountController(
	r *gin.Engine,
	accountService ports.AccountService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *AccountController {
	ac := &AccountController{
		accountService: accountService,
		logger:         logger,
	}

	auth := middleware.AuthMiddleware(jwtService)
	r.GET(RouteAccount, auth, ac.GetAccountHandler)
	r.PUT(RouteAccount, auth, ac.UpdateAccountHandler)
	r.POST(RouteAccountPhoto, auth, ac.UpdatePhotoHandler)
	r.DELETE(RouteAccount, auth, ac.DeleteAccountHandler)

	return ac
}

func (ac *AccountController) GetAccountHandler(c *gin.Context) {
	ownerUUID, ok := middleware.OwnerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing owner"})
		return
	}

	a, err := ac.accountService.Profile(c.Request.Context(), ownerUUID)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get the account"},
		)
		ac.logger.Error("Profile() error", zap.Error(err))
		return
	}
	if a == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "account not found"},
		)
		return
	}

	c.JSON(http.StatusOK, account.ToResponseAccount(*a))
}

func (ac *AccountController) UpdateAccountHandler(c *gin.Context) {
	ownerUUID, ok := middleware.OwnerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing owner"})
		return
	}

	var req account.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	a, err := ac.accountService.UpdateProfile(c.Request.Context(), ownerUUID, req.DisplayName)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update the account"},
		)
		ac.logger.Error("UpdateProfile() error", zap.Error(err))
		return
	}
	if a == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "account not found"},
		)
		return
	}

	c.JSON(http.StatusOK, account.ToResponseAccount(*a))
}

func (ac *AccountController) UpdatePhotoHandler(c *gin.Context) {
	ownerUUID, ok := middleware.OwnerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing owner"})
		return
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo is required"})
		return
	}
	if fh.Size <= 0 || fh.Size > maxAvatarSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "photo too large or empty"})
		return
	}

	a, err := ac.accountService.UpdatePhoto(c.Request.Context(), ownerUUID, fh)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update the photo"},
		)
		ac.logger.Error("UpdatePhoto() error", zap.Error(err))
		return
	}
	if a == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "account not found"},
		)
		return
	}

	c.JSON(http.StatusOK, account.ToResponseAccount(*a))
}

func (ac *AccountController) DeleteAccountHandler(c *gin.Context) {
	ownerUUID, ok := middleware.OwnerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing owner"})
		return
	}
	issuedAt, ok := middleware.IssuedAtFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": services.ErrRequiresRecentLogin.Error()})
		return
	}

	if err := ac.accountService.DeleteAccount(c.Request.Context(), ownerUUID, issuedAt); err != nil {
		if errors.Is(err, services.ErrRequiresRecentLogin) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete the account"},
		)
		ac.logger.Error("DeleteAccount() error", zap.Error(err))
		return
	}

	c.Status(http.StatusNoContent)
}
