package rest

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kieeler123/cloud-service/internal/application/services"
	accdomain "github.com/kieeler123/cloud-service/internal/domain/account"
	domain "github.com/kieeler123/cloud-service/internal/domain/file"
	"github.com/kieeler123/cloud-service/internal/infrastructure/jwt"
	"github.com/kieeler123/cloud-service/internal/interface/api/rest/dto/file"
)

const streamKeepAlive = 15 * time.Second

// StreamController serves the live drive view over SSE. EventSource cannot
// set headers, so the token is also accepted as the access_token query
// parameter.
type StreamController struct {
	hub        *services.SnapshotHub
	jwtService *jwt.Service
	logger     *zap.Logger
}

func NewStreamController(
	r *gin.Engine,
	hub *services.SnapshotHub,
	jwtService *jwt.Service,
	logger *zap.Logger,
) *StreamController {
	sc := &StreamController{
		hub:        hub,
		jwtService: jwtService,
		logger:     logger,
	}

	r.GET(RouteFileStream, sc.StreamFilesHandler)

	return sc
}

func (sc *StreamController) StreamFilesHandler(c *gin.Context) {
	// Per-connection gate: unknown until the token check settles, so the
	// connection is never treated as signed-out before it is inspected.
	gate := services.NewSessionGate()
	gate.OnChange(func(s services.AuthState, owner accdomain.UUID) {
		sc.logger.Debug("stream session settled",
			zap.Stringer("state", s),
			zap.String("owner", owner.String()),
		)
	})

	ownerUUID, ok := sc.resolveOwner(c)
	if !ok {
		gate.Reject()
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	gate.Resolve(ownerUUID)

	scope, err := domain.ParseScope(c.Query("scope"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := sc.hub.Subscribe(c.Request.Context(), ownerUUID, scope)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to subscribe"},
		)
		sc.logger.Error("Subscribe() error", zap.Error(err))
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	keepAlive := time.NewTicker(streamKeepAlive)
	defer keepAlive.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case snap, open := <-sub.Snapshots():
			if !open {
				return false
			}
			// full snapshot replace, never a delta
			c.SSEvent("snapshot", file.ResponseData{
				Data: file.ToResponseFiles(snap),
			})
			return true
		case <-keepAlive.C:
			c.SSEvent("ping", time.Now().Unix())
			return true
		}
	})
}

func (sc *StreamController) resolveOwner(c *gin.Context) (accdomain.UUID, bool) {
	tokenStr := c.Query("access_token")
	if tokenStr == "" {
		authHeader := c.GetHeader("Authorization")
		trimmed := strings.TrimPrefix(authHeader, "Bearer ")
		if trimmed != authHeader {
			tokenStr = trimmed
		}
	}
	if tokenStr == "" {
		return accdomain.UUID{}, false
	}

	claims, err := sc.jwtService.ValidateToken(tokenStr)
	if err != nil {
		return accdomain.UUID{}, false
	}
	ownerUUID, err := uuid.Parse(claims.OwnerID)
	if err != nil {
		return accdomain.UUID{}, false
	}

	return ownerUUID, true
}
