package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kieeler123/cloud-service/internal/application/ports"
	"github.com/kieeler123/cloud-service/internal/application/services"
	domain "github.com/kieeler123/cloud-service/internal/domain/file"
	"github.com/kieeler123/cloud-service/internal/infrastructure/jwt"
	"github.com/kieeler123/cloud-service/internal/interface/api/rest/dto/file"
	"github.com/kieeler123/cloud-service/internal/interface/api/rest/middleware"
	"github.com/kieeler123/cloud-service/internal/interface/api/rest/validator"
)

type FileController struct {
	fileService   ports.FileService
	logger        *zap.Logger
	maxUploadSize int64
}

func NewFileController(
	r *gin.Engine,
	fileService ports.FileService,
	logger *zap.Logger,
	jwtService *jwt.Service,
	maxUploadSize int64,
) *FileController {
	fc := &FileController{
		fileService:   fileService,
		logger:        logger,
		maxUploadSize: maxUploadSize,
	}

	auth := middleware.AuthMiddleware(jwtService)
	r.GET(RouteFiles, auth, fc.GetFilesHandler)
	r.POST(RouteFiles, auth, fc.UploadFileHandler)
	r.GET(RouteUploadStatus, auth, fc.UploadStatusHandler)
	r.POST(RouteFileTrash, auth, fc.TrashFileHandler)
	r.POST(RouteFileRestore, auth, fc.RestoreFileHandler)
	r.DELETE(RouteFile, auth, fc.DeleteFileHandler)
	r.GET(RouteFileDownload, auth, fc.DownloadFileHandler)

	return fc
}

func (fc *FileController) GetFilesHandler(c *gin.Context) {
	ownerUUID, ok := middleware.OwnerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing owner"})
		return
	}

	scope, err := domain.ParseScope(c.Query("scope"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recs, err := fc.fileService.FindFiles(c.Request.Context(), ownerUUID, scope)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get files"},
		)
		fc.logger.Error("FindFiles() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, file.ResponseData{
		Data: file.ToResponseFiles(recs),
	})
}

// UploadFileHandler accepts the file in the "file" multipart field. The
// optional "upload_id" field names the task for status polls; without it the
// server picks one and returns it.
func (fc *FileController) UploadFileHandler(c *gin.Context) {
	ownerUUID, ok := middleware.OwnerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing owner"})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	// 0-byte files are legal uploads
	if fh.Size < 0 || fh.Size > fc.maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	taskID := uuid.New()
	if raw := c.PostForm("upload_id"); raw != "" {
		ok, parsed := validator.IsUUID(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "upload_id must be a valid UUID"})
			return
		}
		taskID = parsed
	}

	rec, err := fc.fileService.Upload(c.Request.Context(), ownerUUID, taskID, fh)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrUploadTransport) {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{
			"error":     "failed to upload the file",
			"upload_id": taskID,
		})
		fc.logger.Error("Upload() error", zap.Error(err), zap.Stringer("upload_id", taskID))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"upload_id": taskID,
		"file":      file.ToResponseFile(*rec),
	})
}

func (fc *FileController) UploadStatusHandler(c *gin.Context) {
	if _, ok := middleware.OwnerFromContext(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing owner"})
		return
	}

	ok, taskID := validator.IsUUID(c.Param("upload_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "upload_id must be a valid UUID"})
		return
	}

	st, found := fc.fileService.UploadStatus(taskID)
	if !found {
		// no task: idle, either never started or already observed terminal
		c.JSON(http.StatusNotFound, gin.H{"error": "no such upload"})
		return
	}

	c.JSON(http.StatusOK, st)
}

func (fc *FileController) TrashFileHandler(c *gin.Context) {
	fc.mutateFile(c, "MoveToTrash", fc.fileService.MoveToTrash)
}

func (fc *FileController) RestoreFileHandler(c *gin.Context) {
	fc.mutateFile(c, "Restore", fc.fileService.Restore)
}

func (fc *FileController) DeleteFileHandler(c *gin.Context) {
	fc.mutateFile(c, "DeleteForever", fc.fileService.DeleteForever)
}

func (fc *FileController) DownloadFileHandler(c *gin.Context) {
	ownerUUID, ok := middleware.OwnerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing owner"})
		return
	}

	ok, fileUUID := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_id must be a valid UUID"})
		return
	}

	url, err := fc.fileService.DownloadURL(c.Request.Context(), ownerUUID, fileUUID)
	if err != nil {
		if errors.Is(err, services.ErrFileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to resolve the download url"},
		)
		fc.logger.Error("DownloadURL() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"download_url": url})
}

func (fc *FileController) mutateFile(
	c *gin.Context,
	op string,
	fn func(ctx context.Context, ownerUUID uuid.UUID, fileUUID uuid.UUID) error,
) {
	ownerUUID, ok := middleware.OwnerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing owner"})
		return
	}

	ok, fileUUID := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_id must be a valid UUID"})
		return
	}

	if err := fn(c.Request.Context(), ownerUUID, fileUUID); err != nil {
		if errors.Is(err, services.ErrFileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "file operation failed"},
		)
		fc.logger.Error(op+"() error", zap.Error(err), zap.Stringer("file_uuid", fileUUID))
		return
	}

	c.Status(http.StatusNoContent)
}
