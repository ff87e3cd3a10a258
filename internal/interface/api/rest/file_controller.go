package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"file-vault-api/internal/application/ports"
	"file-vault-api/internal/application/services"
	domain "file-vault-api/internal/domain/file"
	"file-vault-api/internal/domain/user"
	"file-vault-api/internal/infrastructure/jwt"
	"file-vault-api/internal/infrastructure/telegram"
	"file-vault-api/internal/interface/api/rest/dto/file"
	"file-vault-api/internal/interface/api/rest/middleware"
	"file-vault-api/internal/interface/api/rest/validator"
)

type FileController struct {
	fileService ports.FileService
	logger      *zap.Logger
}

func NewFileController(
	r *gin.Engine,
	fileService ports.FileService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *FileController {
	fc := &FileController{
		fileService: fileService,
		logger:      logger,
	}

	authed := r.Group("", middleware.AuthMiddleware(jwtService))
	authed.GET(RouteFiles, fc.ListFilesHandler)
	authed.GET(RouteFile, fc.GetFileHandler)
	authed.POST(RouteFileUpload, fc.UploadFileHandler)
	authed.PATCH(RouteFileRename, fc.RenameFileHandler)
	authed.DELETE(RouteFile, fc.DeleteFileHandler)
	authed.GET(RouteFileDownload, fc.DownloadFileHandler)

	return fc
}

func (fc *FileController) ListFilesHandler(c *gin.Context) {
	userUUID, ok := callerUUID(c)
	if !ok {
		return
	}

	folderID, err := validator.ParseOptionalUUID(c.Query("folderId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "folderId " + err.Error()})
		return
	}

	limit, err := validator.ParseNonNegativeInt(c.Query("limit"), domain.DefaultLimit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "limit " + err.Error()})
		return
	}
	offset, err := validator.ParseNonNegativeInt(c.Query("offset"), 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "offset " + err.Error()})
		return
	}

	opts := domain.ListOptions{
		Search:    c.Query("search"),
		SortBy:    domain.NormalizeSortField(c.Query("sortBy")),
		SortOrder: domain.NormalizeSortOrder(c.Query("sortOrder")),
		Limit:     limit,
		Offset:    offset,
	}

	fls, err := fc.fileService.FindFiles(c.Request.Context(), userUUID, folderID, opts)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"success": false, "error": "failed to fetch files"},
		)
		fc.logger.Error("FindFiles() error", zap.Error(err))
		return
	}

	resp := file.ListResponse{
		Success: true,
		Files:   file.ToResponseFiles(fls),
		Count:   len(fls),
	}
	c.JSON(http.StatusOK, resp)
}

func (fc *FileController) GetFileHandler(c *gin.Context) {
	userUUID, ok := callerUUID(c)
	if !ok {
		return
	}
	ok, fileID := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "file_id must be a valid UUID"})
		return
	}

	f, err := fc.fileService.FindFileByID(c.Request.Context(), userUUID, fileID)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"success": false, "error": "failed to fetch file"},
		)
		fc.logger.Error("FindFileByID() error", zap.Error(err))
		return
	}
	if f == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "file not found"})
		return
	}

	c.JSON(http.StatusOK, file.DataResponse{Success: true, Data: file.ToResponseFile(*f)})
}

func (fc *FileController) UploadFileHandler(c *gin.Context) {
	userUUID, ok := callerUUID(c)
	if !ok {
		return
	}

	folderID, err := validator.ParseOptionalUUID(c.PostForm("folderId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "folderId " + err.Error()})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "no file provided"})
		return
	}
	if fh.Size <= 0 || fh.Size > telegram.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"success": false, "error": "file too large or empty"})
		return
	}

	f, err := fc.fileService.Upload(c.Request.Context(), userUUID, folderID, fh)
	if err != nil {
		status := http.StatusInternalServerError
		msg := "failed to upload file"
		if errors.Is(err, telegram.ErrUnavailable) {
			msg = err.Error()
		}
		c.JSON(status, gin.H{"success": false, "error": "failed to upload file", "message": msg})
		fc.logger.Error("Upload() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, file.DataResponse{
		Success: true,
		Data:    file.ToResponseFile(*f),
		Message: "file uploaded successfully",
	})
}

func (fc *FileController) RenameFileHandler(c *gin.Context) {
	userUUID, ok := callerUUID(c)
	if !ok {
		return
	}
	ok, fileID := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "file_id must be a valid UUID"})
		return
	}

	var req file.RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid json"})
		return
	}
	name, err := validator.ValidateName(req.Name)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	f, err := fc.fileService.RenameFile(c.Request.Context(), userUUID, fileID, name)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"success": false, "error": "failed to rename file"},
		)
		fc.logger.Error("RenameFile() error", zap.Error(err))
		return
	}
	if f == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "file not found"})
		return
	}

	c.JSON(http.StatusOK, file.DataResponse{
		Success: true,
		Data:    file.ToResponseFile(*f),
		Message: "file renamed successfully",
	})
}

func (fc *FileController) DeleteFileHandler(c *gin.Context) {
	userUUID, ok := callerUUID(c)
	if !ok {
		return
	}
	ok, fileID := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "file_id must be a valid UUID"})
		return
	}

	err := fc.fileService.DeleteFile(c.Request.Context(), userUUID, fileID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "file not found"})
		case errors.Is(err, telegram.ErrUnavailable):
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to delete file", "message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to delete file"})
		}
		if !errors.Is(err, services.ErrFileNotFound) {
			fc.logger.Error("DeleteFile() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "file deleted successfully"})
}

func (fc *FileController) DownloadFileHandler(c *gin.Context) {
	userUUID, ok := callerUUID(c)
	if !ok {
		return
	}
	ok, fileID := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "file_id must be a valid UUID"})
		return
	}

	url, f, err := fc.fileService.DownloadLink(c.Request.Context(), userUUID, fileID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFileNotFound), errors.Is(err, telegram.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "file not found"})
		case errors.Is(err, telegram.ErrUnavailable):
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to get download link", "message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to get download link"})
			fc.logger.Error("DownloadLink() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusOK, file.DownloadResponse{
		Success: true,
		Data: file.Download{
			DownloadURL: url,
			File:        file.ToResponseFile(*f),
		},
	})
}

// callerUUID pulls the authenticated identity set by the auth middleware.
func callerUUID(c *gin.Context) (user.UUID, bool) {
	v, exists := c.Get(middleware.CtxUserUUID)
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "authentication required"})
		return uuid.Nil, false
	}
	s, _ := v.(string)
	ok, id := validator.IsUUID(s)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid token"})
		return uuid.Nil, false
	}
	return id, true
}
