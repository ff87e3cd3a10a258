package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-vault-api/internal/application/ports"
	"file-vault-api/internal/application/services"
	folderDB "file-vault-api/internal/infrastructure/db/postgres/folder"
	"file-vault-api/internal/infrastructure/jwt"
	"file-vault-api/internal/interface/api/rest/dto/folder"
	"file-vault-api/internal/interface/api/rest/middleware"
	"file-vault-api/internal/interface/api/rest/validator"
)

type FolderController struct {
	folderService ports.FolderService
	logger        *zap.Logger
}

func NewFolderController(
	r *gin.Engine,
	folderService ports.FolderService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *FolderController {
	fc := &FolderController{
		folderService: folderService,
		logger:        logger,
	}

	authed := r.Group("", middleware.AuthMiddleware(jwtService))
	authed.GET(RouteFolders, fc.ListFoldersHandler)
	authed.POST(RouteFolders, fc.CreateFolderHandler)
	authed.DELETE(RouteFolder, fc.DeleteFolderHandler)

	return fc
}

func (fc *FolderController) ListFoldersHandler(c *gin.Context) {
	userUUID, ok := callerUUID(c)
	if !ok {
		return
	}

	parentID, err := validator.ParseOptionalUUID(c.Query("parentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "parentId " + err.Error()})
		return
	}

	fls, err := fc.folderService.FindFolders(c.Request.Context(), userUUID, parentID)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"success": false, "error": "failed to fetch folders"},
		)
		fc.logger.Error("FindFolders() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, folder.ListResponse{
		Success: true,
		Data:    folder.ToResponseFolders(fls),
		Count:   len(fls),
	})
}

func (fc *FolderController) CreateFolderHandler(c *gin.Context) {
	userUUID, ok := callerUUID(c)
	if !ok {
		return
	}

	var req folder.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid json"})
		return
	}

	name, err := validator.ValidateName(req.Name)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "folder " + err.Error()})
		return
	}
	parentID, err := validator.ParseOptionalUUID(req.ParentID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "parentId " + err.Error()})
		return
	}

	f, err := fc.folderService.CreateFolder(c.Request.Context(), userUUID, name, parentID)
	if err != nil {
		if errors.Is(err, folderDB.ErrFolderAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"success": false, "error": "failed to create folder"},
		)
		fc.logger.Error("CreateFolder() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, folder.DataResponse{
		Success: true,
		Data:    folder.ToResponseFolder(*f),
		Message: "folder created successfully",
	})
}

func (fc *FolderController) DeleteFolderHandler(c *gin.Context) {
	userUUID, ok := callerUUID(c)
	if !ok {
		return
	}
	ok, folderID := validator.IsUUID(c.Param("folder_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "folder_id must be a valid UUID"})
		return
	}

	err := fc.folderService.DeleteFolder(c.Request.Context(), userUUID, folderID)
	if err != nil {
		if errors.Is(err, services.ErrFolderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "folder not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"success": false, "error": "failed to delete folder"},
		)
		fc.logger.Error("DeleteFolder() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "folder deleted successfully"})
}
