package ports

import (
	"context"

	"github.com/google/uuid"

	"file-vault-api/internal/domain/folder"
	"file-vault-api/internal/domain/user"
)

type FolderService interface {
	CreateFolder(ctx context.Context, userUUID user.UUID, name string, parentID *uuid.UUID) (*folder.Folder, error)
	FindFolders(ctx context.Context, userUUID user.UUID, parentID *uuid.UUID) (folder.Folders, error)
	DeleteFolder(ctx context.Context, userUUID user.UUID, folderID uuid.UUID) error
}
