package folder

import (
	"context"

	"github.com/google/uuid"

	"file-vault-api/internal/domain/user"
)

type Repository interface {
	FetchFolders(ctx context.Context, userID user.ID, parentID *uuid.UUID) (Folders, error)
	CreateFolder(ctx context.Context, userID user.ID, name string, parentID *uuid.UUID) (*Folder, error)
	DeleteFolder(ctx context.Context, userID user.ID, folderID uuid.UUID) (bool, error)
}
