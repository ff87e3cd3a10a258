package file

import (
	"context"

	"github.com/google/uuid"

	"file-vault-api/internal/domain/user"
)

type Repository interface {
	FetchFiles(ctx context.Context, userID user.ID, folderID *uuid.UUID, opts ListOptions) (Files, error)
	FetchFileByID(ctx context.Context, userID user.ID, fileID uuid.UUID) (*File, error)
	CreateFile(ctx context.Context, userID user.ID, req *File) (*File, error)
	RenameFile(ctx context.Context, userID user.ID, fileID uuid.UUID, name string) (*File, error)
	SoftDeleteFile(ctx context.Context, userID user.ID, fileID uuid.UUID) error
}
