package ports

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"

	"file-vault-api/internal/domain/file"
	"file-vault-api/internal/domain/user"
)

type FileService interface {
	Upload(ctx context.Context, userUUID user.UUID, folderID *uuid.UUID, in *multipart.FileHeader) (*file.File, error)
	FindFiles(ctx context.Context, userUUID user.UUID, folderID *uuid.UUID, opts file.ListOptions) (file.Files, error)
	FindFileByID(ctx context.Context, userUUID user.UUID, fileID uuid.UUID) (*file.File, error)
	RenameFile(ctx context.Context, userUUID user.UUID, fileID uuid.UUID, name string) (*file.File, error)
	DeleteFile(ctx context.Context, userUUID user.UUID, fileID uuid.UUID) error
	DownloadLink(ctx context.Context, userUUID user.UUID, fileID uuid.UUID) (string, *file.File, error)
}
