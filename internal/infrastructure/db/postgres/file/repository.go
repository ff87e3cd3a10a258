package file

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"file-vault-api/internal/domain/file"
	"file-vault-api/internal/domain/user"
	"file-vault-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) file.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchFiles(ctx context.Context, userID user.ID, folderID *uuid.UUID, opts file.ListOptions) (file.Files, error) {
	opts = opts.WithDefaults()

	args := []any{userID}
	if folderID != nil {
		args = append(args, *folderID)
	}
	if opts.Search != "" {
		args = append(args, "%"+opts.Search+"%")
	}
	args = append(args, opts.Limit, opts.Offset)

	q := buildSelectFiles(folderID == nil, opts.Search != "", opts)
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fs Files
	for rows.Next() {
		f := new(File)

		if err = scanFile(rows, f); err != nil {
			return nil, err
		}

		fs = append(fs, f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&fs), nil
}

func (r *Repository) FetchFileByID(ctx context.Context, userID user.ID, fileID uuid.UUID) (*file.File, error) {
	f := new(File)
	err := scanFile(r.db.QueryRow(ctx, SelectFileByID, fileID, userID), f)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(f), err
}

func (r *Repository) CreateFile(ctx context.Context, userID user.ID, req *file.File) (*file.File, error) {
	f := new(File)

	err := scanFile(r.db.QueryRow(
		ctx,
		InsertFile,
		req.Name, req.OriginalName, string(req.FileType), req.MimeType, req.SizeBytes, req.SizeDisplay,
		req.FolderID, userID,
		req.Relay.FileID, req.Relay.MessageID, req.Relay.FileUniqueID,
		req.Tags, req.Description,
	), f)
	if err != nil {
		return nil, err
	}

	return fromDBModel(f), err
}

func (r *Repository) RenameFile(ctx context.Context, userID user.ID, fileID uuid.UUID, name string) (*file.File, error) {
	f := new(File)

	err := scanFile(r.db.QueryRow(ctx, UpdateFileName, name, fileID, userID), f)
	if err != nil {
		// A foreign row and a missing row look the same from here,
		// which is exactly what the caller is allowed to learn.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(f), err
}

func (r *Repository) SoftDeleteFile(ctx context.Context, userID user.ID, fileID uuid.UUID) error {
	_, err := r.db.Exec(ctx, SoftDeleteFileByID, fileID, userID)
	return err
}

func scanFile(row pgx.Row, f *File) error {
	return row.Scan(
		&f.ID,
		&f.Name,
		&f.OriginalName,
		&f.FileType,
		&f.MimeType,
		&f.SizeBytes,
		&f.SizeDisplay,
		&f.FolderID,
		&f.UserID,

		&f.TelegramFileID,
		&f.TelegramMessageID,
		&f.TelegramFileUniqueID,

		&f.Tags,
		&f.Description,
		&f.IsFavorite,
		&f.IsDeleted,

		&f.CreatedAt,
		&f.UpdatedAt,
		&f.DeletedAt,
	)
}
