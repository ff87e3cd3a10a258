package folder

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"file-vault-api/internal/domain/folder"
	"file-vault-api/internal/domain/user"
	"file-vault-api/internal/infrastructure/db/postgres"
)

var ErrFolderAlreadyExists = errors.New("folder with this name already exists here")

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) folder.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchFolders(ctx context.Context, userID user.ID, parentID *uuid.UUID) (folder.Folders, error) {
	var (
		rows pgx.Rows
		err  error
	)
	// The root scope is "parent IS NULL", never a wildcard, so the two
	// shapes are separate prepared statements.
	if parentID == nil {
		rows, err = r.db.Query(ctx, SelectRootFolders, userID)
	} else {
		rows, err = r.db.Query(ctx, SelectFoldersByParent, userID, *parentID)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fs Folders
	for rows.Next() {
		f := new(Folder)

		if err = rows.Scan(
			&f.ID,
			&f.Name,
			&f.ParentID,
			&f.UserID,

			&f.CreatedAt,
			&f.UpdatedAt,
		); err != nil {
			return nil, err
		}

		fs = append(fs, f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&fs), nil
}

func (r *Repository) CreateFolder(ctx context.Context, userID user.ID, name string, parentID *uuid.UUID) (*folder.Folder, error) {
	f := new(Folder)

	err := r.db.QueryRow(
		ctx,
		InsertFolder,
		name, parentID, userID,
	).Scan(
		&f.ID,
		&f.Name,
		&f.ParentID,
		&f.UserID,

		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrFolderAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(f), err
}

// DeleteFolder removes the row; descendant folders and files go with it
// through the ON DELETE CASCADE rules. Returns false when no owned row matched.
func (r *Repository) DeleteFolder(ctx context.Context, userID user.ID, folderID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, DeleteFolderByID, folderID, userID)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
