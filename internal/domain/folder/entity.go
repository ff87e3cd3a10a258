package folder

import (
	"time"

	"github.com/google/uuid"

	"file-vault-api/internal/domain/user"
)

type (
	Folder struct {
		ID       uuid.UUID
		Name     string
		ParentID *uuid.UUID
		UserID   user.ID

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Folders []*Folder
)
