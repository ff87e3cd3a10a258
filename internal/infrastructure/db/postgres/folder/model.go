package folder

import (
	"time"

	"github.com/google/uuid"
)

type (
	Folder struct {
		ID       uuid.UUID
		Name     string
		ParentID *uuid.UUID
		UserID   uint64

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Folders []*Folder
)
