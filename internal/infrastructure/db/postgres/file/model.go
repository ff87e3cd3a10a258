package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	File struct {
		ID           uuid.UUID
		Name         string
		OriginalName string
		FileType     string
		MimeType     *string
		SizeBytes    int64
		SizeDisplay  *string
		FolderID     *uuid.UUID
		UserID       uint64

		TelegramFileID       string
		TelegramMessageID    int64
		TelegramFileUniqueID *string

		Tags        []string
		Description *string
		IsFavorite  bool
		IsDeleted   bool

		CreatedAt time.Time
		UpdatedAt time.Time
		DeletedAt *time.Time
	}
	Files []*File
)
