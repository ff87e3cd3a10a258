package file

import (
	"time"

	"github.com/google/uuid"

	"file-vault-api/internal/domain/user"
)

// Type is the coarse classification stored alongside the MIME type.
type Type string

const (
	TypeImage    Type = "image"
	TypeVideo    Type = "video"
	TypeAudio    Type = "audio"
	TypePDF      Type = "pdf"
	TypeDocument Type = "document"
	TypeCode     Type = "code"
	TypeArchive  Type = "archive"
)

type (
	// RelayRef is the triple identifying the bytes held by the Telegram channel.
	// The metadata store never holds the bytes themselves.
	RelayRef struct {
		FileID       string
		MessageID    int64
		FileUniqueID string
	}

	File struct {
		ID           uuid.UUID
		Name         string
		OriginalName string
		FileType     Type
		MimeType     string
		SizeBytes    int64
		SizeDisplay  string
		FolderID     *uuid.UUID
		UserID       user.ID
		Relay        RelayRef
		Tags         []string
		Description  *string
		IsFavorite   bool
		IsDeleted    bool

		CreatedAt time.Time
		UpdatedAt time.Time
		DeletedAt *time.Time
	}
	Files []*File
)
