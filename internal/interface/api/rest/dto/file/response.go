package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	File struct {
		ID           uuid.UUID  `json:"id"`
		Name         string     `json:"name"`
		OriginalName string     `json:"original_name"`
		FileType     string     `json:"file_type"`
		MimeType     string     `json:"mime_type"`
		SizeBytes    int64      `json:"size_bytes"`
		SizeDisplay  string     `json:"size_display"`
		FolderID     *uuid.UUID `json:"folder_id"`
		Tags         []string   `json:"tags,omitempty"`
		Description  *string    `json:"description,omitempty"`
		IsFavorite   bool       `json:"is_favorite"`
		CreatedAt    time.Time  `json:"created_at"`
		UpdatedAt    time.Time  `json:"updated_at"`
	}
	Files []File

	ListResponse struct {
		Success bool  `json:"success"`
		Files   Files `json:"files"`
		Count   int   `json:"count"`
	}
	DataResponse struct {
		Success bool   `json:"success"`
		Data    File   `json:"data"`
		Message string `json:"message,omitempty"`
	}
	Download struct {
		DownloadURL string `json:"downloadUrl"`
		File        File   `json:"file"`
	}
	DownloadResponse struct {
		Success bool     `json:"success"`
		Data    Download `json:"data"`
	}

	RenameRequest struct {
		Name string `json:"name"`
	}
)
