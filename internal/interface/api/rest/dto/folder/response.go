package folder

import (
	"time"

	"github.com/google/uuid"
)

type (
	Folder struct {
		ID        uuid.UUID  `json:"id"`
		Name      string     `json:"name"`
		ParentID  *uuid.UUID `json:"parent_id"`
		CreatedAt time.Time  `json:"created_at"`
		UpdatedAt time.Time  `json:"updated_at"`
	}
	Folders []Folder

	ListResponse struct {
		Success bool    `json:"success"`
		Data    Folders `json:"data"`
		Count   int     `json:"count"`
	}
	DataResponse struct {
		Success bool   `json:"success"`
		Data    Folder `json:"data"`
		Message string `json:"message,omitempty"`
	}

	CreateRequest struct {
		Name     string `json:"name"`
		ParentID string `json:"parentId"`
	}
)
