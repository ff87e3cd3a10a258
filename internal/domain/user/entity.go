package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID   uint64
	UUID = uuid.UUID
	User struct {
		UUID       UUID
		TelegramID int64
		Username   string
		FirstName  string
		LastName   string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)
