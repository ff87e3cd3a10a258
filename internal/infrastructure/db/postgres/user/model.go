package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID   uint64
	User struct {
		ID         uint64
		UUID       uuid.UUID
		TelegramID int64
		Username   *string
		FirstName  *string
		LastName   *string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)
