package ports

import (
	"context"

	"file-vault-api/internal/domain/user"
)

type UserService interface {
	GetOrCreateUser(ctx context.Context, telegramID int64, username, firstName, lastName string) (*user.User, error)
	FindUserByUUID(ctx context.Context, uuid user.UUID) (*user.User, error)
}
