package ports

import (
	"file-vault-api/internal/domain/user"
)

type Auth interface {
	IssueToken(u *user.User) (string, error)
}
