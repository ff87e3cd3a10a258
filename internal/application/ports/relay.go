package ports

import (
	"context"

	"file-vault-api/internal/infrastructure/telegram"
)

// Relay moves file bytes in and out of the external channel. The returned
// reference triple is the only handle the rest of the system keeps.
type Relay interface {
	Store(ctx context.Context, path, originalName string) (*telegram.Upload, error)
	Resolve(ctx context.Context, fileID string) (string, error)
	Purge(ctx context.Context, messageID int64) error
	Notify(ctx context.Context, chatID int64, text string) error
}
