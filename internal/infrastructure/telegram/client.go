package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"file-vault-api/config"
	domain "file-vault-api/internal/domain/file"
)

// Telegram rejects bot uploads above 2 GiB.
const MaxUploadBytes = 2 << 30

var (
	ErrUnavailable = errors.New("relay unavailable")
	ErrNotFound    = errors.New("relay object not found")
)

type (
	// Upload is what the channel reports back after accepting the bytes.
	Upload struct {
		FileID       string
		MessageID    int64
		FileUniqueID string
		FileName     string
		MimeType     string
		SizeBytes    int64
		FileType     domain.Type
	}

	Client struct {
		logger    *zap.Logger
		bot       *tgbotapi.BotAPI
		channelID int64
	}

	caption struct {
		Name       string `json:"name"`
		Size       string `json:"size"`
		UploadedAt string `json:"uploadedAt"`
	}
)

func New(logger *zap.Logger, cfg config.Telegram) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telegram bot: %w", err)
	}

	logger.Info("telegram bot initialized", zap.String("bot", bot.Self.UserName))

	return &Client{
		logger:    logger,
		bot:       bot,
		channelID: cfg.ChannelID,
	}, nil
}

// Store forwards the local copy at path into the channel and deletes it on
// success, leaving the channel as the sole byte-holder.
func (c *Client) Store(ctx context.Context, path, originalName string) (*Upload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	st, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if st.Size() > MaxUploadBytes {
		return nil, fmt.Errorf("%w: payload of %d bytes exceeds the channel limit", ErrUnavailable, st.Size())
	}

	doc := tgbotapi.NewDocument(c.channelID, tgbotapi.FilePath(path))
	doc.Caption = buildCaption(originalName, st.Size(), time.Now().UTC())
	doc.ParseMode = tgbotapi.ModeHTML

	msg, err := c.bot.Send(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if msg.Document == nil {
		return nil, fmt.Errorf("%w: channel did not report a document", ErrUnavailable)
	}

	if err = os.Remove(path); err != nil {
		c.logger.Warn("failed to remove local copy after relay store",
			zap.String("path", path), zap.Error(err))
	}

	mimeType := msg.Document.MimeType
	if mimeType == "" {
		mimeType = mime.TypeByExtension(strings.ToLower(filepath.Ext(originalName)))
	}

	size := int64(msg.Document.FileSize)
	if size == 0 {
		size = st.Size()
	}

	return &Upload{
		FileID:       msg.Document.FileID,
		MessageID:    int64(msg.MessageID),
		FileUniqueID: msg.Document.FileUniqueID,
		FileName:     msg.Document.FileName,
		MimeType:     mimeType,
		SizeBytes:    size,
		FileType:     ClassifyFile(originalName, mimeType),
	}, nil
}

// Resolve returns a direct download URL. The URL embeds the bot token and is
// only valid for about an hour on Telegram's side.
func (c *Client) Resolve(ctx context.Context, fileID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	url, err := c.bot.GetFileDirectURL(fileID)
	if err != nil {
		if isBadRequest(err) {
			return "", fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return url, nil
}

// Purge removes the message holding the bytes. An already-removed message
// counts as success, so two racing deletes are both happy.
func (c *Client) Purge(ctx context.Context, messageID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	del := tgbotapi.NewDeleteMessage(c.channelID, int(messageID))
	if _, err := c.bot.Request(del); err != nil {
		if strings.Contains(err.Error(), "message to delete not found") {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return nil
}

// Notify sends a plain text message to a user chat.
func (c *Client) Notify(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := c.bot.Send(msg); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return nil
}

func buildCaption(name string, size int64, uploadedAt time.Time) string {
	b, err := json.Marshal(caption{
		Name:       name,
		Size:       FormatSize(size),
		UploadedAt: uploadedAt.Format(time.RFC3339),
	})
	if err != nil {
		return name
	}

	return "\U0001F4CA " + string(b)
}

func isBadRequest(err error) bool {
	return strings.Contains(err.Error(), "Bad Request")
}
