package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"file-vault-api/internal/application/ports"
	domain "file-vault-api/internal/domain/file"
	"file-vault-api/internal/domain/user"
	"file-vault-api/internal/infrastructure/mq"
	"file-vault-api/internal/infrastructure/telegram"
)

type FileService struct {
	relay          ports.Relay
	fileRepository domain.Repository
	userRepository user.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
	spoolDir       string
}

func NewFileService(
	relay ports.Relay,
	fileRepository domain.Repository,
	userRepository user.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
	spoolDir string,
) ports.FileService {
	return &FileService{
		relay:          relay,
		fileRepository: fileRepository,
		userRepository: userRepository,
		mq:             mq,
		mCounter:       mCounter,
		spoolDir:       spoolDir,
	}
}

// Upload is the sequential pipeline: spool to disk, forward to the relay,
// persist the row. The relay owns the bytes once Store succeeds; a failed
// insert after that leaves an orphaned channel object by design.
func (fs *FileService) Upload(
	ctx context.Context,
	userUUID user.UUID,
	folderID *uuid.UUID,
	in *multipart.FileHeader,
) (*domain.File, error) {
	id, err := fs.userRepository.FetchInternalID(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	spooled, err := fs.spool(in)
	if err != nil {
		return nil, err
	}

	up, err := fs.relay.Store(ctx, spooled, in.Filename)
	if err != nil {
		// Store only deletes the spool copy on success.
		_ = os.Remove(spooled)
		return nil, err
	}

	f := &domain.File{
		Name:         in.Filename,
		OriginalName: in.Filename,
		FileType:     up.FileType,
		MimeType:     up.MimeType,
		SizeBytes:    up.SizeBytes,
		SizeDisplay:  telegram.FormatSize(up.SizeBytes),
		FolderID:     folderID,
		Relay: domain.RelayRef{
			FileID:       up.FileID,
			MessageID:    up.MessageID,
			FileUniqueID: up.FileUniqueID,
		},
	}

	out, err := fs.fileRepository.CreateFile(ctx, id, f)
	if err != nil {
		return nil, err
	}

	fs.emit(mq.ActionFileUploaded, userUUID, out)
	fs.mCounter.WithLabelValues("files_uploaded_total").Inc()

	return out, nil
}

func (fs *FileService) FindFiles(
	ctx context.Context,
	userUUID user.UUID,
	folderID *uuid.UUID,
	opts domain.ListOptions,
) (domain.Files, error) {
	id, err := fs.userRepository.FetchInternalID(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	fls, err := fs.fileRepository.FetchFiles(ctx, id, folderID, opts.WithDefaults())
	if err != nil {
		return nil, err
	}

	return fls, nil
}

func (fs *FileService) FindFileByID(ctx context.Context, userUUID user.UUID, fileID uuid.UUID) (*domain.File, error) {
	id, err := fs.userRepository.FetchInternalID(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	return fs.fileRepository.FetchFileByID(ctx, id, fileID)
}

func (fs *FileService) RenameFile(ctx context.Context, userUUID user.UUID, fileID uuid.UUID, name string) (*domain.File, error) {
	id, err := fs.userRepository.FetchInternalID(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	out, err := fs.fileRepository.RenameFile(ctx, id, fileID, name)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nil
	}

	fs.emit(mq.ActionFileRenamed, userUUID, out)
	fs.mCounter.WithLabelValues("files_renamed_total").Inc()

	return out, nil
}

// DeleteFile purges the relay copy first and only then flips the flag, so a
// failed purge never leaves a soft-deleted row pointing at live bytes.
func (fs *FileService) DeleteFile(ctx context.Context, userUUID user.UUID, fileID uuid.UUID) error {
	id, err := fs.userRepository.FetchInternalID(ctx, userUUID)
	if err != nil {
		return err
	}

	f, err := fs.fileRepository.FetchFileByID(ctx, id, fileID)
	if err != nil {
		return err
	}
	if f == nil {
		return ErrFileNotFound
	}

	if err = fs.relay.Purge(ctx, f.Relay.MessageID); err != nil {
		return err
	}

	if err = fs.fileRepository.SoftDeleteFile(ctx, id, fileID); err != nil {
		return err
	}

	fs.emit(mq.ActionFileDeleted, userUUID, f)
	fs.mCounter.WithLabelValues("files_deleted_total").Inc()

	return nil
}

func (fs *FileService) DownloadLink(ctx context.Context, userUUID user.UUID, fileID uuid.UUID) (string, *domain.File, error) {
	id, err := fs.userRepository.FetchInternalID(ctx, userUUID)
	if err != nil {
		return "", nil, err
	}

	f, err := fs.fileRepository.FetchFileByID(ctx, id, fileID)
	if err != nil {
		return "", nil, err
	}
	if f == nil {
		return "", nil, ErrFileNotFound
	}

	url, err := fs.relay.Resolve(ctx, f.Relay.FileID)
	if err != nil {
		return "", nil, err
	}

	return url, f, nil
}

// spool writes the multipart part to the local spool directory and returns
// the path. The name mirrors what the original upload middleware produced:
// a unique prefix plus a sanitized client filename.
func (fs *FileService) spool(in *multipart.FileHeader) (string, error) {
	src, err := in.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err = os.MkdirAll(fs.spoolDir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixNano(), sanitizeFileName(in.Filename))
	dst, err := os.Create(filepath.Join(fs.spoolDir, name))
	if err != nil {
		return "", err
	}

	if _, err = io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(dst.Name())
		return "", err
	}
	if err = dst.Close(); err != nil {
		_ = os.Remove(dst.Name())
		return "", err
	}

	return dst.Name(), nil
}

func (fs *FileService) emit(action string, userUUID user.UUID, f *domain.File) {
	fs.mq.Emit(mq.Event{
		Id:       uuid.New(),
		TS:       time.Now(),
		Action:   action,
		UserUUID: userUUID.String(),
		Payload: filePayload{
			ID:          f.ID,
			Name:        f.Name,
			FileType:    string(f.FileType),
			SizeDisplay: f.SizeDisplay,
		},
	})
}

type filePayload struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	FileType    string    `json:"file_type"`
	SizeDisplay string    `json:"size_display"`
}
