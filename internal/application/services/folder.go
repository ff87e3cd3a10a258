package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"file-vault-api/internal/application/ports"
	domain "file-vault-api/internal/domain/folder"
	"file-vault-api/internal/domain/user"
	"file-vault-api/internal/infrastructure/mq"
)

type FolderService struct {
	folderRepository domain.Repository
	userRepository   user.Repository
	mq               ports.RabbitMQ
	mCounter         *prometheus.CounterVec
}

func NewFolderService(
	folderRepository domain.Repository,
	userRepository user.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.FolderService {
	return &FolderService{
		folderRepository: folderRepository,
		userRepository:   userRepository,
		mq:               mq,
		mCounter:         mCounter,
	}
}

func (fs *FolderService) CreateFolder(ctx context.Context, userUUID user.UUID, name string, parentID *uuid.UUID) (*domain.Folder, error) {
	id, err := fs.userRepository.FetchInternalID(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	f, err := fs.folderRepository.CreateFolder(ctx, id, name, parentID)
	if err != nil {
		return nil, err
	}

	fs.emit(mq.ActionFolderCreated, userUUID, f)
	fs.mCounter.WithLabelValues("folders_created_total").Inc()

	return f, nil
}

func (fs *FolderService) FindFolders(ctx context.Context, userUUID user.UUID, parentID *uuid.UUID) (domain.Folders, error) {
	id, err := fs.userRepository.FetchInternalID(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	return fs.folderRepository.FetchFolders(ctx, id, parentID)
}

// DeleteFolder removes the row and lets the store's cascade rules take the
// descendant folders and files with it. The relay copies of cascaded files
// are left behind; see the migration notes.
func (fs *FolderService) DeleteFolder(ctx context.Context, userUUID user.UUID, folderID uuid.UUID) error {
	id, err := fs.userRepository.FetchInternalID(ctx, userUUID)
	if err != nil {
		return err
	}

	ok, err := fs.folderRepository.DeleteFolder(ctx, id, folderID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrFolderNotFound
	}

	fs.emit(mq.ActionFolderDeleted, userUUID, &domain.Folder{ID: folderID, UserID: id})
	fs.mCounter.WithLabelValues("folders_deleted_total").Inc()

	return nil
}

func (fs *FolderService) emit(action string, userUUID user.UUID, f *domain.Folder) {
	fs.mq.Emit(mq.Event{
		Id:       uuid.New(),
		TS:       time.Now(),
		Action:   action,
		UserUUID: userUUID.String(),
		Payload: folderPayload{
			ID:   f.ID,
			Name: f.Name,
		},
	})
}

type folderPayload struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
