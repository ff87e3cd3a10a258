package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"

	fileDomain "file-vault-api/internal/domain/file"
	folderDomain "file-vault-api/internal/domain/folder"
	"file-vault-api/internal/domain/user"
	"file-vault-api/internal/infrastructure/mq"
	"file-vault-api/internal/infrastructure/telegram"
)

func testCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "filevault_test", Name: "general_counters"},
		[]string{"result"},
	)
}

type FakeUserRepository struct {
	FetchUserByUUIDFunc       func(ctx context.Context, uuid user.UUID) (*user.User, error)
	FetchUserByTelegramIDFunc func(ctx context.Context, telegramID int64) (*user.User, error)
	CreateUserFunc            func(ctx context.Context, req user.User) (*user.User, error)
	FetchInternalIDFunc       func(ctx context.Context, uuid user.UUID) (user.ID, error)
}

func (f *FakeUserRepository) FetchUserByUUID(ctx context.Context, uuid user.UUID) (*user.User, error) {
	return f.FetchUserByUUIDFunc(ctx, uuid)
}
func (f *FakeUserRepository) FetchUserByTelegramID(ctx context.Context, telegramID int64) (*user.User, error) {
	return f.FetchUserByTelegramIDFunc(ctx, telegramID)
}
func (f *FakeUserRepository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	return f.CreateUserFunc(ctx, req)
}
func (f *FakeUserRepository) FetchInternalID(ctx context.Context, uuid user.UUID) (user.ID, error) {
	if f.FetchInternalIDFunc != nil {
		return f.FetchInternalIDFunc(ctx, uuid)
	}
	return user.ID(1), nil
}

type FakeFileRepository struct {
	FetchFilesFunc     func(ctx context.Context, userID user.ID, folderID *uuid.UUID, opts fileDomain.ListOptions) (fileDomain.Files, error)
	FetchFileByIDFunc  func(ctx context.Context, userID user.ID, fileID uuid.UUID) (*fileDomain.File, error)
	CreateFileFunc     func(ctx context.Context, userID user.ID, req *fileDomain.File) (*fileDomain.File, error)
	RenameFileFunc     func(ctx context.Context, userID user.ID, fileID uuid.UUID, name string) (*fileDomain.File, error)
	SoftDeleteFileFunc func(ctx context.Context, userID user.ID, fileID uuid.UUID) error
}

func (f *FakeFileRepository) FetchFiles(ctx context.Context, userID user.ID, folderID *uuid.UUID, opts fileDomain.ListOptions) (fileDomain.Files, error) {
	return f.FetchFilesFunc(ctx, userID, folderID, opts)
}
func (f *FakeFileRepository) FetchFileByID(ctx context.Context, userID user.ID, fileID uuid.UUID) (*fileDomain.File, error) {
	return f.FetchFileByIDFunc(ctx, userID, fileID)
}
func (f *FakeFileRepository) CreateFile(ctx context.Context, userID user.ID, req *fileDomain.File) (*fileDomain.File, error) {
	return f.CreateFileFunc(ctx, userID, req)
}
func (f *FakeFileRepository) RenameFile(ctx context.Context, userID user.ID, fileID uuid.UUID, name string) (*fileDomain.File, error) {
	return f.RenameFileFunc(ctx, userID, fileID, name)
}
func (f *FakeFileRepository) SoftDeleteFile(ctx context.Context, userID user.ID, fileID uuid.UUID) error {
	return f.SoftDeleteFileFunc(ctx, userID, fileID)
}

type FakeFolderRepository struct {
	FetchFoldersFunc func(ctx context.Context, userID user.ID, parentID *uuid.UUID) (folderDomain.Folders, error)
	CreateFolderFunc func(ctx context.Context, userID user.ID, name string, parentID *uuid.UUID) (*folderDomain.Folder, error)
	DeleteFolderFunc func(ctx context.Context, userID user.ID, folderID uuid.UUID) (bool, error)
}

func (f *FakeFolderRepository) FetchFolders(ctx context.Context, userID user.ID, parentID *uuid.UUID) (folderDomain.Folders, error) {
	return f.FetchFoldersFunc(ctx, userID, parentID)
}
func (f *FakeFolderRepository) CreateFolder(ctx context.Context, userID user.ID, name string, parentID *uuid.UUID) (*folderDomain.Folder, error) {
	return f.CreateFolderFunc(ctx, userID, name, parentID)
}
func (f *FakeFolderRepository) DeleteFolder(ctx context.Context, userID user.ID, folderID uuid.UUID) (bool, error) {
	return f.DeleteFolderFunc(ctx, userID, folderID)
}

type FakeRelay struct {
	StoreFunc   func(ctx context.Context, path, originalName string) (*telegram.Upload, error)
	ResolveFunc func(ctx context.Context, fileID string) (string, error)
	PurgeFunc   func(ctx context.Context, messageID int64) error
	NotifyFunc  func(ctx context.Context, chatID int64, text string) error
}

func (f *FakeRelay) Store(ctx context.Context, path, originalName string) (*telegram.Upload, error) {
	return f.StoreFunc(ctx, path, originalName)
}
func (f *FakeRelay) Resolve(ctx context.Context, fileID string) (string, error) {
	return f.ResolveFunc(ctx, fileID)
}
func (f *FakeRelay) Purge(ctx context.Context, messageID int64) error {
	return f.PurgeFunc(ctx, messageID)
}
func (f *FakeRelay) Notify(ctx context.Context, chatID int64, text string) error {
	return f.NotifyFunc(ctx, chatID, text)
}

// FakeMQ records emitted events instead of publishing them.
type FakeMQ struct {
	Events []mq.Event
}

func (f *FakeMQ) Connect(_ context.Context, _ string) error { return nil }
func (f *FakeMQ) Init() error                               { return nil }
func (f *FakeMQ) PublisherWorker(_ context.Context)         {}
func (f *FakeMQ) Emit(e mq.Event)                           { f.Events = append(f.Events, e) }
func (f *FakeMQ) GetInputChan() chan mq.Event               { return nil }
func (f *FakeMQ) GetConn() *amqp091.Connection              { return nil }
