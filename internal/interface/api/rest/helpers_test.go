package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	fileDomain "file-vault-api/internal/domain/file"
	folderDomain "file-vault-api/internal/domain/folder"
	userDomain "file-vault-api/internal/domain/user"
	jwtSvc "file-vault-api/internal/infrastructure/jwt"
)

const testSecret = "test-secret"

type FakeFileService struct {
	UploadFunc        func(ctx context.Context, userUUID userDomain.UUID, folderID *uuid.UUID, in *multipart.FileHeader) (*fileDomain.File, error)
	FindFilesFunc     func(ctx context.Context, userUUID userDomain.UUID, folderID *uuid.UUID, opts fileDomain.ListOptions) (fileDomain.Files, error)
	FindFileByIDFunc  func(ctx context.Context, userUUID userDomain.UUID, fileID uuid.UUID) (*fileDomain.File, error)
	RenameFileFunc    func(ctx context.Context, userUUID userDomain.UUID, fileID uuid.UUID, name string) (*fileDomain.File, error)
	DeleteFileFunc    func(ctx context.Context, userUUID userDomain.UUID, fileID uuid.UUID) error
	DownloadLinkFunc  func(ctx context.Context, userUUID userDomain.UUID, fileID uuid.UUID) (string, *fileDomain.File, error)
}

func (f *FakeFileService) Upload(ctx context.Context, userUUID userDomain.UUID, folderID *uuid.UUID, in *multipart.FileHeader) (*fileDomain.File, error) {
	if f.UploadFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UploadFunc(ctx, userUUID, folderID, in)
}
func (f *FakeFileService) FindFiles(ctx context.Context, userUUID userDomain.UUID, folderID *uuid.UUID, opts fileDomain.ListOptions) (fileDomain.Files, error) {
	if f.FindFilesFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindFilesFunc(ctx, userUUID, folderID, opts)
}
func (f *FakeFileService) FindFileByID(ctx context.Context, userUUID userDomain.UUID, fileID uuid.UUID) (*fileDomain.File, error) {
	if f.FindFileByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindFileByIDFunc(ctx, userUUID, fileID)
}
func (f *FakeFileService) RenameFile(ctx context.Context, userUUID userDomain.UUID, fileID uuid.UUID, name string) (*fileDomain.File, error) {
	if f.RenameFileFunc == nil {
		return nil, errors.New("not used")
	}
	return f.RenameFileFunc(ctx, userUUID, fileID, name)
}
func (f *FakeFileService) DeleteFile(ctx context.Context, userUUID userDomain.UUID, fileID uuid.UUID) error {
	if f.DeleteFileFunc == nil {
		return errors.New("not used")
	}
	return f.DeleteFileFunc(ctx, userUUID, fileID)
}
func (f *FakeFileService) DownloadLink(ctx context.Context, userUUID userDomain.UUID, fileID uuid.UUID) (string, *fileDomain.File, error) {
	if f.DownloadLinkFunc == nil {
		return "", nil, errors.New("not used")
	}
	return f.DownloadLinkFunc(ctx, userUUID, fileID)
}

type FakeFolderService struct {
	CreateFolderFunc func(ctx context.Context, userUUID userDomain.UUID, name string, parentID *uuid.UUID) (*folderDomain.Folder, error)
	FindFoldersFunc  func(ctx context.Context, userUUID userDomain.UUID, parentID *uuid.UUID) (folderDomain.Folders, error)
	DeleteFolderFunc func(ctx context.Context, userUUID userDomain.UUID, folderID uuid.UUID) error
}

func (f *FakeFolderService) CreateFolder(ctx context.Context, userUUID userDomain.UUID, name string, parentID *uuid.UUID) (*folderDomain.Folder, error) {
	if f.CreateFolderFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateFolderFunc(ctx, userUUID, name, parentID)
}
func (f *FakeFolderService) FindFolders(ctx context.Context, userUUID userDomain.UUID, parentID *uuid.UUID) (folderDomain.Folders, error) {
	if f.FindFoldersFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindFoldersFunc(ctx, userUUID, parentID)
}
func (f *FakeFolderService) DeleteFolder(ctx context.Context, userUUID userDomain.UUID, folderID uuid.UUID) error {
	if f.DeleteFolderFunc == nil {
		return errors.New("not used")
	}
	return f.DeleteFolderFunc(ctx, userUUID, folderID)
}

type FakeUserService struct {
	GetOrCreateUserFunc func(ctx context.Context, telegramID int64, username, firstName, lastName string) (*userDomain.User, error)
	FindUserByUUIDFunc  func(ctx context.Context, uuid userDomain.UUID) (*userDomain.User, error)
}

func (f *FakeUserService) GetOrCreateUser(ctx context.Context, telegramID int64, username, firstName, lastName string) (*userDomain.User, error) {
	if f.GetOrCreateUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.GetOrCreateUserFunc(ctx, telegramID, username, firstName, lastName)
}
func (f *FakeUserService) FindUserByUUID(ctx context.Context, uuid userDomain.UUID) (*userDomain.User, error) {
	if f.FindUserByUUIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindUserByUUIDFunc(ctx, uuid)
}

type FakeAuthService struct {
	IssueTokenFunc func(u *userDomain.User) (string, error)
}

func (f *FakeAuthService) IssueToken(u *userDomain.User) (string, error) {
	if f.IssueTokenFunc == nil {
		return "", errors.New("not used")
	}
	return f.IssueTokenFunc(u)
}

func newTestRouter(t *testing.T) (*gin.Engine, *jwtSvc.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return gin.New(), jwtSvc.New(testSecret)
}

// signedAuthHeader issues a real token for the given identity so the tests
// exercise the same middleware path production traffic takes.
func signedAuthHeader(t *testing.T, j *jwtSvc.Service, userUUID uuid.UUID) map[string]string {
	t.Helper()
	token, err := j.GenerateJWT(userUUID.String(), 42, time.Hour)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func doReq(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Reader
	switch v := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func doMultipartReq(t *testing.T, r *gin.Engine, path string, fields map[string]string, fileField, fileName string, content []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		part, err := w.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func someDomainFile() *fileDomain.File {
	return &fileDomain.File{
		ID:           uuid.New(),
		Name:         "notes.txt",
		OriginalName: "notes.txt",
		FileType:     fileDomain.TypeDocument,
		MimeType:     "text/plain",
		SizeBytes:    512,
		SizeDisplay:  "512 B",
		Relay:        fileDomain.RelayRef{FileID: "tg-file-id", MessageID: 1001},
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}
