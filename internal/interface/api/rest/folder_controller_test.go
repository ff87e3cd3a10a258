package rest

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"file-vault-api/internal/application/ports"
	"file-vault-api/internal/application/services"
	domain "file-vault-api/internal/domain/folder"
	userDomain "file-vault-api/internal/domain/user"
	folderDB "file-vault-api/internal/infrastructure/db/postgres/folder"
)

func TestFolderController_ListFoldersHandler(t *testing.T) {
	userUUID := uuid.New()
	parentID := uuid.New()

	tests := []struct {
		name       string
		query      string
		mockFS     func() ports.FolderService
		wantStatus int
		wantErr    string
	}{
		{
			name:  "200 root listing",
			query: "",
			mockFS: func() ports.FolderService {
				return &FakeFolderService{
					FindFoldersFunc: func(_ context.Context, gotUUID userDomain.UUID, gotParent *uuid.UUID) (domain.Folders, error) {
						assert.Equal(t, userUUID, gotUUID)
						assert.Nil(t, gotParent)
						return domain.Folders{{ID: uuid.New(), Name: "docs"}}, nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "200 scoped to parent",
			query: "?parentId=" + parentID.String(),
			mockFS: func() ports.FolderService {
				return &FakeFolderService{
					FindFoldersFunc: func(_ context.Context, _ userDomain.UUID, gotParent *uuid.UUID) (domain.Folders, error) {
						require.NotNil(t, gotParent)
						assert.Equal(t, parentID, *gotParent)
						return nil, nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "400 bad parent id",
			query:      "?parentId=not-a-uuid",
			mockFS:     func() ports.FolderService { return &FakeFolderService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "parentId must be a valid UUID",
		},
		{
			name:  "500 service error",
			query: "",
			mockFS: func() ports.FolderService {
				return &FakeFolderService{
					FindFoldersFunc: func(_ context.Context, _ userDomain.UUID, _ *uuid.UUID) (domain.Folders, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to fetch folders",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, j := newTestRouter(t)
			NewFolderController(r, tt.mockFS(), zap.NewNop(), j)

			rr := doReq(t, r, http.MethodGet, RouteFolders+tt.query, nil, signedAuthHeader(t, j, userUUID))
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, decodeJSON(t, rr)["error"])
			}
		})
	}
}

func TestFolderController_CreateFolderHandler(t *testing.T) {
	userUUID := uuid.New()
	parentID := uuid.New()

	tests := []struct {
		name       string
		body       any
		mockFS     func() ports.FolderService
		wantStatus int
		wantErr    string
	}{
		{
			name:       "400 invalid json",
			body:       "{not json",
			mockFS:     func() ports.FolderService { return &FakeFolderService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid json",
		},
		{
			name:       "400 empty name",
			body:       map[string]string{"name": ""},
			mockFS:     func() ports.FolderService { return &FakeFolderService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "folder name is required",
		},
		{
			name:       "400 bad parent id",
			body:       map[string]string{"name": "docs", "parentId": "not-a-uuid"},
			mockFS:     func() ports.FolderService { return &FakeFolderService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "parentId must be a valid UUID",
		},
		{
			name: "409 duplicate name",
			body: map[string]string{"name": "docs"},
			mockFS: func() ports.FolderService {
				return &FakeFolderService{
					CreateFolderFunc: func(_ context.Context, _ userDomain.UUID, _ string, _ *uuid.UUID) (*domain.Folder, error) {
						return nil, folderDB.ErrFolderAlreadyExists
					},
				}
			},
			wantStatus: http.StatusConflict,
			wantErr:    folderDB.ErrFolderAlreadyExists.Error(),
		},
		{
			name: "200 created under parent",
			body: map[string]string{"name": "docs", "parentId": parentID.String()},
			mockFS: func() ports.FolderService {
				return &FakeFolderService{
					CreateFolderFunc: func(_ context.Context, gotUUID userDomain.UUID, name string, gotParent *uuid.UUID) (*domain.Folder, error) {
						assert.Equal(t, userUUID, gotUUID)
						assert.Equal(t, "docs", name)
						require.NotNil(t, gotParent)
						assert.Equal(t, parentID, *gotParent)
						return &domain.Folder{ID: uuid.New(), Name: name, ParentID: gotParent}, nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, j := newTestRouter(t)
			NewFolderController(r, tt.mockFS(), zap.NewNop(), j)

			rr := doReq(t, r, http.MethodPost, RouteFolders, tt.body, signedAuthHeader(t, j, userUUID))
			require.Equal(t, tt.wantStatus, rr.Code)

			resp := decodeJSON(t, rr)
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, resp["error"])
				return
			}
			assert.Equal(t, true, resp["success"])
			assert.Equal(t, "folder created successfully", resp["message"])
		})
	}
}

func TestFolderController_DeleteFolderHandler(t *testing.T) {
	folderID := uuid.New()

	tests := []struct {
		name       string
		folderID   string
		mockFS     func() ports.FolderService
		wantStatus int
		wantErr    string
	}{
		{
			name:       "400 invalid uuid",
			folderID:   "not-a-uuid",
			mockFS:     func() ports.FolderService { return &FakeFolderService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "folder_id must be a valid UUID",
		},
		{
			name:     "404 not found",
			folderID: folderID.String(),
			mockFS: func() ports.FolderService {
				return &FakeFolderService{
					DeleteFolderFunc: func(_ context.Context, _ userDomain.UUID, _ uuid.UUID) error {
						return services.ErrFolderNotFound
					},
				}
			},
			wantStatus: http.StatusNotFound,
			wantErr:    "folder not found",
		},
		{
			name:     "200 deleted",
			folderID: folderID.String(),
			mockFS: func() ports.FolderService {
				return &FakeFolderService{
					DeleteFolderFunc: func(_ context.Context, _ userDomain.UUID, id uuid.UUID) error {
						assert.Equal(t, folderID, id)
						return nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, j := newTestRouter(t)
			NewFolderController(r, tt.mockFS(), zap.NewNop(), j)

			rr := doReq(t, r, http.MethodDelete, RouteFolders+"/"+tt.folderID, nil, signedAuthHeader(t, j, uuid.New()))
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, decodeJSON(t, rr)["error"])
			}
		})
	}
}
