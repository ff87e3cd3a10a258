package file

import (
	domain "file-vault-api/internal/domain/file"
	"file-vault-api/internal/domain/user"
)

func fromDBModel(model *File) *domain.File {
	var f = &domain.File{
		ID:           model.ID,
		Name:         model.Name,
		OriginalName: model.OriginalName,
		FileType:     domain.Type(model.FileType),
		MimeType:     deref(model.MimeType),
		SizeBytes:    model.SizeBytes,
		SizeDisplay:  deref(model.SizeDisplay),
		FolderID:     model.FolderID,
		UserID:       user.ID(model.UserID),

		Relay: domain.RelayRef{
			FileID:       model.TelegramFileID,
			MessageID:    model.TelegramMessageID,
			FileUniqueID: deref(model.TelegramFileUniqueID),
		},

		Tags:        model.Tags,
		Description: model.Description,
		IsFavorite:  model.IsFavorite,
		IsDeleted:   model.IsDeleted,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
		DeletedAt: model.DeletedAt,
	}

	return f
}

func fromDBModels(models *Files) domain.Files {
	fs := make(domain.Files, len(*models))
	for idx, f := range *models {
		fs[idx] = fromDBModel(f)
	}

	return fs
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
