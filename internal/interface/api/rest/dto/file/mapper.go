package file

import (
	"file-vault-api/internal/domain/file"
)

func ToResponseFile(fDomain file.File) File {
	var f = File{
		ID:           fDomain.ID,
		Name:         fDomain.Name,
		OriginalName: fDomain.OriginalName,
		FileType:     string(fDomain.FileType),
		MimeType:     fDomain.MimeType,
		SizeBytes:    fDomain.SizeBytes,
		SizeDisplay:  fDomain.SizeDisplay,
		FolderID:     fDomain.FolderID,
		Tags:         fDomain.Tags,
		Description:  fDomain.Description,
		IsFavorite:   fDomain.IsFavorite,
		CreatedAt:    fDomain.CreatedAt,
		UpdatedAt:    fDomain.UpdatedAt,
	}

	return f
}

func ToResponseFiles(fsDomain file.Files) Files {
	fs := make(Files, len(fsDomain))
	for idx, f := range fsDomain {
		fs[idx] = ToResponseFile(*f)
	}

	return fs
}
