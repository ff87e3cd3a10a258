package folder

import (
	"file-vault-api/internal/domain/folder"
)

func ToResponseFolder(fDomain folder.Folder) Folder {
	var f = Folder{
		ID:        fDomain.ID,
		Name:      fDomain.Name,
		ParentID:  fDomain.ParentID,
		CreatedAt: fDomain.CreatedAt,
		UpdatedAt: fDomain.UpdatedAt,
	}

	return f
}

func ToResponseFolders(fsDomain folder.Folders) Folders {
	fs := make(Folders, len(fsDomain))
	for idx, f := range fsDomain {
		fs[idx] = ToResponseFolder(*f)
	}

	return fs
}
