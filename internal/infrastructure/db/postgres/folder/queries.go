package folder

const (
	SelectFoldersByParent = `
		SELECT id, name, parent_id, user_id, created_at, updated_at
		FROM folders
		WHERE user_id = $1 AND parent_id = $2
		ORDER BY name ASC
	`
	SelectRootFolders = `
		SELECT id, name, parent_id, user_id, created_at, updated_at
		FROM folders
		WHERE user_id = $1 AND parent_id IS NULL
		ORDER BY name ASC
	`
	InsertFolder = `
		INSERT INTO folders (name, parent_id, user_id)
		VALUES ($1, $2, $3)
		RETURNING
		  id, name, parent_id, user_id, created_at, updated_at
	`
	DeleteFolderByID = `
		DELETE FROM folders
		WHERE id = $1 AND user_id = $2
	`
)
