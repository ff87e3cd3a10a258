package file

import (
	"fmt"

	domain "file-vault-api/internal/domain/file"
)

const fileColumns = `id, name, original_name, file_type, mime_type, size_bytes, size_display, folder_id, user_id, telegram_file_id, telegram_message_id, telegram_file_unique_id, tags, description, is_favorite, is_deleted, created_at, updated_at, deleted_at`

const (
	SelectFileByID = `
		SELECT ` + fileColumns + `
		FROM files
		WHERE id = $1 AND user_id = $2 AND is_deleted = FALSE
	`
	InsertFile = `
		INSERT INTO files (name, original_name, file_type, mime_type, size_bytes, size_display, folder_id, user_id, telegram_file_id, telegram_message_id, telegram_file_unique_id, tags, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING
		  ` + fileColumns + `
	`
	UpdateFileName = `
		UPDATE files
		SET name = $1
		WHERE id = $2 AND user_id = $3 AND is_deleted = FALSE
		RETURNING
		  ` + fileColumns + `
	`
	SoftDeleteFileByID = `
		UPDATE files
		SET is_deleted = TRUE, deleted_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND user_id = $2 AND is_deleted = FALSE
	`
)

// sortColumns is the whole vocabulary of ORDER BY targets. Anything a
// caller sends has already been squeezed through domain.NormalizeSortField,
// so a miss here is a programming error, not user input.
var sortColumns = map[domain.SortField]string{
	domain.SortByName:      "name",
	domain.SortByCreatedAt: "created_at",
	domain.SortBySizeBytes: "size_bytes",
	domain.SortByFileType:  "file_type",
}

// buildSelectFiles assembles the listing query. The only interpolated pieces
// are column and direction literals taken from fixed tables; every
// caller-supplied value travels as a bind parameter.
func buildSelectFiles(rootScope, withSearch bool, opts domain.ListOptions) string {
	q := `
		SELECT ` + fileColumns + `
		FROM files
		WHERE user_id = $1 AND is_deleted = FALSE`

	arg := 2
	if rootScope {
		q += ` AND folder_id IS NULL`
	} else {
		q += fmt.Sprintf(` AND folder_id = $%d`, arg)
		arg++
	}
	if withSearch {
		q += fmt.Sprintf(` AND (name ILIKE $%d OR description ILIKE $%d)`, arg, arg)
		arg++
	}

	col, ok := sortColumns[opts.SortBy]
	if !ok {
		col = "created_at"
	}
	dir := "DESC"
	if opts.SortOrder == domain.OrderAsc {
		dir = "ASC"
	}
	q += fmt.Sprintf(` ORDER BY %s %s`, col, dir)
	q += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, arg, arg+1)

	return q
}
