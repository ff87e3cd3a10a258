package user

import (
	domain "file-vault-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		UUID:       model.UUID,
		TelegramID: model.TelegramID,
		Username:   deref(model.Username),
		FirstName:  deref(model.FirstName),
		LastName:   deref(model.LastName),

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return u
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
