package auth

type (
	TokenRequest struct {
		TelegramID int64  `json:"telegramId"`
		Username   string `json:"username"`
		FirstName  string `json:"firstName"`
		LastName   string `json:"lastName"`
	}
	TokenResponse struct {
		Success     bool   `json:"success"`
		AccessToken string `json:"accessToken"`
		TokenType   string `json:"tokenType"`
	}
)
