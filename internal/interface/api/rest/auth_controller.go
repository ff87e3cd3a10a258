package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-vault-api/internal/application/ports"
	"file-vault-api/internal/interface/api/rest/dto/auth"
)

type AuthController struct {
	logger      *zap.Logger
	userService ports.UserService
	authService ports.Auth
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	userService ports.UserService,
	authService ports.Auth,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		userService: userService,
		authService: authService,
	}

	r.POST(RouteAuthToken, ac.TokenHandler)

	return ac
}

// TokenHandler exchanges a Telegram identity for a signed token, creating
// the user on first sight. A missing identity is an authentication failure,
// not a validation one.
func (ac *AuthController) TokenHandler(c *gin.Context) {
	var req auth.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"success": false, "error": "invalid json"},
		)
		return
	}

	if req.TelegramID <= 0 {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"success": false, "error": "authentication required", "message": "telegram id not provided"},
		)
		return
	}

	u, err := ac.userService.GetOrCreateUser(c.Request.Context(), req.TelegramID, req.Username, req.FirstName, req.LastName)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"success": false, "error": "authentication failed"},
		)
		ac.logger.Error("GetOrCreateUser() error", zap.Error(err))
		return
	}

	token, err := ac.authService.IssueToken(u)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"success": false, "error": "failed to issue token"},
		)
		ac.logger.Error("IssueToken() error", zap.Error(err), zap.Stringer("user_uuid", u.UUID))
		return
	}

	c.JSON(http.StatusOK, auth.TokenResponse{
		Success:     true,
		AccessToken: token,
		TokenType:   "Bearer",
	})
}
