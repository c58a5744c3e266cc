package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daniellfalcao/dark-blue-parrot-server/internal/auth/dto"
	"github.com/daniellfalcao/dark-blue-parrot-server/internal/auth/usecase"
	"github.com/daniellfalcao/dark-blue-parrot-server/pkg/apperror"
	"github.com/daniellfalcao/dark-blue-parrot-server/pkg/logger"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.authUsecase.SignIn(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SignOut is deliberately a no-op: tokens are stateless and stay valid until
// they expire. The gate still requires a verified identity to call it.
func (h *AuthHandler) SignOut(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{})
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.authUsecase.SignUp(&req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

func (h *AuthHandler) CheckUsernameAvailability(c *gin.Context) {
	var req dto.CheckUsernameAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	available, err := h.authUsecase.CheckUsernameAvailability(req.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CheckUsernameAvailabilityResponse{IsAvailable: available})
}

func respondError(c *gin.Context, err error) {
	status := apperror.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Log.WithError(err).Error("auth handler failed")
	}
	c.JSON(status, gin.H{"error": apperror.Message(err)})
}
