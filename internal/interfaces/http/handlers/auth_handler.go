package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"halachick.backend/internal/domain/entities"
	domainerrors "halachick.backend/internal/domain/errors"
	"halachick.backend/internal/interfaces/http/middleware"
	"halachick.backend/internal/interfaces/http/response"
	"halachick.backend/internal/usecases"
	"halachick.backend/pkg/jwt"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
	jwtService  *jwt.JWTService
	secure      bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase, jwtService *jwt.JWTService, secure bool) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		jwtService:  jwtService,
		secure:      secure,
	}
}

func (h *AuthHandler) setAuthCookie(c *gin.Context, token string) {
	maxAge := int(h.jwtService.Expiry().Seconds())
	c.SetCookie(middleware.AuthCookieName, token, maxAge, "/", "", h.secure, true)
}

func (h *AuthHandler) clearAuthCookie(c *gin.Context) {
	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", h.secure, true)
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.authUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setAuthCookie(c, resp.Token)
	response.Success(c, http.StatusCreated, resp)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setAuthCookie(c, resp.Token)
	response.Success(c, http.StatusOK, resp)
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := middleware.ExtractToken(c); token != "" {
		if err := h.authUsecase.Logout(c.Request.Context(), token); err != nil {
			response.Error(c, err)
			return
		}
	}

	h.clearAuthCookie(c)
	response.Success(c, http.StatusOK, gin.H{"message": "logged out"})
}

// Me handles GET /auth/me. An unauthenticated caller gets 200 with a
// "not logged in" body rather than 401, so the frontend can probe the
// session without triggering error handling.
func (h *AuthHandler) Me(c *gin.Context) {
	token := middleware.ExtractToken(c)
	if token == "" {
		response.Success(c, http.StatusOK, gin.H{"message": "not logged in"})
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		response.Success(c, http.StatusOK, gin.H{"message": "not logged in"})
		return
	}

	user, err := h.authUsecase.Me(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Success(c, http.StatusOK, gin.H{"message": "not logged in"})
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// SendVerification handles POST /auth/send-verification
func (h *AuthHandler) SendVerification(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	if err := h.authUsecase.SendVerificationEmail(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "verification email sent"})
}

// VerifyEmail handles GET /auth/verify-email?token=...
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, domainerrors.BadRequest("token is required"))
		return
	}

	user, err := h.authUsecase.VerifyEmail(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "email verified", "user": user})
}
