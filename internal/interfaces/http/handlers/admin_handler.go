package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"halachick.backend/internal/domain/entities"
	domainerrors "halachick.backend/internal/domain/errors"
	"halachick.backend/internal/interfaces/http/response"
	"halachick.backend/internal/usecases"
)

// AdminHandler handles admin dashboard and user management endpoints
type AdminHandler struct {
	adminUsecase *usecases.AdminUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUsecase *usecases.AdminUsecase) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase}
}

// Stats handles GET /admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminUsecase.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// Analytics handles GET /admin/analytics
func (h *AdminHandler) Analytics(c *gin.Context) {
	analytics, err := h.adminUsecase.Analytics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, analytics)
}

// ListUsers handles GET /admin/users?search=...
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminUsecase.ListUsers(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users})
}

// GetUser handles GET /admin/users/:id
func (h *AdminHandler) GetUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user id"))
		return
	}

	user, err := h.adminUsecase.GetUser(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// UpdateUser handles PATCH /admin/users/:id
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user id"))
		return
	}

	var input entities.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.adminUsecase.UpdateUser(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// DeleteUser handles DELETE /admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user id"))
		return
	}

	if err := h.adminUsecase.DeleteUser(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "user deleted"})
}

// NotifyUser handles POST /admin/users/:id/notify
func (h *AdminHandler) NotifyUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user id"))
		return
	}

	var input struct {
		Subject string `json:"subject" binding:"required"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.adminUsecase.NotifyUser(c.Request.Context(), id, input.Subject, input.Message); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "notification sent"})
}

// GetSettings handles GET /admin/settings
func (h *AdminHandler) GetSettings(c *gin.Context) {
	settings, err := h.adminUsecase.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"settings": settings})
}

// SaveSetting handles PUT /admin/settings
func (h *AdminHandler) SaveSetting(c *gin.Context) {
	var input entities.SaveSettingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.adminUsecase.SaveSetting(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "setting saved"})
}
