package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"halachick.backend/internal/domain/entities"
	domainerrors "halachick.backend/internal/domain/errors"
	"halachick.backend/internal/interfaces/http/middleware"
	"halachick.backend/internal/interfaces/http/response"
	"halachick.backend/internal/usecases"
)

// FarmHandler handles farm endpoints
type FarmHandler struct {
	farmUsecase *usecases.FarmUsecase
}

// NewFarmHandler creates a new farm handler
func NewFarmHandler(farmUsecase *usecases.FarmUsecase) *FarmHandler {
	return &FarmHandler{farmUsecase: farmUsecase}
}

// Create handles POST /farms
func (h *FarmHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.CreateFarmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	farm, err := h.farmUsecase.CreateFarm(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"farm": farm})
}

// List handles GET /farms
func (h *FarmHandler) List(c *gin.Context) {
	farms, err := h.farmUsecase.ListFarms(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"farms": farms})
}

// Get handles GET /farms/:id
func (h *FarmHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid farm id"))
		return
	}

	farm, err := h.farmUsecase.GetFarm(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"farm": farm})
}

// ListMine handles GET /farms/my
func (h *FarmHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	farms, err := h.farmUsecase.ListMyFarms(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"farms": farms})
}

// Review handles PATCH /admin/farms/:id/verification
func (h *FarmHandler) Review(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	farmID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid farm id"))
		return
	}

	var input entities.ReviewFarmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	farm, err := h.farmUsecase.ReviewFarm(c.Request.Context(), adminID, farmID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"farm": farm})
}
