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

// InvestmentHandler handles investment endpoints
type InvestmentHandler struct {
	investmentUsecase *usecases.InvestmentUsecase
}

// NewInvestmentHandler creates a new investment handler
func NewInvestmentHandler(investmentUsecase *usecases.InvestmentUsecase) *InvestmentHandler {
	return &InvestmentHandler{investmentUsecase: investmentUsecase}
}

// Create handles POST /investments
func (h *InvestmentHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.CreateInvestmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	investment, err := h.investmentUsecase.CreateInvestment(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"investment": investment})
}

// ListMine handles GET /investments
func (h *InvestmentHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	investments, err := h.investmentUsecase.ListMyInvestments(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"investments": investments})
}

// ListAll handles GET /admin/investments
func (h *InvestmentHandler) ListAll(c *gin.Context) {
	investments, err := h.investmentUsecase.ListInvestments(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"investments": investments})
}

// SetStatus handles PATCH /admin/investments/:id/status
func (h *InvestmentHandler) SetStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid investment id"))
		return
	}

	var input struct {
		Status entities.InvestmentStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	investment, err := h.investmentUsecase.SetStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"investment": investment})
}
