package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"halachick.backend/internal/domain/entities"
	domainerrors "halachick.backend/internal/domain/errors"
	"halachick.backend/internal/interfaces/http/middleware"
	"halachick.backend/internal/interfaces/http/response"
	"halachick.backend/internal/usecases"
)

// InsuranceHandler handles insurance fund and claim endpoints
type InsuranceHandler struct {
	insuranceUsecase *usecases.InsuranceUsecase
}

// NewInsuranceHandler creates a new insurance handler
func NewInsuranceHandler(insuranceUsecase *usecases.InsuranceUsecase) *InsuranceHandler {
	return &InsuranceHandler{insuranceUsecase: insuranceUsecase}
}

// FileClaim handles POST /insurance/claims
func (h *InsuranceHandler) FileClaim(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.FileClaimInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	claim, err := h.insuranceUsecase.FileClaim(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"claim": claim})
}

// ListClaims handles GET /admin/claims
func (h *InsuranceHandler) ListClaims(c *gin.Context) {
	claims, err := h.insuranceUsecase.ListClaims(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"claims": claims})
}

// ReviewClaim handles PATCH /admin/claims
func (h *InsuranceHandler) ReviewClaim(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.ReviewClaimInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	claim, err := h.insuranceUsecase.ReviewClaim(c.Request.Context(), adminID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"claim": claim})
}

// Fund handles GET /admin/insurance-fund
func (h *InsuranceHandler) Fund(c *gin.Context) {
	fund, err := h.insuranceUsecase.FundStatus(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"fund": fund})
}

// Contribute handles POST /admin/insurance-fund/contributions
func (h *InsuranceHandler) Contribute(c *gin.Context) {
	var input entities.FundContribution
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.insuranceUsecase.Contribute(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"contribution": input})
}
