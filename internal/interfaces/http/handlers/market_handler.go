package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"halachick.backend/internal/domain/entities"
	domainerrors "halachick.backend/internal/domain/errors"
	"halachick.backend/internal/interfaces/http/middleware"
	"halachick.backend/internal/interfaces/http/response"
	"halachick.backend/internal/usecases"
	"halachick.backend/pkg/utils"
)

// MarketHandler handles marketplace endpoints
type MarketHandler struct {
	marketUsecase *usecases.MarketUsecase
}

// NewMarketHandler creates a new market handler
func NewMarketHandler(marketUsecase *usecases.MarketUsecase) *MarketHandler {
	return &MarketHandler{marketUsecase: marketUsecase}
}

// ListProducts handles GET /market/products?page=&limit=
func (h *MarketHandler) ListProducts(c *gin.Context) {
	var params utils.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	params = utils.GetPaginationParams(params.Page, params.Limit)

	products, err := h.marketUsecase.ListProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	meta := utils.CalculateMeta(int64(len(products)), params.Page, params.Limit)
	if params.Limit > 0 {
		start := params.CalculateOffset()
		if start >= len(products) {
			products = nil
		} else {
			end := start + params.Limit
			if end > len(products) {
				end = len(products)
			}
			products = products[start:end]
		}
	}

	response.Success(c, http.StatusOK, gin.H{"products": products, "pagination": meta})
}

// CreateProduct handles POST /market/products
func (h *MarketHandler) CreateProduct(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	product, err := h.marketUsecase.CreateProduct(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"product": product})
}

// PlaceOrder handles POST /market/orders
func (h *MarketHandler) PlaceOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	order, err := h.marketUsecase.PlaceOrder(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"order": order})
}

// ListMyOrders handles GET /market/orders
func (h *MarketHandler) ListMyOrders(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	orders, err := h.marketUsecase.ListMyOrders(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"orders": orders})
}

// Overview handles GET /admin/market
func (h *MarketHandler) Overview(c *gin.Context) {
	overview, err := h.marketUsecase.Overview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, overview)
}
