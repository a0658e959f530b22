package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pos_backend/internal/core/ports/services"
	"github.com/SscSPs/pos_backend/internal/dto"
	"github.com/SscSPs/pos_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// goodsReceiptHandler handles HTTP requests related to goods receipts.
type goodsReceiptHandler struct {
	receiptService portssvc.GoodsReceiptSvcFacade
}

func newGoodsReceiptHandler(rs portssvc.GoodsReceiptSvcFacade) *goodsReceiptHandler {
	return &goodsReceiptHandler{receiptService: rs}
}

// RegisterGoodsReceiptRoutes registers routes related to goods receipts.
func RegisterGoodsReceiptRoutes(rg *gin.RouterGroup, receiptService portssvc.GoodsReceiptSvcFacade) {
	h := newGoodsReceiptHandler(receiptService)

	receipts := rg.Group("/goods-receipts")
	{
		receipts.POST("", h.createGoodsReceipt)
		receipts.GET("", h.listGoodsReceipts)
		receipts.GET("/:receiptID", h.getGoodsReceipt)
	}
}

// createGoodsReceipt godoc
// @Summary Record a goods receipt
// @Description Records goods received from a supplier. Stock of every line is incremented and the product purchase price is overwritten, all atomically.
// @Tags goods-receipts
// @Accept  json
// @Produce  json
// @Param   receipt body dto.CreateGoodsReceiptRequest true "Goods receipt details"
// @Success 201 {object} dto.GoodsReceiptResponse
// @Failure 400 {object} ErrorResponse "Invalid input, validation error or unknown supplier/product"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Concurrent update, retry"
// @Failure 500 {object} ErrorResponse "Failed to create goods receipt"
// @Security BearerAuth
// @Router /goods-receipts [post]
func (h *goodsReceiptHandler) createGoodsReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateGoodsReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateGoodsReceipt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	receipt, err := h.receiptService.CreateGoodsReceipt(c.Request.Context(), actorID, req)
	if err != nil {
		respondServiceError(c, err, http.StatusBadRequest, "Failed to create goods receipt")
		return
	}

	c.JSON(http.StatusCreated, dto.ToGoodsReceiptResponse(receipt))
}

// getGoodsReceipt godoc
// @Summary Get a goods receipt by ID
// @Description Retrieves a goods receipt with its items, supplier and products
// @Tags goods-receipts
// @Produce  json
// @Param   receiptID path string true "Goods receipt ID"
// @Success 200 {object} dto.GoodsReceiptResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Goods receipt not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve goods receipt"
// @Security BearerAuth
// @Router /goods-receipts/{receiptID} [get]
func (h *goodsReceiptHandler) getGoodsReceipt(c *gin.Context) {
	receipt, err := h.receiptService.GetGoodsReceiptByID(c.Request.Context(), c.Param("receiptID"))
	if err != nil {
		respondServiceError(c, err, http.StatusNotFound, "Failed to retrieve goods receipt")
		return
	}
	c.JSON(http.StatusOK, dto.ToGoodsReceiptResponse(receipt))
}

// listGoodsReceipts godoc
// @Summary List goods receipts
// @Description Retrieves goods receipts newest first using token-based pagination
// @Tags goods-receipts
// @Produce  json
// @Param   limit query int false "Number of receipts per page" default(20)
// @Param   nextToken query string false "Token returned by the previous page"
// @Success 200 {object} dto.ListGoodsReceiptsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list goods receipts"
// @Security BearerAuth
// @Router /goods-receipts [get]
func (h *goodsReceiptHandler) listGoodsReceipts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTokenParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListGoodsReceipts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	receipts, nextToken, err := h.receiptService.ListGoodsReceipts(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, http.StatusNotFound, "Failed to list goods receipts")
		return
	}

	c.JSON(http.StatusOK, dto.ToListGoodsReceiptsResponse(receipts, nextToken))
}
