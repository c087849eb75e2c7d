package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	inventoryapp "github.com/vendas/backend/internal/application/inventory"
)

// StockHandler handles stock control API endpoints. Stock records are
// addressed by product ID since each product has at most one record.
type StockHandler struct {
	BaseHandler
	stockService *inventoryapp.StockService
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(stockService *inventoryapp.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// RegisterRoutes registers stock routes
func (h *StockHandler) RegisterRoutes(rg *gin.RouterGroup) {
	stock := rg.Group("/stock")
	{
		stock.POST("", h.Create)
		stock.GET("", h.List)
		stock.GET("/below-minimum", h.ListBelowMinimum)
		stock.GET("/records/:id", h.GetByID)
		stock.GET("/:productId", h.GetByProduct)
		stock.GET("/:productId/availability", h.CheckAvailability)
		stock.POST("/:productId/increase", h.Increase)
		stock.POST("/:productId/decrease", h.Decrease)
		stock.PUT("/:productId/settings", h.UpdateSettings)
	}
}

// Create opens a stock record for a product
func (h *StockHandler) Create(c *gin.Context) {
	var req inventoryapp.CreateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	record, err := h.stockService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, record)
}

// List returns all stock records, optionally filtered by ?location=
func (h *StockHandler) List(c *gin.Context) {
	var (
		records []inventoryapp.StockResponse
		err     error
	)
	if location := c.Query("location"); location != "" {
		records, err = h.stockService.ListByLocation(c.Request.Context(), location)
	} else {
		records, err = h.stockService.List(c.Request.Context())
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, records)
}

// ListBelowMinimum returns records that fell under their threshold
func (h *StockHandler) ListBelowMinimum(c *gin.Context) {
	records, err := h.stockService.ListBelowMinimum(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, records)
}

// GetByID returns one stock record by its own ID
func (h *StockHandler) GetByID(c *gin.Context) {
	recordID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid stock record ID format")
		return
	}

	record, err := h.stockService.GetByID(c.Request.Context(), recordID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, record)
}

// GetByProduct returns the stock record of a product
func (h *StockHandler) GetByProduct(c *gin.Context) {
	productID, ok := parseUUIDParam(c, "productId")
	if !ok {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	record, err := h.stockService.GetByProduct(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, record)
}

// CheckAvailability reports whether ?quantity= units are on hand
func (h *StockHandler) CheckAvailability(c *gin.Context) {
	productID, ok := parseUUIDParam(c, "productId")
	if !ok {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	quantity, err := strconv.Atoi(c.Query("quantity"))
	if err != nil || quantity <= 0 {
		h.BadRequest(c, "Query parameter 'quantity' must be a positive integer")
		return
	}

	available, err := h.stockService.HasAvailable(c.Request.Context(), productID, quantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"product_id": productID, "quantity": quantity, "available": available})
}

// Increase adds units to a stock record
func (h *StockHandler) Increase(c *gin.Context) {
	productID, ok := parseUUIDParam(c, "productId")
	if !ok {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	var req inventoryapp.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	record, err := h.stockService.Increase(c.Request.Context(), productID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, record)
}

// Decrease removes units from a stock record
func (h *StockHandler) Decrease(c *gin.Context) {
	productID, ok := parseUUIDParam(c, "productId")
	if !ok {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	var req inventoryapp.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	record, err := h.stockService.Decrease(c.Request.Context(), productID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, record)
}

// UpdateSettings changes the threshold and location of a record
func (h *StockHandler) UpdateSettings(c *gin.Context) {
	productID, ok := parseUUIDParam(c, "productId")
	if !ok {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	var req inventoryapp.UpdateStockSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	record, err := h.stockService.UpdateSettings(c.Request.Context(), productID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, record)
}
