package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	tradeapp "github.com/vendas/backend/internal/application/trade"
	"github.com/vendas/backend/internal/domain/trade"
)

// SaleHandler handles sale lifecycle API endpoints
type SaleHandler struct {
	BaseHandler
	saleService *tradeapp.SaleService
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(saleService *tradeapp.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// RegisterRoutes registers sale routes
func (h *SaleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sales := rg.Group("/sales")
	{
		sales.POST("", h.Create)
		sales.GET("", h.List)
		sales.GET("/total", h.TotalByPeriod)
		sales.GET("/:id", h.GetByID)
		sales.POST("/:id/items", h.AddItem)
		sales.PUT("/:id/items/:itemId", h.UpdateItemQuantity)
		sales.DELETE("/:id/items/:itemId", h.RemoveItem)
		sales.PUT("/:id/note", h.UpdateNote)
		sales.POST("/:id/confirm", h.Confirm)
		sales.POST("/:id/cancel", h.Cancel)
	}
}

// Create opens a new sale, optionally with initial items
func (h *SaleHandler) Create(c *gin.Context) {
	var req tradeapp.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sale, err := h.saleService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, sale)
}

// List returns sales. Supports filtering by ?status=, ?customer_id= or
// a ?from=&to= date range (YYYY-MM-DD); filters are mutually exclusive
// and checked in that order.
func (h *SaleHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if status := c.Query("status"); status != "" {
		sales, err := h.saleService.ListByStatus(ctx, trade.SaleStatus(strings.ToUpper(status)))
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, sales)
		return
	}

	if rawCustomerID := c.Query("customer_id"); rawCustomerID != "" {
		customerID, ok := parseUUIDQuery(rawCustomerID)
		if !ok {
			h.BadRequest(c, "Invalid customer ID format")
			return
		}
		sales, err := h.saleService.ListByCustomer(ctx, customerID)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, sales)
		return
	}

	if c.Query("from") != "" || c.Query("to") != "" {
		from, to, ok := parsePeriod(c)
		if !ok {
			h.BadRequest(c, "Parameters 'from' and 'to' must both be dates in YYYY-MM-DD format")
			return
		}
		sales, err := h.saleService.ListByPeriod(ctx, from, to)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, sales)
		return
	}

	sales, err := h.saleService.List(ctx)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sales)
}

// TotalByPeriod returns the confirmed revenue within ?from=&to=
func (h *SaleHandler) TotalByPeriod(c *gin.Context) {
	from, to, ok := parsePeriod(c)
	if !ok {
		h.BadRequest(c, "Parameters 'from' and 'to' must both be dates in YYYY-MM-DD format")
		return
	}

	total, err := h.saleService.TotalByPeriod(c.Request.Context(), from, to)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, total)
}

// GetByID returns one sale with its items
func (h *SaleHandler) GetByID(c *gin.Context) {
	saleID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid sale ID format")
		return
	}

	sale, err := h.saleService.GetByID(c.Request.Context(), saleID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sale)
}

// AddItem adds a product line to a pending sale
func (h *SaleHandler) AddItem(c *gin.Context) {
	saleID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid sale ID format")
		return
	}

	var req tradeapp.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sale, err := h.saleService.AddItem(c.Request.Context(), saleID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sale)
}

// UpdateItemQuantity replaces the quantity of one line
func (h *SaleHandler) UpdateItemQuantity(c *gin.Context) {
	saleID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid sale ID format")
		return
	}
	itemID, ok := parseUUIDParam(c, "itemId")
	if !ok {
		h.BadRequest(c, "Invalid item ID format")
		return
	}

	var req tradeapp.UpdateItemQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sale, err := h.saleService.UpdateItemQuantity(c.Request.Context(), saleID, itemID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sale)
}

// RemoveItem drops one line from a pending sale
func (h *SaleHandler) RemoveItem(c *gin.Context) {
	saleID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid sale ID format")
		return
	}
	itemID, ok := parseUUIDParam(c, "itemId")
	if !ok {
		h.BadRequest(c, "Invalid item ID format")
		return
	}

	sale, err := h.saleService.RemoveItem(c.Request.Context(), saleID, itemID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sale)
}

// UpdateNote replaces the sale note; a blank note clears it
func (h *SaleHandler) UpdateNote(c *gin.Context) {
	saleID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid sale ID format")
		return
	}

	var req tradeapp.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sale, err := h.saleService.UpdateNote(c.Request.Context(), saleID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sale)
}

// Confirm closes a sale with a payment method and decrements stock
func (h *SaleHandler) Confirm(c *gin.Context) {
	saleID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid sale ID format")
		return
	}

	var req tradeapp.ConfirmSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sale, err := h.saleService.Confirm(c.Request.Context(), saleID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sale)
}

// Cancel cancels a sale; a confirmed sale has its stock put back
func (h *SaleHandler) Cancel(c *gin.Context) {
	saleID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid sale ID format")
		return
	}

	sale, err := h.saleService.Cancel(c.Request.Context(), saleID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sale)
}

// parsePeriod reads the from/to date range query parameters. The range
// is inclusive: "to" is extended to the end of its day.
func parsePeriod(c *gin.Context) (time.Time, time.Time, bool) {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return from, to.Add(24*time.Hour - time.Nanosecond), true
}
