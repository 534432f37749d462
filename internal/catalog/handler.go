package catalog

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"tiffinwala/internal/core"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	vendors core.VendorReader
}

func NewHandler(service *Service, vendors core.VendorReader) *Handler {
	return &Handler{service: service, vendors: vendors}
}

func (h *Handler) vendorID(c *gin.Context) (int, bool) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "unauthorized"})
		return 0, false
	}

	vendorID, err := h.vendors.VendorIDForUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "vendor profile not found"})
		return 0, false
	}

	return vendorID, true
}

// --------------------------------------------------
// GET /items
// --------------------------------------------------
func (h *Handler) ListItems(c *gin.Context) {
	vendorID, ok := h.vendorID(c)
	if !ok {
		return
	}

	var availableOnly *bool
	if v, exists := c.GetQuery("available"); exists {
		b := v == "true"
		availableOnly = &b
	}

	items, err := h.service.ListItems(c.Request.Context(), vendorID, availableOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to fetch menu items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"menu_items": items,
	})
}

// --------------------------------------------------
// POST /items
// --------------------------------------------------
func (h *Handler) CreateItem(c *gin.Context) {
	vendorID, ok := h.vendorID(c)
	if !ok {
		return
	}

	var req struct {
		Name             string   `json:"name"`
		Category         Category `json:"category"`
		Price            *float64 `json:"price"`
		IsVegetarian     *bool    `json:"is_vegetarian"`
		IsSpicy          *bool    `json:"is_spicy"`
		IsAvailableToday *bool    `json:"is_available_today"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	if req.Price == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "price is required"})
		return
	}

	item, err := h.service.CreateItem(c.Request.Context(), vendorID, CreateItemInput{
		Name:             req.Name,
		Category:         req.Category,
		Price:            *req.Price,
		IsVegetarian:     req.IsVegetarian,
		IsSpicy:          req.IsSpicy,
		IsAvailableToday: req.IsAvailableToday,
	})
	if err != nil {
		var invalid *core.ValidationError
		switch {
		case errors.Is(err, ErrDuplicateName):
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
		case errors.As(err, &invalid):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": invalid.Reason})
		default:
			log.Println("catalog:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"menu_item": item,
	})
}

// --------------------------------------------------
// PATCH /items/:id/availability
// --------------------------------------------------
func (h *Handler) SetAvailability(c *gin.Context) {
	vendorID, ok := h.vendorID(c)
	if !ok {
		return
	}

	var itemID int
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &itemID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid item id"})
		return
	}

	var req struct {
		IsAvailableToday *bool `json:"is_available_today"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.IsAvailableToday == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "is_available_today is required"})
		return
	}

	err := h.service.SetAvailability(c.Request.Context(), itemID, vendorID, *req.IsAvailableToday)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to update item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "availability updated",
	})
}
