package menu

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

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

func respondMenuError(c *gin.Context, err error) {
	var invalidRef *InvalidItemReferenceError
	var invalid *core.ValidationError
	switch {
	case errors.As(err, &invalidRef):
		c.JSON(http.StatusBadRequest, gin.H{
			"success":          false,
			"error":            "selection references items that do not exist, belong to another vendor, or do not fit their bucket",
			"invalid_item_ids": invalidRef.IDs,
		})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": invalid.Reason})
	case errors.Is(err, ErrDuplicateMenu):
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, ErrCapacityExceeded):
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
	default:
		log.Println("menu:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
	}
}

// --------------------------------------------------
// GET /menus?date=YYYY-MM-DD
// --------------------------------------------------
func (h *Handler) ListMenus(c *gin.Context) {
	vendorID, ok := h.vendorID(c)
	if !ok {
		return
	}

	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid date, use YYYY-MM-DD"})
			return
		}
		date = &parsed
	}

	menus, err := h.service.ListMenus(c.Request.Context(), vendorID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to fetch menus"})
		return
	}

	payloads := make([]*Payload, 0, len(menus))
	for _, m := range menus {
		payloads = append(payloads, m.Payload())
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"menus":   payloads,
	})
}

// --------------------------------------------------
// POST /menus
// --------------------------------------------------
func (h *Handler) CreateMenu(c *gin.Context) {
	vendorID, ok := h.vendorID(c)
	if !ok {
		return
	}

	var req struct {
		Name           string   `json:"name"`
		Date           string   `json:"date"`
		FullDabbaPrice *float64 `json:"full_dabba_price"`
		MaxDabbas      int      `json:"max_dabbas"`
		Capacity       int      `json:"capacity"`
		MainItems      []int    `json:"main_items"`
		SideItems      []int    `json:"side_items"`
		Extras         []int    `json:"extras"`
		TodaysSpecial  string   `json:"todays_special"`
		CookingStyle   string   `json:"cooking_style"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	if req.FullDabbaPrice == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "full_dabba_price is required"})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid date, use YYYY-MM-DD"})
		return
	}

	// capacity is an accepted alias for max_dabbas.
	maxDabbas := req.MaxDabbas
	if maxDabbas == 0 {
		maxDabbas = req.Capacity
	}

	m, err := h.service.CreateMenu(c.Request.Context(), vendorID, CreateMenuInput{
		Name:           req.Name,
		Date:           date,
		FullDabbaPrice: *req.FullDabbaPrice,
		MaxDabbas:      maxDabbas,
		Selection: Selection{
			MainItems: req.MainItems,
			SideItems: req.SideItems,
			Extras:    req.Extras,
		},
		TodaysSpecial: req.TodaysSpecial,
		CookingStyle:  req.CookingStyle,
	})
	if err != nil {
		respondMenuError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"menu":    m.Payload(),
	})
}

// --------------------------------------------------
// PUT /menus/:id/selection
// --------------------------------------------------
func (h *Handler) UpdateSelection(c *gin.Context) {
	vendorID, ok := h.vendorID(c)
	if !ok {
		return
	}

	var menuID int
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &menuID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid menu id"})
		return
	}

	var sel Selection
	if err := c.ShouldBindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	m, err := h.service.UpdateSelection(c.Request.Context(), menuID, vendorID, sel)
	if err != nil {
		respondMenuError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"menu":    m.Payload(),
	})
}

// --------------------------------------------------
// PATCH /menus/:id/active
// --------------------------------------------------
func (h *Handler) SetActive(c *gin.Context) {
	vendorID, ok := h.vendorID(c)
	if !ok {
		return
	}

	var menuID int
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &menuID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid menu id"})
		return
	}

	var req struct {
		IsActive *bool `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "is_active is required"})
		return
	}

	if err := h.service.SetMenuActive(c.Request.Context(), menuID, vendorID, *req.IsActive); err != nil {
		respondMenuError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "menu updated",
	})
}

// --------------------------------------------------
// POST /menus/:id/reserve
// --------------------------------------------------
func (h *Handler) ReserveSlot(c *gin.Context) {
	var menuID int
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &menuID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid menu id"})
		return
	}

	if err := h.service.ReserveSlot(c.Request.Context(), menuID); err != nil {
		respondMenuError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "dabba reserved",
	})
}

// --------------------------------------------------
// POST /menus/:id/release
// --------------------------------------------------
func (h *Handler) ReleaseSlot(c *gin.Context) {
	var menuID int
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &menuID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid menu id"})
		return
	}

	if err := h.service.ReleaseSlot(c.Request.Context(), menuID); err != nil {
		respondMenuError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "dabba released",
	})
}
