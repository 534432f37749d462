package listing

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func parseDate(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Time{}, true
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid date, use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return parsed, true
}

// --------------------------------------------------
// GET /public/menus?date=YYYY-MM-DD
// --------------------------------------------------
func (h *Handler) ListActiveMenus(c *gin.Context) {
	from, ok := parseDate(c)
	if !ok {
		return
	}

	views, err := h.service.ListActiveMenus(c.Request.Context(), from)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to fetch menus"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(views),
		"menus":   views,
	})
}

// --------------------------------------------------
// GET /public/vendors/:vendorId/menus?date=YYYY-MM-DD
// --------------------------------------------------
func (h *Handler) VendorMenus(c *gin.Context) {
	var vendorID int
	if _, err := fmt.Sscanf(c.Param("vendorId"), "%d", &vendorID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid vendor id"})
		return
	}

	from, ok := parseDate(c)
	if !ok {
		return
	}

	page, err := h.service.VendorMenus(c.Request.Context(), vendorID, from)
	if err != nil {
		if errors.Is(err, ErrVendorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": ErrVendorNotFound.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to fetch menus"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"vendor":  page.Vendor,
		"menus":   page.Menus,
	})
}
