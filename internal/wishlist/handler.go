package wishlist

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/user"
)

// Handler exposes the wishlist endpoints.
type Handler struct {
	svc *Service
}

// NewHandler wires the wishlist handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type addRequest struct {
	ProductID uint `json:"productId"`
}

// Add handles POST /api/wishlist.
func (h *Handler) Add(c *gin.Context) {
	session, _ := user.CurrentSession(c)

	var req addRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	added, err := h.svc.Add(session.UserID, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyInWishlist):
			c.JSON(http.StatusConflict, gin.H{"error": "already in wishlist"})
		case errors.Is(err, ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to add to wishlist"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": fmt.Sprintf("Added %s to wishlist!", added.Name)})
}

// Remove handles DELETE /api/wishlist/:productID.
func (h *Handler) Remove(c *gin.Context) {
	session, _ := user.CurrentSession(c)

	id, err := strconv.ParseUint(c.Param("productID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	if err := h.svc.Remove(session.UserID, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to remove from wishlist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "removed"})
}

// List handles GET /api/wishlist.
func (h *Handler) List(c *gin.Context) {
	session, _ := user.CurrentSession(c)

	products, err := h.svc.List(session.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load wishlist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}
