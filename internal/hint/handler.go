package hint

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/user"
)

// Handler exposes the hint endpoints.
type Handler struct {
	svc *Service
}

// NewHandler wires the hint handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type dispatchRequest struct {
	ProductID  uint   `json:"productId"`
	ContactIDs []uint `json:"contactIds"`
}

// Dispatch handles POST /api/hints.
func (h *Handler) Dispatch(c *gin.Context) {
	session, _ := user.CurrentSession(c)

	var req dispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	outcomes, err := h.svc.Dispatch(c.Request.Context(), session, req.ProductID, req.ContactIDs)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoRecipients):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to send hints"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": outcomes})
}

// History handles GET /api/hints.
func (h *Handler) History(c *gin.Context) {
	session, _ := user.CurrentSession(c)

	hints, err := h.svc.History(session.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load hint history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hints": hints})
}
