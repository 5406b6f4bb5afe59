package comment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/user"
)

// Handler exposes the comment endpoints.
type Handler struct {
	svc *Service
}

// NewHandler wires the comment handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type createRequest struct {
	Text string `json:"text"`
}

// Create handles POST /api/products/:id/comments.
func (h *Handler) Create(c *gin.Context) {
	session, _ := user.CurrentSession(c)
	if session.IsGuest {
		c.JSON(http.StatusForbidden, gin.H{"error": "sign in to comment"})
		return
	}

	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.svc.Create(uint(productID), session.UserID, session.Username, req.Text)
	if err != nil {
		if errors.Is(err, ErrEmptyText) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to create comment"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// List handles GET /api/products/:id/comments.
func (h *Handler) List(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	comments, err := h.svc.ListByProduct(uint(productID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load comments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// Delete handles DELETE /api/products/:id/comments/:commentID.
func (h *Handler) Delete(c *gin.Context) {
	session, _ := user.CurrentSession(c)

	commentID, err := strconv.ParseUint(c.Param("commentID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return
	}

	if err := h.svc.Delete(uint(commentID), session.UserID); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		case errors.Is(err, ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "comment belongs to another user"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to delete comment"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
