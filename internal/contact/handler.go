package contact

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/user"
)

// Handler exposes the contact endpoints.
type Handler struct {
	svc *Service
}

// NewHandler wires the contact handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type createRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Create handles POST /api/contacts.
func (h *Handler) Create(c *gin.Context) {
	session, _ := user.CurrentSession(c)

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.svc.Create(session.UserID, req.Name, req.Email)
	if err != nil {
		if errors.Is(err, ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to create contact"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// List handles GET /api/contacts.
func (h *Handler) List(c *gin.Context) {
	session, _ := user.CurrentSession(c)

	contacts, err := h.svc.List(session.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load contacts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}

// Delete handles DELETE /api/contacts/:id.
func (h *Handler) Delete(c *gin.Context) {
	session, _ := user.CurrentSession(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact id"})
		return
	}
	if err := h.svc.Delete(session.UserID, uint(id)); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "contact not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to delete contact"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
