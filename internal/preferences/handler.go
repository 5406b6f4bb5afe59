package preferences

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/user"
)

// Handler exposes the preference endpoints.
type Handler struct {
	svc *Service
}

// NewHandler wires the preferences handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Get handles GET /api/preferences. The palette catalog rides along so
// the client can render swatches without a second call.
func (h *Handler) Get(c *gin.Context) {
	session, _ := user.CurrentSession(c)

	prefs, err := h.svc.Get(session)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load preferences"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"preferences": prefs,
		"palettes":    Palettes(),
	})
}

// Update handles PUT /api/preferences.
func (h *Handler) Update(c *gin.Context) {
	session, _ := user.CurrentSession(c)

	var prefs Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.svc.Update(session, prefs); err != nil {
		if errors.Is(err, ErrUnknownPalette) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown palette"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to save preferences"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}
