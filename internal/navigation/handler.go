package navigation

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lydiaandcrim/wyshdrop-backend/internal/preferences"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/sound"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/user"
)

// Handler exposes the per-session UI state endpoints. Sessions without
// a token still get a controller, keyed by client address, so the
// signed-out pages work.
type Handler struct {
	svc   *Service
	prefs *preferences.Service
}

// NewHandler wires the navigation handler.
func NewHandler(svc *Service, prefs *preferences.Service) *Handler {
	return &Handler{svc: svc, prefs: prefs}
}

func (h *Handler) sessionKey(c *gin.Context) (string, *user.Session) {
	if session, ok := user.CurrentSession(c); ok {
		return session.UserID, session
	}
	return "anon:" + c.ClientIP(), nil
}

// cues lists the sound events the client should render, honoring the
// session's sound switches.
func (h *Handler) cues(session *user.Session, key string, events ...sound.Event) []string {
	prefSession := session
	if prefSession == nil {
		prefSession = &user.Session{UserID: key, IsGuest: true}
	}
	prefs, err := h.prefs.Get(prefSession)
	if err != nil {
		return nil
	}

	var out []string
	for _, e := range events {
		if sound.ShouldPlay(prefs.Sound, e) {
			out = append(out, string(e))
		}
	}
	return out
}

func respond(c *gin.Context, snap Snapshot, sounds []string, message string) {
	body := gin.H{"state": snap, "sounds": sounds}
	if message != "" {
		body["message"] = message
	}
	c.JSON(http.StatusOK, body)
}

// State handles GET /api/ui/state.
func (h *Handler) State(c *gin.Context) {
	key, session := h.sessionKey(c)
	snap := h.svc.ControllerFor(key, session).State()
	respond(c, snap, nil, "")
}

type navigateRequest struct {
	Page    Page `json:"page"`
	DelayMs int  `json:"delayMs"`
}

// Navigate handles POST /api/ui/navigate. A positive delay schedules
// the change; a navigation arriving before the delay elapses wins.
func (h *Handler) Navigate(c *gin.Context) {
	key, session := h.sessionKey(c)

	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil || !ValidPage(req.Page) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
		return
	}

	ctl := h.svc.ControllerFor(key, session)
	var snap Snapshot
	if req.DelayMs > 0 {
		snap = ctl.TransitionThenNavigate(req.Page, time.Duration(req.DelayMs)*time.Millisecond)
	} else {
		snap = ctl.NavigateTo(req.Page)
	}
	respond(c, snap, h.cues(session, key, sound.EventClick, sound.EventPageTransition), "")
}

// Back handles POST /api/ui/back.
func (h *Handler) Back(c *gin.Context) {
	key, session := h.sessionKey(c)
	snap := h.svc.ControllerFor(key, session).GoBack()
	respond(c, snap, h.cues(session, key, sound.EventClick, sound.EventPageTransition), "")
}

type selectProductRequest struct {
	ProductID uint `json:"productId"`
}

// SelectProduct handles POST /api/ui/select-product.
func (h *Handler) SelectProduct(c *gin.Context) {
	key, session := h.sessionKey(c)

	var req selectProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	snap := h.svc.ControllerFor(key, session).SelectProductAndNavigate(req.ProductID)
	respond(c, snap, h.cues(session, key, sound.EventClick, sound.EventPageTransition), "")
}

type categoryRequest struct {
	Label string `json:"label"`
}

// Category handles POST /api/ui/category.
func (h *Handler) Category(c *gin.Context) {
	key, session := h.sessionKey(c)

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Label == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "label is required"})
		return
	}

	snap, message := h.svc.DispatchCategoryAction(key, session, req.Label)
	respond(c, snap, h.cues(session, key, sound.EventClick), message)
}

// OpenOverlay handles POST /api/ui/overlays/:kind/open.
func (h *Handler) OpenOverlay(c *gin.Context) {
	key, session := h.sessionKey(c)

	kind := OverlayKind(c.Param("kind"))
	if !ValidOverlay(kind) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown overlay"})
		return
	}

	snap := h.svc.ControllerFor(key, session).OpenOverlay(kind)
	respond(c, snap, h.cues(session, key, sound.EventClick), "")
}

// CloseOverlay handles POST /api/ui/overlays/:kind/close.
func (h *Handler) CloseOverlay(c *gin.Context) {
	key, session := h.sessionKey(c)

	kind := OverlayKind(c.Param("kind"))
	if !ValidOverlay(kind) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown overlay"})
		return
	}

	snap := h.svc.CloseOverlay(key, session, kind)
	respond(c, snap, h.cues(session, key, sound.EventClick), "")
}
