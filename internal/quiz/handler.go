package quiz

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/user"
)

// Handler exposes the quiz endpoints.
type Handler struct {
	svc *Service
}

// NewHandler wires the quiz handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// State handles GET /api/quiz/answers. Opening resumes persisted
// progress at the first unanswered question.
func (h *Handler) State(c *gin.Context) {
	session, _ := user.CurrentSession(c)
	snapshot := h.svc.Open(session).Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"questions": Questions(),
		"flow":      snapshot,
	})
}

type answerRequest struct {
	QuestionID string `json:"questionId"`
	Type       string `json:"type"`
	Value      string `json:"value"`
}

// SetAnswer handles PUT /api/quiz/answers.
func (h *Handler) SetAnswer(c *gin.Context) {
	session, _ := user.CurrentSession(c)

	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	kind := req.Type
	if kind != KindOther {
		kind = KindOption
	}

	snapshot, err := h.svc.SetAnswer(session, req.QuestionID, Answer{Kind: kind, Value: req.Value})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown question"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"flow": snapshot})
}

// Advance handles POST /api/quiz/advance.
func (h *Handler) Advance(c *gin.Context) {
	session, _ := user.CurrentSession(c)
	c.JSON(http.StatusOK, gin.H{"flow": h.svc.Advance(session)})
}

type submitRequest struct {
	ContactID *uint `json:"contactId"`
}

// Submit handles POST /api/quiz/submit.
func (h *Handler) Submit(c *gin.Context) {
	session, _ := user.CurrentSession(c)

	var req submitRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	snapshot, err := h.svc.Submit(c.Request.Context(), session, req.ContactID)
	if err != nil {
		if errors.Is(err, ErrNotReady) {
			c.JSON(http.StatusConflict, gin.H{"error": "answer every question first"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to submit quiz"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"flow": snapshot})
}
