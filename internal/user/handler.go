package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler exposes the auth endpoints.
type Handler struct {
	svc *Service

	// OnSignOut observes successful sign-outs so session-scoped state
	// elsewhere (navigation controller, open quiz flow) can be dropped.
	OnSignOut func(sessionID string)
}

// NewHandler wires the auth handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type signUpRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Session *Session `json:"session"`
	Token   string   `json:"token"`
}

// SignUp handles POST /api/auth/signup.
func (h *Handler) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session, tokenStr, err := h.svc.SignUp(c.Request.Context(), SignUpInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "account creation failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, sessionResponse{Session: session, Token: tokenStr})
}

// SignIn handles POST /api/auth/signin.
func (h *Handler) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session, tokenStr, err := h.svc.SignIn(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields), errors.Is(err, ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": ErrInvalidCredentials.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "sign in failed"})
		}
		return
	}
	c.JSON(http.StatusOK, sessionResponse{Session: session, Token: tokenStr})
}

// Guest handles POST /api/auth/guest.
func (h *Handler) Guest(c *gin.Context) {
	session, tokenStr, err := h.svc.GuestEntry()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "guest entry failed"})
		return
	}
	c.JSON(http.StatusOK, sessionResponse{Session: session, Token: tokenStr})
}

// SignOut handles POST /api/auth/signout. Tokens are stateless; the
// server just drops the session-scoped state it holds.
func (h *Handler) SignOut(c *gin.Context) {
	session, _ := CurrentSession(c)
	if h.OnSignOut != nil {
		h.OnSignOut(session.UserID)
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// GetSession handles GET /api/auth/session.
func (h *Handler) GetSession(c *gin.Context) {
	session, ok := CurrentSession(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"session": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Confirm handles GET /api/auth/confirm.
func (h *Handler) Confirm(c *gin.Context) {
	userID := c.Query("u")
	email := c.Query("e")
	sig := c.Query("sig")
	if err := h.svc.ConfirmEmail(userID, email, sig); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "email confirmed"})
}

type updateProfileRequest struct {
	Username  string `json:"username"`
	AvatarURL string `json:"avatarUrl"`
}

// UpdateProfile handles PUT /api/auth/profile.
func (h *Handler) UpdateProfile(c *gin.Context) {
	session, _ := CurrentSession(c)
	if session.IsGuest {
		c.JSON(http.StatusForbidden, gin.H{"error": "guests cannot edit a profile"})
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.svc.UpdateProfile(session.UserID, req.Username, req.AvatarURL); err != nil {
		if errors.Is(err, ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}
