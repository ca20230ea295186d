package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/saaslanding/saaslanding/backend/api/internal/models"
	"github.com/saaslanding/saaslanding/backend/api/internal/users"
	"github.com/saaslanding/saaslanding/backend/api/pkg/logger"
)

// SignUpRequest carries a caller-hashed password; the server does no
// cryptographic work.
type SignUpRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	PasswordHash string `json:"password_hash" binding:"required"`
	Salt         string `json:"salt" binding:"required"`
}

type SignInRequest struct {
	Email        string `json:"email" binding:"required,email"`
	PasswordHash string `json:"password_hash" binding:"required"`
}

// AuthHandler holds dependencies
type AuthHandler struct {
	svc *users.Service
	log zerolog.Logger
}

func NewAuthHandler(svc *users.Service) *AuthHandler {
	return &AuthHandler{
		svc: svc,
		log: logger.With().Str("handler", "auth").Logger(),
	}
}

// Register routes under /auth
func (h *AuthHandler) Register(rg *gin.RouterGroup) {
	a := rg.Group("/auth")
	a.POST("/signup", h.SignUp)
	a.POST("/signin", h.SignIn)
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: req.PasswordHash,
		Salt:         req.Salt,
	}
	id, err := h.svc.SignUp(c.Request.Context(), u)
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		h.log.Error().Err(err).Msg("signup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "signup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "email": req.Email, "name": req.Name})
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.svc.SignIn(c.Request.Context(), req.Email, req.PasswordHash)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, users.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		default:
			h.log.Error().Err(err).Msg("signin failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "signin failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": u.ID.Hex(), "email": u.Email, "name": u.Name})
}
