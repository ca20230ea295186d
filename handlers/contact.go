package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/saaslanding/saaslanding/backend/api/internal/contact"
	"github.com/saaslanding/saaslanding/backend/api/internal/models"
	"github.com/saaslanding/saaslanding/backend/api/pkg/logger"
)

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
	Subject string `json:"subject"`
}

// ContactHandler holds dependencies
type ContactHandler struct {
	svc *contact.Service
	log zerolog.Logger
}

func NewContactHandler(svc *contact.Service) *ContactHandler {
	return &ContactHandler{
		svc: svc,
		log: logger.With().Str("handler", "contact").Logger(),
	}
}

func (h *ContactHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/contact", h.Submit)
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Subject: req.Subject,
	}
	id, err := h.svc.Submit(c.Request.Context(), msg)
	if err != nil {
		h.log.Error().Err(err).Msg("contact submit failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": "received"})
}
