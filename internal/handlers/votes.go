package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Hitsaa/socail-blogging-backend/internal/middleware"
	"github.com/Hitsaa/socail-blogging-backend/internal/models"
	"github.com/Hitsaa/socail-blogging-backend/internal/services"
)

type VoteHandler struct {
	svc *services.VoteService
}

func NewVoteHandler(svc *services.VoteService) *VoteHandler {
	return &VoteHandler{svc: svc}
}

// Vote records a vote on a post (PROTECTED - requires authentication)
func (h *VoteHandler) Vote(c *gin.Context) {
	username, ok := middleware.CurrentUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req models.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Vote type must be -1 or 1"})
		return
	}

	if err := h.svc.Save(username, req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vote recorded"})
}
