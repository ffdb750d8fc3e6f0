package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Hitsaa/socail-blogging-backend/internal/middleware"
	"github.com/Hitsaa/socail-blogging-backend/internal/models"
	"github.com/Hitsaa/socail-blogging-backend/internal/services"
)

type SubredditHandler struct {
	svc *services.SubredditService
}

func NewSubredditHandler(svc *services.SubredditService) *SubredditHandler {
	return &SubredditHandler{svc: svc}
}

// CreateSubreddit creates a new community (PROTECTED)
func (h *SubredditHandler) CreateSubreddit(c *gin.Context) {
	username, ok := middleware.CurrentUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req models.CreateSubredditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subreddit, err := h.svc.Save(username, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, subreddit)
}

// GetSubreddits lists all communities
func (h *SubredditHandler) GetSubreddits(c *gin.Context) {
	subreddits, err := h.svc.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subreddits)
}

// GetSubreddit returns a single community by ID
func (h *SubredditHandler) GetSubreddit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subreddit id"})
		return
	}

	subreddit, err := h.svc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subreddit)
}
