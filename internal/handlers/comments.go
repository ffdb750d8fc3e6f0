package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Hitsaa/socail-blogging-backend/internal/middleware"
	"github.com/Hitsaa/socail-blogging-backend/internal/models"
	"github.com/Hitsaa/socail-blogging-backend/internal/services"
)

type CommentHandler struct {
	svc *services.CommentService
}

func NewCommentHandler(svc *services.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// CreateComment creates a new comment on a post (PROTECTED)
func (h *CommentHandler) CreateComment(c *gin.Context) {
	username, ok := middleware.CurrentUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.svc.Save(username, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// GetCommentsByPost returns all comments for a post
func (h *CommentHandler) GetCommentsByPost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("postId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
		return
	}

	comments, err := h.svc.GetByPost(postID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// GetCommentsByUser returns all comments authored by a user
func (h *CommentHandler) GetCommentsByUser(c *gin.Context) {
	comments, err := h.svc.GetByUser(c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}
