package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Hitsaa/socail-blogging-backend/internal/auth"
	"github.com/Hitsaa/socail-blogging-backend/internal/mail"
	"github.com/Hitsaa/socail-blogging-backend/internal/services"
)

// Handler combines all handler types
type Handler struct {
	Auth      *AuthHandler
	Subreddit *SubredditHandler
	Post      *PostHandler
	Comment   *CommentHandler
	Vote      *VoteHandler
}

// NewHandler wires the services and returns a unified handler with all
// sub-handlers.
func NewHandler(db *gorm.DB, jwt *auth.JWTProvider, dispatcher *mail.Dispatcher, appURL string) *Handler {
	content := mail.NewContentBuilder()

	return &Handler{
		Auth:      NewAuthHandler(services.NewAuthService(db, jwt, dispatcher, content, appURL)),
		Subreddit: NewSubredditHandler(services.NewSubredditService(db)),
		Post:      NewPostHandler(services.NewPostService(db)),
		Comment:   NewCommentHandler(services.NewCommentService(db, dispatcher, content, appURL)),
		Vote:      NewVoteHandler(services.NewVoteService(db)),
	}
}

// respondError maps the service error taxonomy onto HTTP statuses. Unknown
// errors are logged and reported as a generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDuplicateUser),
		errors.Is(err, services.ErrDuplicateSubreddit):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidRefreshToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidToken):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrPostNotFound),
		errors.Is(err, services.ErrSubredditNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Printf("handlers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}
