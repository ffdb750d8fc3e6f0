package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Hitsaa/socail-blogging-backend/internal/auth"
	"github.com/Hitsaa/socail-blogging-backend/internal/config"
	"github.com/Hitsaa/socail-blogging-backend/internal/database"
	"github.com/Hitsaa/socail-blogging-backend/internal/handlers"
	"github.com/Hitsaa/socail-blogging-backend/internal/mail"
	"github.com/Hitsaa/socail-blogging-backend/internal/middleware"
)

type Server struct {
	db         *database.Database
	dispatcher *mail.Dispatcher
	handler    *handlers.Handler
	jwt        *auth.JWTProvider
}

// NewServer creates and configures a new server
func NewServer(cfg config.Config) (*http.Server, *Server) {
	// Initialize database
	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	jwtProvider := auth.NewJWTProvider(cfg.JWTSecret, cfg.JWTExpiration)

	sender := mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	dispatcher := mail.NewDispatcher(sender, cfg.MailQueueSize)

	// Create unified handler
	handler := handlers.NewHandler(db.DB, jwtProvider, dispatcher, cfg.AppURL)

	newServer := &Server{
		db:         db,
		dispatcher: dispatcher,
		handler:    handler,
		jwt:        jwtProvider,
	}

	router := newServer.RegisterRoutes()

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Printf("🚀 Server starting on port %s\n", cfg.Port)
	fmt.Println("📝 Press Ctrl+C to stop the server")

	return server, newServer
}

// Shutdown stops the background mail worker and closes the database.
func (s *Server) Shutdown() {
	s.dispatcher.Stop()
	if err := s.db.Close(); err != nil {
		log.Printf("Failed to close database: %v", err)
	}
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.Default()

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.db.Health())
	})

	RegisterAPIRoutes(r, s.handler, s.jwt)
	return r
}

// RegisterAPIRoutes mounts the /api surface onto the given engine.
func RegisterAPIRoutes(r *gin.Engine, handler *handlers.Handler, jwt *auth.JWTProvider) {
	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/auth/signup", handler.Auth.Signup)
		api.GET("/auth/accountVerification/:token", handler.Auth.VerifyAccount)
		api.POST("/auth/login", handler.Auth.Login)
		api.POST("/auth/refresh/token", handler.Auth.RefreshToken)
		api.POST("/auth/logout", handler.Auth.Logout)

		// Subreddit routes (public reads)
		api.GET("/subreddit", handler.Subreddit.GetSubreddits)
		api.GET("/subreddit/:id", handler.Subreddit.GetSubreddit)

		// Post routes (public reads)
		api.GET("/posts", handler.Post.GetPosts)
		api.GET("/posts/:id", handler.Post.GetPost)
		api.GET("/posts/by-subreddit/:id", handler.Post.GetPostsBySubreddit)
		api.GET("/posts/by-user/:username", handler.Post.GetPostsByUser)

		// Comment routes (public reads)
		api.GET("/comments/by-post/:postId", handler.Comment.GetCommentsByPost)
		api.GET("/comments/by-user/:username", handler.Comment.GetCommentsByUser)

		// Protected routes (authentication required)
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(jwt))
		{
			protected.GET("/auth/me", handler.Auth.GetMe)
			protected.POST("/subreddit", handler.Subreddit.CreateSubreddit)
			protected.POST("/posts", handler.Post.CreatePost)
			protected.POST("/comments", handler.Comment.CreateComment)
			protected.POST("/votes", handler.Vote.Vote)
		}
	}
}
