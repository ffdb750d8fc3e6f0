package services

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/Hitsaa/socail-blogging-backend/internal/mail"
	"github.com/Hitsaa/socail-blogging-backend/internal/models"
)

type CommentService struct {
	db         *gorm.DB
	dispatcher *mail.Dispatcher
	content    *mail.ContentBuilder
	appURL     string
}

func NewCommentService(db *gorm.DB, dispatcher *mail.Dispatcher, content *mail.ContentBuilder, appURL string) *CommentService {
	return &CommentService{
		db:         db,
		dispatcher: dispatcher,
		content:    content,
		appURL:     appURL,
	}
}

// Save creates a comment on the post and notifies the post's author, unless
// the commenter is commenting on their own post.
func (s *CommentService) Save(username string, req models.CreateCommentRequest) (*models.CommentResponse, error) {
	var response *models.CommentResponse
	var notify *mail.Notification

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var commenter models.User
		if err := tx.Where("username = ?", username).First(&commenter).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("looking up user: %w", err)
		}

		var post models.Post
		if err := tx.Preload("User").First(&post, req.PostID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return fmt.Errorf("looking up post: %w", err)
		}

		comment := models.Comment{
			Text:   req.Text,
			UserID: commenter.ID,
			PostID: post.ID,
		}
		if err := tx.Create(&comment).Error; err != nil {
			return fmt.Errorf("creating comment: %w", err)
		}

		if post.UserID != commenter.ID {
			notify = s.commentNotification(commenter.Username, post)
		}

		response = &models.CommentResponse{
			ID:        comment.ID,
			PostID:    comment.PostID,
			Text:      comment.Text,
			Username:  commenter.Username,
			CreatedAt: comment.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if notify != nil {
		s.dispatcher.Dispatch(*notify)
	}
	return response, nil
}

func (s *CommentService) commentNotification(commenter string, post models.Post) *mail.Notification {
	message := fmt.Sprintf("%s posted a comment on your post.%s/api/posts/%d",
		commenter, s.appURL, post.ID)
	body, err := s.content.Build(message)
	if err != nil {
		log.Printf("comments: building notification mail: %v", err)
		return nil
	}
	return &mail.Notification{
		Subject:   commenter + " Commented on your post",
		Recipient: post.User.Email,
		Body:      body,
	}
}

// GetByPost returns the comments for a post in the store's natural order.
func (s *CommentService) GetByPost(postID int) ([]models.CommentResponse, error) {
	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("looking up post: %w", err)
	}

	var comments []models.Comment
	if err := s.db.Preload("User").Where("post_id = ?", postID).Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("fetching comments: %w", err)
	}
	return toCommentResponses(comments), nil
}

// GetByUser returns every comment authored by the named user.
func (s *CommentService) GetByUser(username string) ([]models.CommentResponse, error) {
	var author models.User
	if err := s.db.Where("username = ?", username).First(&author).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	var comments []models.Comment
	if err := s.db.Preload("User").Where("user_id = ?", author.ID).Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("fetching comments: %w", err)
	}
	return toCommentResponses(comments), nil
}

func toCommentResponses(comments []models.Comment) []models.CommentResponse {
	responses := make([]models.CommentResponse, 0, len(comments))
	for _, c := range comments {
		responses = append(responses, models.CommentResponse{
			ID:        c.ID,
			PostID:    c.PostID,
			Text:      c.Text,
			Username:  c.User.Username,
			CreatedAt: c.CreatedAt,
		})
	}
	return responses
}
