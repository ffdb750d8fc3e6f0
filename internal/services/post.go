package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Hitsaa/socail-blogging-backend/internal/models"
)

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// Save creates a post in the given subreddit, authored by the calling user.
func (s *PostService) Save(username string, req models.CreatePostRequest) (*models.PostResponse, error) {
	var response *models.PostResponse

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var author models.User
		if err := tx.Where("username = ?", username).First(&author).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("looking up user: %w", err)
		}

		var subreddit models.Subreddit
		if err := tx.First(&subreddit, req.SubredditID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSubredditNotFound
			}
			return fmt.Errorf("looking up subreddit: %w", err)
		}

		post := models.Post{
			Title:       req.Title,
			URL:         req.URL,
			Body:        req.Body,
			UserID:      author.ID,
			SubredditID: subreddit.ID,
		}
		if err := tx.Create(&post).Error; err != nil {
			return fmt.Errorf("creating post: %w", err)
		}

		response = &models.PostResponse{
			ID:            post.ID,
			Title:         post.Title,
			URL:           post.URL,
			Body:          post.Body,
			Username:      author.Username,
			SubredditName: subreddit.Name,
			CreatedAt:     post.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (s *PostService) GetByID(id int) (*models.PostResponse, error) {
	var post models.Post
	err := s.db.Preload("User").Preload("Subreddit").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("fetching post: %w", err)
	}
	return s.toResponse(post)
}

func (s *PostService) GetAll() ([]models.PostResponse, error) {
	var posts []models.Post
	err := s.db.Preload("User").Preload("Subreddit").Order("created_at desc").Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("fetching posts: %w", err)
	}
	return s.toResponses(posts)
}

func (s *PostService) GetBySubreddit(subredditID int) ([]models.PostResponse, error) {
	var subreddit models.Subreddit
	if err := s.db.First(&subreddit, subredditID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubredditNotFound
		}
		return nil, fmt.Errorf("looking up subreddit: %w", err)
	}

	var posts []models.Post
	err := s.db.Preload("User").Preload("Subreddit").
		Where("subreddit_id = ?", subredditID).
		Order("created_at desc").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("fetching posts: %w", err)
	}
	return s.toResponses(posts)
}

func (s *PostService) GetByUsername(username string) ([]models.PostResponse, error) {
	var author models.User
	if err := s.db.Where("username = ?", username).First(&author).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	var posts []models.Post
	err := s.db.Preload("User").Preload("Subreddit").
		Where("user_id = ?", author.ID).
		Order("created_at desc").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("fetching posts: %w", err)
	}
	return s.toResponses(posts)
}

func (s *PostService) toResponse(post models.Post) (*models.PostResponse, error) {
	votes, err := voteCount(s.db, post.ID)
	if err != nil {
		return nil, err
	}

	var comments int64
	if err := s.db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&comments).Error; err != nil {
		return nil, fmt.Errorf("counting comments: %w", err)
	}

	return &models.PostResponse{
		ID:            post.ID,
		Title:         post.Title,
		URL:           post.URL,
		Body:          post.Body,
		Username:      post.User.Username,
		SubredditName: post.Subreddit.Name,
		VoteCount:     votes,
		CommentCount:  int(comments),
		CreatedAt:     post.CreatedAt,
	}, nil
}

func (s *PostService) toResponses(posts []models.Post) ([]models.PostResponse, error) {
	responses := make([]models.PostResponse, 0, len(posts))
	for _, post := range posts {
		r, err := s.toResponse(post)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *r)
	}
	return responses, nil
}
