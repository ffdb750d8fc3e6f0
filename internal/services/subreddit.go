package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Hitsaa/socail-blogging-backend/internal/models"
)

type SubredditService struct {
	db *gorm.DB
}

func NewSubredditService(db *gorm.DB) *SubredditService {
	return &SubredditService{db: db}
}

// Save creates a subreddit owned by the calling user. Name uniqueness is
// enforced by the store constraint.
func (s *SubredditService) Save(username string, req models.CreateSubredditRequest) (*models.Subreddit, error) {
	var subreddit models.Subreddit

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var creator models.User
		if err := tx.Where("username = ?", username).First(&creator).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("looking up user: %w", err)
		}

		subreddit = models.Subreddit{
			Name:        req.Name,
			Description: req.Description,
			UserID:      creator.ID,
		}
		if err := tx.Create(&subreddit).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateSubreddit
			}
			return fmt.Errorf("creating subreddit: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &subreddit, nil
}

func (s *SubredditService) GetAll() ([]models.SubredditResponse, error) {
	var subreddits []models.Subreddit
	if err := s.db.Find(&subreddits).Error; err != nil {
		return nil, fmt.Errorf("fetching subreddits: %w", err)
	}

	responses := make([]models.SubredditResponse, 0, len(subreddits))
	for _, sub := range subreddits {
		count, err := s.postCount(sub.ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, models.SubredditResponse{
			ID:          sub.ID,
			Name:        sub.Name,
			Description: sub.Description,
			PostCount:   count,
		})
	}
	return responses, nil
}

func (s *SubredditService) GetByID(id int) (*models.SubredditResponse, error) {
	var subreddit models.Subreddit
	if err := s.db.First(&subreddit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubredditNotFound
		}
		return nil, fmt.Errorf("fetching subreddit: %w", err)
	}

	count, err := s.postCount(subreddit.ID)
	if err != nil {
		return nil, err
	}
	return &models.SubredditResponse{
		ID:          subreddit.ID,
		Name:        subreddit.Name,
		Description: subreddit.Description,
		PostCount:   count,
	}, nil
}

func (s *SubredditService) postCount(subredditID int) (int, error) {
	var count int64
	err := s.db.Model(&models.Post{}).Where("subreddit_id = ?", subredditID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting posts: %w", err)
	}
	return int(count), nil
}
