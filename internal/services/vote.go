package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Hitsaa/socail-blogging-backend/internal/models"
)

// VoteService records votes append-only. The current vote for a (post, user)
// pair is the row with the highest Seq; older rows are never updated or
// removed.
type VoteService struct {
	db *gorm.DB
}

func NewVoteService(db *gorm.DB) *VoteService {
	return &VoteService{db: db}
}

// Save appends a vote for the calling user on the given post.
func (s *VoteService) Save(username string, req models.VoteRequest) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var voter models.User
		if err := tx.Where("username = ?", username).First(&voter).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("looking up user: %w", err)
		}

		var post models.Post
		if err := tx.First(&post, req.PostID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return fmt.Errorf("looking up post: %w", err)
		}

		vote := models.Vote{
			VoteType: req.VoteType,
			PostID:   post.ID,
			UserID:   voter.ID,
			Seq:      time.Now().UnixNano(),
		}
		if err := tx.Create(&vote).Error; err != nil {
			return fmt.Errorf("creating vote: %w", err)
		}
		return nil
	})
}

// CurrentVote returns the most recent vote for the pair, or nil when the
// user has never voted on the post.
func (s *VoteService) CurrentVote(postID, userID int) (*models.Vote, error) {
	var vote models.Vote
	err := s.db.Where("post_id = ? AND user_id = ?", postID, userID).
		Order("seq desc").
		First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("looking up current vote: %w", err)
	}
	return &vote, nil
}

// voteCount folds every user's current vote for the post into one total.
func voteCount(db *gorm.DB, postID int) (int, error) {
	var votes []models.Vote
	err := db.Where("post_id = ?", postID).Order("seq asc").Find(&votes).Error
	if err != nil {
		return 0, fmt.Errorf("fetching votes: %w", err)
	}

	current := make(map[int]int)
	for _, v := range votes {
		current[v.UserID] = v.VoteType
	}

	total := 0
	for _, t := range current {
		total += t
	}
	return total, nil
}
