package models

import "time"

type Post struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	URL         string    `json:"url"`
	Body        string    `json:"body"`
	UserID      int       `json:"user_id"`
	User        User      `gorm:"foreignKey:UserID" json:"user"`
	SubredditID int       `json:"subreddit_id"`
	Subreddit   Subreddit `gorm:"foreignKey:SubredditID" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreatePostRequest struct {
	Title       string `json:"title" binding:"required"`
	URL         string `json:"url"`
	Body        string `json:"body"`
	SubredditID int    `json:"subreddit_id" binding:"required"`
}

// PostResponse carries the derived counts; they are never stored on the row.
type PostResponse struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	URL           string    `json:"url"`
	Body          string    `json:"body"`
	Username      string    `json:"username"`
	SubredditName string    `json:"subreddit_name"`
	VoteCount     int       `json:"vote_count"`
	CommentCount  int       `json:"comment_count"`
	CreatedAt     time.Time `json:"created_at"`
}
