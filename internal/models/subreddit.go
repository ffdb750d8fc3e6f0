package models

import "time"

type Subreddit struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Description string    `json:"description"`
	UserID      int       `json:"user_id"` // creator
	User        User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateSubredditRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type SubredditResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PostCount   int    `json:"post_count"`
}
