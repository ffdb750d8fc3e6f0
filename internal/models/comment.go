package models

import "time"

type Comment struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"not null" json:"text"`
	UserID    int       `json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	PostID    int       `json:"post_id"`
	Post      Post      `gorm:"foreignKey:PostID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateCommentRequest struct {
	PostID int    `json:"post_id" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

type CommentResponse struct {
	ID        int       `json:"id"`
	PostID    int       `json:"post_id"`
	Text      string    `json:"text"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
