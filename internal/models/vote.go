package models

import "time"

const (
	Upvote   = 1
	Downvote = -1
)

// Vote rows are append-only: a user voting again inserts a new row, and the
// row with the highest Seq for a (post, user) pair is the current vote. Seq
// is assigned by the service from the wall clock so ordering does not depend
// on storage-assigned identifiers.
type Vote struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	VoteType  int       `gorm:"not null" json:"vote_type"`
	PostID    int       `gorm:"index:idx_votes_post_user" json:"post_id"`
	UserID    int       `gorm:"index:idx_votes_post_user" json:"user_id"`
	Seq       int64     `gorm:"not null" json:"seq"`
	CreatedAt time.Time `json:"created_at"`
}

type VoteRequest struct {
	PostID   int `json:"post_id" binding:"required"`
	VoteType int `json:"vote_type" binding:"required,oneof=-1 1"`
}
