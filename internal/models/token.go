package models

import "time"

// VerificationToken is the one-time code mailed to a new user. Rows are kept
// after a successful verification; re-verifying is a harmless no-op.
type VerificationToken struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"token"`
	UserID    int       `gorm:"not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// RefreshToken is an opaque credential exchanged for new access tokens.
// There is no expiry column; a token is valid until revoked or deleted.
type RefreshToken struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"token"`
	Revoked   bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
