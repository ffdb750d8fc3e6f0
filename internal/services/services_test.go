package services

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Hitsaa/socail-blogging-backend/internal/mail"
	"github.com/Hitsaa/socail-blogging-backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.VerificationToken{},
		&models.RefreshToken{},
		&models.Subreddit{},
		&models.Post{},
		&models.Comment{},
		&models.Vote{},
	))
	return db
}

// recordingSender captures notifications instead of talking to SMTP.
type recordingSender struct {
	mu   sync.Mutex
	sent []mail.Notification
}

func (r *recordingSender) Send(n mail.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
	return nil
}

func (r *recordingSender) notifications() []mail.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]mail.Notification(nil), r.sent...)
}

func newTestDispatcher() (*mail.Dispatcher, *recordingSender) {
	sender := &recordingSender{}
	return mail.NewDispatcher(sender, 16), sender
}

func createUser(t *testing.T, db *gorm.DB, username, email, password string, enabled bool) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Username: username,
		Email:    email,
		Password: string(hash),
		Enabled:  enabled,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createSubreddit(t *testing.T, db *gorm.DB, name string, creatorID int) models.Subreddit {
	t.Helper()

	subreddit := models.Subreddit{Name: name, Description: "test community", UserID: creatorID}
	require.NoError(t, db.Create(&subreddit).Error)
	return subreddit
}

func createPost(t *testing.T, db *gorm.DB, title string, authorID, subredditID int) models.Post {
	t.Helper()

	post := models.Post{Title: title, UserID: authorID, SubredditID: subredditID}
	require.NoError(t, db.Create(&post).Error)
	return post
}
