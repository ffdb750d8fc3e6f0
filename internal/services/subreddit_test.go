package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hitsaa/socail-blogging-backend/internal/models"
)

func TestSubredditSave(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubredditService(db)

	creator := createUser(t, db, "founder", "founder@example.com", "password123", true)

	subreddit, err := svc.Save("founder", models.CreateSubredditRequest{
		Name:        "golang",
		Description: "all things Go",
	})
	require.NoError(t, err)
	assert.Equal(t, creator.ID, subreddit.UserID)
	assert.Equal(t, "golang", subreddit.Name)
}

func TestSubredditSaveDuplicateName(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubredditService(db)

	createUser(t, db, "founder", "founder@example.com", "password123", true)

	_, err := svc.Save("founder", models.CreateSubredditRequest{Name: "golang"})
	require.NoError(t, err)

	_, err = svc.Save("founder", models.CreateSubredditRequest{Name: "golang"})
	assert.ErrorIs(t, err, ErrDuplicateSubreddit)
}

func TestSubredditSaveUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubredditService(db)

	_, err := svc.Save("nobody", models.CreateSubredditRequest{Name: "golang"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSubredditGetByID(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubredditService(db)

	creator := createUser(t, db, "founder", "founder@example.com", "password123", true)
	subreddit := createSubreddit(t, db, "golang", creator.ID)
	createPost(t, db, "one", creator.ID, subreddit.ID)
	createPost(t, db, "two", creator.ID, subreddit.ID)

	fetched, err := svc.GetByID(subreddit.ID)
	require.NoError(t, err)
	assert.Equal(t, "golang", fetched.Name)
	assert.Equal(t, 2, fetched.PostCount)

	_, err = svc.GetByID(777)
	assert.ErrorIs(t, err, ErrSubredditNotFound)
}

func TestSubredditGetAll(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubredditService(db)

	creator := createUser(t, db, "founder", "founder@example.com", "password123", true)
	createSubreddit(t, db, "golang", creator.ID)
	createSubreddit(t, db, "rust", creator.ID)

	subreddits, err := svc.GetAll()
	require.NoError(t, err)
	assert.Len(t, subreddits, 2)
}
