package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hitsaa/socail-blogging-backend/internal/models"
)

func TestPostSaveUnknownSubreddit(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)

	createUser(t, db, "alice", "alice@example.com", "password123", true)

	_, err := svc.Save("alice", models.CreatePostRequest{Title: "hi", SubredditID: 404})
	assert.ErrorIs(t, err, ErrSubredditNotFound)
}

func TestPostSaveAndGetByID(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)

	author := createUser(t, db, "author", "author@example.com", "password123", true)
	subreddit := createSubreddit(t, db, "golang", author.ID)

	saved, err := svc.Save("author", models.CreatePostRequest{
		Title:       "first post",
		URL:         "https://example.com",
		SubredditID: subreddit.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "author", saved.Username)
	assert.Equal(t, "golang", saved.SubredditName)

	fetched, err := svc.GetByID(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "first post", fetched.Title)
	assert.Equal(t, 0, fetched.VoteCount)
	assert.Equal(t, 0, fetched.CommentCount)
}

func TestPostGetByIDUnknown(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)

	_, err := svc.GetByID(7)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPostGetBySubreddit(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)

	author := createUser(t, db, "author", "author@example.com", "password123", true)
	golang := createSubreddit(t, db, "golang", author.ID)
	other := createSubreddit(t, db, "other", author.ID)
	createPost(t, db, "in golang", author.ID, golang.ID)
	createPost(t, db, "elsewhere", author.ID, other.ID)

	posts, err := svc.GetBySubreddit(golang.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "in golang", posts[0].Title)

	_, err = svc.GetBySubreddit(9999)
	assert.ErrorIs(t, err, ErrSubredditNotFound)
}

func TestPostGetByUsername(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)

	author := createUser(t, db, "author", "author@example.com", "password123", true)
	other := createUser(t, db, "other", "other@example.com", "password123", true)
	subreddit := createSubreddit(t, db, "shared", author.ID)
	createPost(t, db, "by author", author.ID, subreddit.ID)
	createPost(t, db, "by other", other.ID, subreddit.ID)

	posts, err := svc.GetByUsername("other")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "by other", posts[0].Title)

	_, err = svc.GetByUsername("ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestPostResponseCountsVotesAndComments(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)
	votes := NewVoteService(db)

	author := createUser(t, db, "author", "author@example.com", "password123", true)
	createUser(t, db, "fan", "fan@example.com", "password123", true)
	subreddit := createSubreddit(t, db, "golang", author.ID)
	post := createPost(t, db, "popular", author.ID, subreddit.ID)

	require.NoError(t, votes.Save("fan", models.VoteRequest{PostID: post.ID, VoteType: models.Upvote}))
	require.NoError(t, db.Create(&models.Comment{Text: "nice", UserID: author.ID, PostID: post.ID}).Error)

	fetched, err := svc.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fetched.VoteCount)
	assert.Equal(t, 1, fetched.CommentCount)
}
