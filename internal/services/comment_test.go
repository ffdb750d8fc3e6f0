package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Hitsaa/socail-blogging-backend/internal/mail"
	"github.com/Hitsaa/socail-blogging-backend/internal/models"
)

func newCommentService(db *gorm.DB, dispatcher *mail.Dispatcher) *CommentService {
	return NewCommentService(db, dispatcher, mail.NewContentBuilder(), testAppURL)
}

func TestCommentSaveUnknownPost(t *testing.T) {
	db := newTestDB(t)
	dispatcher, _ := newTestDispatcher()
	defer dispatcher.Stop()
	svc := newCommentService(db, dispatcher)

	createUser(t, db, "alice", "alice@example.com", "password123", true)

	_, err := svc.Save("alice", models.CreateCommentRequest{PostID: 999, Text: "hello"})
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestCommentSaveNotifiesPostAuthor(t *testing.T) {
	db := newTestDB(t)
	dispatcher, sender := newTestDispatcher()
	svc := newCommentService(db, dispatcher)

	author := createUser(t, db, "author", "author@example.com", "password123", true)
	createUser(t, db, "commenter", "commenter@example.com", "password123", true)
	subreddit := createSubreddit(t, db, "golang", author.ID)
	post := createPost(t, db, "a post", author.ID, subreddit.ID)

	comment, err := svc.Save("commenter", models.CreateCommentRequest{PostID: post.ID, Text: "nice one"})
	require.NoError(t, err)
	assert.Equal(t, "commenter", comment.Username)

	dispatcher.Stop()
	sent := sender.notifications()
	require.Len(t, sent, 1)
	assert.Equal(t, "author@example.com", sent[0].Recipient)
	assert.Equal(t, "commenter Commented on your post", sent[0].Subject)
	assert.Contains(t, sent[0].Body, "commenter posted a comment on your post.")
}

func TestCommentSaveOnOwnPostSkipsNotification(t *testing.T) {
	db := newTestDB(t)
	dispatcher, sender := newTestDispatcher()
	svc := newCommentService(db, dispatcher)

	author := createUser(t, db, "solo", "solo@example.com", "password123", true)
	subreddit := createSubreddit(t, db, "notes", author.ID)
	post := createPost(t, db, "my post", author.ID, subreddit.ID)

	_, err := svc.Save("solo", models.CreateCommentRequest{PostID: post.ID, Text: "note to self"})
	require.NoError(t, err)

	dispatcher.Stop()
	assert.Empty(t, sender.notifications())
}

func TestGetByPostReturnsAttributedComments(t *testing.T) {
	db := newTestDB(t)
	dispatcher, _ := newTestDispatcher()
	defer dispatcher.Stop()
	svc := newCommentService(db, dispatcher)

	author := createUser(t, db, "poster", "poster@example.com", "password123", true)
	createUser(t, db, "first", "first@example.com", "password123", true)
	createUser(t, db, "second", "second@example.com", "password123", true)
	subreddit := createSubreddit(t, db, "general", author.ID)
	post := createPost(t, db, "discuss", author.ID, subreddit.ID)

	_, err := svc.Save("first", models.CreateCommentRequest{PostID: post.ID, Text: "one"})
	require.NoError(t, err)
	_, err = svc.Save("second", models.CreateCommentRequest{PostID: post.ID, Text: "two"})
	require.NoError(t, err)

	comments, err := svc.GetByPost(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)

	byText := map[string]string{}
	for _, c := range comments {
		byText[c.Text] = c.Username
	}
	assert.Equal(t, "first", byText["one"])
	assert.Equal(t, "second", byText["two"])
}

func TestGetByPostUnknownPost(t *testing.T) {
	db := newTestDB(t)
	dispatcher, _ := newTestDispatcher()
	defer dispatcher.Stop()
	svc := newCommentService(db, dispatcher)

	_, err := svc.GetByPost(42)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestGetByUserUnknownUser(t *testing.T) {
	db := newTestDB(t)
	dispatcher, _ := newTestDispatcher()
	defer dispatcher.Stop()
	svc := newCommentService(db, dispatcher)

	_, err := svc.GetByUser("ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetByUserReturnsOwnComments(t *testing.T) {
	db := newTestDB(t)
	dispatcher, _ := newTestDispatcher()
	defer dispatcher.Stop()
	svc := newCommentService(db, dispatcher)

	author := createUser(t, db, "owner", "owner@example.com", "password123", true)
	createUser(t, db, "other", "other@example.com", "password123", true)
	subreddit := createSubreddit(t, db, "mixed", author.ID)
	post := createPost(t, db, "thread", author.ID, subreddit.ID)

	_, err := svc.Save("owner", models.CreateCommentRequest{PostID: post.ID, Text: "mine"})
	require.NoError(t, err)
	_, err = svc.Save("other", models.CreateCommentRequest{PostID: post.ID, Text: "theirs"})
	require.NoError(t, err)

	comments, err := svc.GetByUser("other")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "theirs", comments[0].Text)
}
