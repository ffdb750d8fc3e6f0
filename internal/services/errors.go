package services

import "errors"

// User-input/state errors surfaced to the caller as distinct failures. The
// handler layer maps them onto HTTP status codes. Anything else bubbling out
// of a service is an internal failure wrapped with its cause.
var (
	ErrDuplicateUser       = errors.New("username or email already registered")
	ErrInvalidToken        = errors.New("invalid verification token")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrUserNotFound        = errors.New("user not found")
	ErrPostNotFound        = errors.New("post not found")
	ErrSubredditNotFound   = errors.New("subreddit not found")
	ErrDuplicateSubreddit  = errors.New("subreddit name already taken")
)
