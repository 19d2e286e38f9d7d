package domain

import "errors"

var (
	// ErrQuizNotFound indicates the quiz catalog is empty or the quiz ID is unknown.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrArticleNotFound indicates an unknown article slug or ID.
	ErrArticleNotFound = errors.New("article not found")
	// ErrUserNotFound indicates the user record does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when registering with an already-used email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password on login.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrSessionNotFound is returned when a session token is missing or expired.
	ErrSessionNotFound = errors.New("session not found")
	// ErrInvalidAttempt is returned when a submitted attempt fails validation.
	ErrInvalidAttempt = errors.New("invalid quiz attempt")
	// ErrInvalidReport is returned when an incident report fails validation.
	ErrInvalidReport = errors.New("invalid incident report")
)
