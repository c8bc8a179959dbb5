package service

import "errors"

var (
	// ErrInvalidCredentials is returned for any failed login. It never
	// reveals whether the email exists.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotAuthenticated is returned when an operation needs a login.
	ErrNotAuthenticated = errors.New("not logged in")

	// ErrEmailTaken is returned when registering an email that exists.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidInput wraps field validation failures.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSessionAlreadyActive is returned when starting a second session.
	ErrSessionAlreadyActive = errors.New("a learning session is already active")

	// ErrNoActiveSession is returned when there is no session to report on or end.
	ErrNoActiveSession = errors.New("no active learning session")

	// ErrNoQuestions is returned when the question bank has nothing for a topic.
	ErrNoQuestions = errors.New("no quiz questions available")
)
