package users

import (
	"errors"
	"net/http"
	"regexp"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("a user with this email already exists")
	ErrInvalidEmail       = errors.New("the provided email is invalid")
	ErrMissingFields      = errors.New("fields email, username and password are required")
	ErrInvalidPassword    = errors.New("password must have at least 8 characters")
	ErrInvalidUserId      = errors.New("invalid or missing userId")
	ErrMissingUsername    = errors.New("userId and newUsername are required")
)

var ErrorMap = map[error]int{
	ErrUserNotFound:       http.StatusNotFound,
	ErrEmailAlreadyExists: http.StatusBadRequest,
	ErrInvalidEmail:       http.StatusBadRequest,
	ErrMissingFields:      http.StatusBadRequest,
	ErrInvalidPassword:    http.StatusBadRequest,
	ErrInvalidUserId:      http.StatusBadRequest,
	ErrMissingUsername:    http.StatusBadRequest,
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[a-zA-Z]{2,}$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
