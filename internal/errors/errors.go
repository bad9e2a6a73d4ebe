// Package errors provides custom error types for the application.
package errors

import "errors"

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Auth errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Travel errors
var (
	ErrTravelNotFound        = errors.New("travel not found")
	ErrTravelVersionConflict = errors.New("travel was modified by another request")
)

// Favorite errors
var (
	ErrFavoriteNotFound      = errors.New("favorite not found")
	ErrFavoriteAlreadyExists = errors.New("travel is already in favorites")
)

// Notification errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
)
