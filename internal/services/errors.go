// internal/services/errors.go
package services

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrBlankKeyword    = errors.New("search keyword must not be blank")
	ErrInvalidAction   = errors.New("invalid interaction action")
	ErrUserExists      = errors.New("user with this email or username already exists")
	ErrInvalidLogin    = errors.New("invalid email or password")
)
