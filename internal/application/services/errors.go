package services

import (
	"errors"

	"github.com/bos-com/Recipe-management-System/internal/domain/repositories"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")
	ErrRateLimited  = errors.New("too many requests")
	ErrNotFound     = repositories.ErrNotFound
)
