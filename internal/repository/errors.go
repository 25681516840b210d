package repository

import "errors"

var (
	// ErrInvalidImageID indicates a malformed record identifier
	ErrInvalidImageID = errors.New("invalid image id")

	// ErrImageNotFound indicates the image record was not found
	ErrImageNotFound = errors.New("image not found")

	// ErrRepositoryUnavailable indicates the document store is unavailable
	ErrRepositoryUnavailable = errors.New("repository unavailable")
)
