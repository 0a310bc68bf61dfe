package storage

import "errors"

// Common storage errors
var (
	// ErrCardNotFound indicates that business card was not found in storage
	ErrCardNotFound = errors.New("card not found")

	// ErrCategoryNotFound indicates that category was not found
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryExists indicates that category with this name already exists
	ErrCategoryExists = errors.New("category already exists")

	// ErrCategoryInUse indicates that category is still referenced by cards
	ErrCategoryInUse = errors.New("category is in use")

	// ErrImageNotFound indicates that image was not found
	ErrImageNotFound = errors.New("image not found")
)
