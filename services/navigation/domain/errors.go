package domain

import "errors"

// Sentinel errors for the navigation domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the referenced navigation item does not exist.
	ErrItemNotFound = errors.New("navigation item not found")

	// ErrSectionNotFound indicates the referenced section does not exist.
	ErrSectionNotFound = errors.New("section not found")

	// ErrSectionReserved indicates an attempt to delete the reserved "main" section.
	ErrSectionReserved = errors.New("the main section is reserved and cannot be deleted")

	// ErrSectionExists indicates a section with the same slug already exists.
	ErrSectionExists = errors.New("section already exists")

	// ErrInvalidName indicates the item or section name violates domain constraints.
	ErrInvalidName = errors.New("invalid name")

	// ErrInvalidTarget indicates the navigation target is neither an absolute
	// URL, a /-path, nor a #fragment.
	ErrInvalidTarget = errors.New("invalid navigation target")

	// ErrEmptyReorder indicates a reorder request with no entries.
	ErrEmptyReorder = errors.New("reorder requires at least one item")
)
