package model

import "errors"

var (
	// ErrPlayerNotFound indicates the player does not exist in the club.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrEmptyUpdate indicates an update request without fields.
	ErrEmptyUpdate = errors.New("no fields to update")
	// ErrInvalidStatus indicates an unknown status filter.
	ErrInvalidStatus = errors.New("invalid status filter")
)
