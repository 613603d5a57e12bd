package model

import "errors"

var (
	// ErrNoCurrentSeason indicates a team was created without a season
	// while the club has no current one.
	ErrNoCurrentSeason = errors.New("club has no current season")
	// ErrEmptyUpdate indicates an update request without fields.
	ErrEmptyUpdate = errors.New("no fields to update")
)
