package model

import "errors"

var (
	// ErrCouldNotAdd is returned for every failed roster addition; the
	// usual cause is a player already on the roster.
	ErrCouldNotAdd = errors.New("could not add player: may already be on roster")
	// ErrTeamNotFound indicates the team does not exist in the club.
	ErrTeamNotFound = errors.New("team not found")
	// ErrEntryNotFound indicates the roster entry does not exist or
	// belongs to a team of another club.
	ErrEntryNotFound = errors.New("roster entry not found")
	// ErrNotInClub indicates the player or season of a new entry belongs
	// to another club.
	ErrNotInClub = errors.New("player or season does not belong to the club")
	// ErrSeasonRequired indicates a roster request without season.
	ErrSeasonRequired = errors.New("season_id is required")
	// ErrEmptyUpdate indicates an update request without fields.
	ErrEmptyUpdate = errors.New("no fields to update")
)
