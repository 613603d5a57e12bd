package model

import "errors"

// ErrSeasonNotFound indicates the season does not exist in the club.
var ErrSeasonNotFound = errors.New("season not found")
