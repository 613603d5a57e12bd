// Package repository provides access to team rosters.
package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/policy"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/roster/model"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
)

const (
	collection        = "player_team_season"
	teamsCollection   = "teams"
	playersCollection = "players"
	seasonsCollection = "seasons"
)

var playerSummary = store.Embed{
	Relation: "players",
	Field:    "Player",
	Columns:  []string{"first_name", "last_name", "main_position"},
}

// Repository defines roster access operations. Rosters have no club
// column, so every operation first checks that the team (and, on add, the
// player and season) belongs to the club of the scope.
type Repository interface {
	// GetRosterByTeamAndSeason returns the entries ordered by jersey number,
	// each with its player summary, or model.ErrTeamNotFound.
	GetRosterByTeamAndSeason(
		ctx context.Context,
		scope policy.ClubScope,
		teamID, seasonID string,
	) ([]model.RosterEntry, error)

	// AddPlayerToTeamSeason inserts an entry. Every failure matches
	// model.ErrCouldNotAdd; a team of another club also matches
	// model.ErrTeamNotFound.
	AddPlayerToTeamSeason(ctx context.Context, scope policy.ClubScope, entry *model.RosterEntry) (*model.RosterEntry, error)

	// UpdatePlayerInTeamSeason patches an entry and returns the stored row.
	// Entries of other clubs are model.ErrEntryNotFound.
	UpdatePlayerInTeamSeason(
		ctx context.Context,
		scope policy.ClubScope,
		id string,
		patch store.Patch,
	) (*model.RosterEntry, error)

	// RemovePlayerFromTeamSeason deletes an entry. Entries of other clubs
	// are model.ErrEntryNotFound.
	RemovePlayerFromTeamSeason(ctx context.Context, scope policy.ClubScope, id string) error
}

type repository struct {
	client store.Client
	logger *zap.SugaredLogger
}

// New creates a new roster repository instance.
func New(client store.Client, logger *zap.SugaredLogger) Repository {
	return &repository{client: client, logger: logger}
}

func (r *repository) GetRosterByTeamAndSeason(
	ctx context.Context,
	scope policy.ClubScope,
	teamID, seasonID string,
) ([]model.RosterEntry, error) {
	if err := scope.Require(); err != nil {
		return nil, err
	}
	if err := r.requireTeam(ctx, scope, teamID); err != nil {
		return nil, err
	}
	entries := []model.RosterEntry{}
	q := store.From(collection).
		Eq("team_id", teamID).
		Eq("season_id", seasonID).
		OrderBy("jersey_number", true).
		With(playerSummary)
	if err := r.client.Select(ctx, q, &entries); err != nil {
		r.logger.Errorw("GetRosterByTeamAndSeason failed", "team_id", teamID, "season_id", seasonID, "error", err)
		return nil, store.Fail("fetch roster", err)
	}
	return entries, nil
}

func (r *repository) AddPlayerToTeamSeason(
	ctx context.Context,
	scope policy.ClubScope,
	entry *model.RosterEntry,
) (*model.RosterEntry, error) {
	if err := scope.Require(); err != nil {
		return nil, err
	}
	if err := r.requireTeam(ctx, scope, entry.TeamID); err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrCouldNotAdd, err)
	}
	for _, ref := range []struct{ collection, id string }{
		{playersCollection, entry.PlayerID},
		{seasonsCollection, entry.SeasonID},
	} {
		ok, err := r.inClub(ctx, scope, ref.collection, ref.id)
		if err != nil {
			r.logger.Errorw("AddPlayerToTeamSeason failed", "collection", ref.collection, "id", ref.id, "error", err)
			return nil, fmt.Errorf("%w: %w", model.ErrCouldNotAdd, store.Fail("add player to team", err))
		}
		if !ok {
			r.logger.Warnw("roster addition outside the club refused",
				"collection", ref.collection,
				"id", ref.id,
				"club_id", scope.ClubID(),
			)
			return nil, fmt.Errorf("%w: %w", model.ErrCouldNotAdd, model.ErrNotInClub)
		}
	}
	if err := r.client.Insert(ctx, collection, entry); err != nil {
		r.logger.Errorw("AddPlayerToTeamSeason failed",
			"player_id", entry.PlayerID,
			"team_id", entry.TeamID,
			"season_id", entry.SeasonID,
			"error", err,
		)
		return nil, fmt.Errorf("%w: %w", model.ErrCouldNotAdd, store.Fail("add player to team", err))
	}
	r.logger.Debugw("player added to team", "entry_id", entry.ID, "team_id", entry.TeamID)
	return entry, nil
}

func (r *repository) UpdatePlayerInTeamSeason(
	ctx context.Context,
	scope policy.ClubScope,
	id string,
	patch store.Patch,
) (*model.RosterEntry, error) {
	if err := scope.Require(); err != nil {
		return nil, err
	}
	teamID, err := r.entryTeam(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	var entry model.RosterEntry
	q := store.From(collection).Eq("id", id).Eq("team_id", teamID)
	if err := r.client.Update(ctx, q, patch, &entry); err != nil {
		r.logger.Errorw("UpdatePlayerInTeamSeason failed", "entry_id", id, "error", err)
		return nil, store.Fail("update player in team", err)
	}
	return &entry, nil
}

func (r *repository) RemovePlayerFromTeamSeason(ctx context.Context, scope policy.ClubScope, id string) error {
	if err := scope.Require(); err != nil {
		return err
	}
	teamID, err := r.entryTeam(ctx, scope, id)
	if err != nil {
		return err
	}
	if err := r.client.Delete(ctx, store.From(collection).Eq("id", id).Eq("team_id", teamID)); err != nil {
		r.logger.Errorw("RemovePlayerFromTeamSeason failed", "entry_id", id, "error", err)
		return store.Fail("remove player from team", err)
	}
	r.logger.Debugw("player removed from team", "entry_id", id)
	return nil
}

// rowRef receives the id of a row looked up only to check it exists.
type rowRef struct {
	ID string `json:"id" gorm:"column:id"`
}

// inClub reports whether the row id of collection carries the scope's club.
func (r *repository) inClub(ctx context.Context, scope policy.ClubScope, collection, id string) (bool, error) {
	var row rowRef
	q := store.From(collection).Eq("id", id).Eq("club_id", scope.ClubID())
	if err := r.client.SelectOne(ctx, q, &row); err != nil {
		if store.IsNoRows(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *repository) requireTeam(ctx context.Context, scope policy.ClubScope, teamID string) error {
	ok, err := r.inClub(ctx, scope, teamsCollection, teamID)
	if err != nil {
		r.logger.Errorw("team lookup failed", "team_id", teamID, "error", err)
		return store.Fail("fetch team", err)
	}
	if !ok {
		return model.ErrTeamNotFound
	}
	return nil
}

// entryTeam returns the team of entry id once that team is known to belong
// to the scope's club.
func (r *repository) entryTeam(ctx context.Context, scope policy.ClubScope, id string) (string, error) {
	var entry model.RosterEntry
	if err := r.client.SelectOne(ctx, store.From(collection).Eq("id", id), &entry); err != nil {
		if store.IsNoRows(err) {
			return "", model.ErrEntryNotFound
		}
		r.logger.Errorw("roster entry lookup failed", "entry_id", id, "error", err)
		return "", store.Fail("fetch roster entry", err)
	}
	if err := r.requireTeam(ctx, scope, entry.TeamID); err != nil {
		if errors.Is(err, model.ErrTeamNotFound) {
			r.logger.Warnw("roster entry of another club refused", "entry_id", id, "club_id", scope.ClubID())
			return "", model.ErrEntryNotFound
		}
		return "", err
	}
	return entry.TeamID, nil
}
