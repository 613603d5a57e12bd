// Package repository provides club-scoped access to teams.
package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/policy"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/team/model"
)

const collection = "teams"

// Repository defines team access operations.
type Repository interface {
	// GetTeamsByClubAndSeason returns the season's teams ordered by name.
	GetTeamsByClubAndSeason(ctx context.Context, scope policy.ClubScope, seasonID string) ([]model.Team, error)

	// CreateTeam inserts a team for the season.
	CreateTeam(ctx context.Context, scope policy.ClubScope, seasonID string, team *model.Team) (*model.Team, error)

	// UpdateTeam patches a team and returns the stored row.
	UpdateTeam(ctx context.Context, scope policy.ClubScope, id string, patch store.Patch) (*model.Team, error)

	// DeleteTeam removes a team.
	DeleteTeam(ctx context.Context, scope policy.ClubScope, id string) error
}

type repository struct {
	client store.Client
	logger *zap.SugaredLogger
}

// New creates a new team repository instance.
func New(client store.Client, logger *zap.SugaredLogger) Repository {
	return &repository{client: client, logger: logger}
}

func (r *repository) GetTeamsByClubAndSeason(
	ctx context.Context,
	scope policy.ClubScope,
	seasonID string,
) ([]model.Team, error) {
	if err := scope.Require(); err != nil {
		return nil, err
	}
	teams := []model.Team{}
	q := store.From(collection).
		Eq("club_id", scope.ClubID()).
		Eq("season_id", seasonID).
		OrderBy("name", true)
	if err := r.client.Select(ctx, q, &teams); err != nil {
		r.logger.Errorw("GetTeamsByClubAndSeason failed", "club_id", scope.ClubID(), "season_id", seasonID, "error", err)
		return nil, store.Fail("fetch teams", err)
	}
	return teams, nil
}

func (r *repository) CreateTeam(
	ctx context.Context,
	scope policy.ClubScope,
	seasonID string,
	team *model.Team,
) (*model.Team, error) {
	if err := scope.Require(); err != nil {
		return nil, err
	}
	team.ClubID = scope.ClubID()
	team.SeasonID = seasonID
	if err := r.client.Insert(ctx, collection, team); err != nil {
		r.logger.Errorw("CreateTeam failed", "club_id", scope.ClubID(), "name", team.Name, "error", err)
		return nil, store.Fail("create team", err)
	}
	r.logger.Debugw("team created", "team_id", team.ID, "season_id", seasonID)
	return team, nil
}

func (r *repository) UpdateTeam(
	ctx context.Context,
	scope policy.ClubScope,
	id string,
	patch store.Patch,
) (*model.Team, error) {
	if err := scope.Require(); err != nil {
		return nil, err
	}
	var team model.Team
	q := store.From(collection).Eq("id", id).Eq("club_id", scope.ClubID())
	if err := r.client.Update(ctx, q, patch, &team); err != nil {
		r.logger.Errorw("UpdateTeam failed", "team_id", id, "error", err)
		return nil, store.Fail("update team", err)
	}
	return &team, nil
}

func (r *repository) DeleteTeam(ctx context.Context, scope policy.ClubScope, id string) error {
	if err := scope.Require(); err != nil {
		return err
	}
	q := store.From(collection).Eq("id", id).Eq("club_id", scope.ClubID())
	if err := r.client.Delete(ctx, q); err != nil {
		r.logger.Errorw("DeleteTeam failed", "team_id", id, "error", err)
		return store.Fail("delete team", err)
	}
	r.logger.Debugw("team deleted", "team_id", id)
	return nil
}
