// Package service implements the teams screen: the current season's
// teams and the team form.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/policy"
	seasonRepository "github.com/marceldopr/Volleyball-stats-definitiu/internal/season/repository"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/team/model"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/team/repository"
)

// Service defines the teams screen operations.
type Service interface {
	// ListTeams returns the teams of seasonID, or of the current season
	// when seasonID is empty. Without a current season the response has
	// a nil season and no teams.
	ListTeams(ctx context.Context, scope policy.ClubScope, seasonID string) (*model.TeamsResponse, error)

	// CreateTeam saves the creation form. An explicit season must belong
	// to the club; otherwise it is seasonModel.ErrSeasonNotFound.
	CreateTeam(ctx context.Context, scope policy.ClubScope, req *model.CreateTeamRequest) (*model.Team, error)

	// UpdateTeam saves the edit form.
	UpdateTeam(ctx context.Context, scope policy.ClubScope, id string, req *model.UpdateTeamRequest) (*model.Team, error)

	// DeleteTeam removes a team.
	DeleteTeam(ctx context.Context, scope policy.ClubScope, id string) error
}

type service struct {
	repo    repository.Repository
	seasons seasonRepository.Repository
	logger  *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, seasons seasonRepository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, seasons: seasons, logger: logger}
}

func (s *service) ListTeams(
	ctx context.Context,
	scope policy.ClubScope,
	seasonID string,
) (*model.TeamsResponse, error) {
	resp := &model.TeamsResponse{Teams: []model.Team{}}
	if seasonID == "" {
		season, err := s.seasons.GetCurrentSeasonByClub(ctx, scope)
		if err != nil {
			return nil, err
		}
		if season == nil {
			return resp, nil
		}
		resp.Season = season
		seasonID = season.ID
	}

	teams, err := s.repo.GetTeamsByClubAndSeason(ctx, scope, seasonID)
	if err != nil {
		return nil, err
	}
	resp.Teams = teams
	return resp, nil
}

func (s *service) CreateTeam(
	ctx context.Context,
	scope policy.ClubScope,
	req *model.CreateTeamRequest,
) (*model.Team, error) {
	seasonID := req.SeasonID
	if seasonID != "" {
		if _, err := s.seasons.GetSeasonByID(ctx, scope, seasonID); err != nil {
			return nil, err
		}
	} else {
		season, err := s.seasons.GetCurrentSeasonByClub(ctx, scope)
		if err != nil {
			return nil, err
		}
		if season == nil {
			return nil, model.ErrNoCurrentSeason
		}
		seasonID = season.ID
	}
	return s.repo.CreateTeam(ctx, scope, seasonID, req.ToTeam(scope.ClubID(), seasonID))
}

func (s *service) UpdateTeam(
	ctx context.Context,
	scope policy.ClubScope,
	id string,
	req *model.UpdateTeamRequest,
) (*model.Team, error) {
	patch := req.Patch()
	if len(patch) == 0 {
		return nil, model.ErrEmptyUpdate
	}
	return s.repo.UpdateTeam(ctx, scope, id, patch)
}

func (s *service) DeleteTeam(ctx context.Context, scope policy.ClubScope, id string) error {
	return s.repo.DeleteTeam(ctx, scope, id)
}
