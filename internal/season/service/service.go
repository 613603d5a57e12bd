// Package service implements season management for the teams screen.
package service

import (
	"context"
	"strings"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/policy"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/season/model"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/season/repository"
)

// Service defines season operations.
type Service interface {
	ListSeasons(ctx context.Context, scope policy.ClubScope) ([]model.Season, error)

	// CurrentSeason returns nil without error when the club has none.
	CurrentSeason(ctx context.Context, scope policy.ClubScope) (*model.Season, error)

	// CreateSeason creates a season, making it current unless the request
	// says otherwise.
	CreateSeason(ctx context.Context, scope policy.ClubScope, req *model.CreateSeasonRequest) (*model.Season, error)

	// SetCurrentSeason makes seasonID the club's only current season.
	SetCurrentSeason(ctx context.Context, scope policy.ClubScope, seasonID string) error
}

type service struct {
	repo   repository.Repository
	clock  clockwork.Clock
	logger *zap.SugaredLogger
}

// New creates a new season service instance. The clock provides the year
// of the default season name.
func New(repo repository.Repository, clock clockwork.Clock, logger *zap.SugaredLogger) Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &service{repo: repo, clock: clock, logger: logger}
}

func (s *service) ListSeasons(ctx context.Context, scope policy.ClubScope) ([]model.Season, error) {
	return s.repo.GetSeasonsByClub(ctx, scope)
}

func (s *service) CurrentSeason(ctx context.Context, scope policy.ClubScope) (*model.Season, error) {
	return s.repo.GetCurrentSeasonByClub(ctx, scope)
}

func (s *service) CreateSeason(
	ctx context.Context,
	scope policy.ClubScope,
	req *model.CreateSeasonRequest,
) (*model.Season, error) {
	name := model.DefaultName(s.clock.Now().Year())
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		name = strings.TrimSpace(*req.Name)
	}
	makeCurrent := req.IsCurrent == nil || *req.IsCurrent

	// Inserted as not current so an existing current season never
	// conflicts; SetCurrentSeason then moves the flag.
	season, err := s.repo.CreateSeason(ctx, scope, &model.Season{
		Name:      name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return nil, err
	}
	if !makeCurrent {
		return season, nil
	}

	if err := s.repo.SetCurrentSeason(ctx, scope, season.ID); err != nil {
		return nil, err
	}
	season.IsCurrent = true
	return season, nil
}

func (s *service) SetCurrentSeason(ctx context.Context, scope policy.ClubScope, seasonID string) error {
	return s.repo.SetCurrentSeason(ctx, scope, seasonID)
}
