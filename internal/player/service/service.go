// Package service implements the players screens: the filtered list, the
// detail view and the player form.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/player/model"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/player/repository"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/policy"
)

// Service defines the player screen operations.
type Service interface {
	// ListPlayers loads the club's players and applies filter to them.
	ListPlayers(ctx context.Context, scope policy.ClubScope, filter model.PlayerFilter) ([]model.Player, error)

	// GetPlayer loads one player.
	GetPlayer(ctx context.Context, scope policy.ClubScope, id string) (*model.Player, error)

	// CreatePlayer saves the creation form.
	CreatePlayer(ctx context.Context, scope policy.ClubScope, req *model.CreatePlayerRequest) (*model.Player, error)

	// UpdatePlayer saves the edit form.
	UpdatePlayer(
		ctx context.Context,
		scope policy.ClubScope,
		id string,
		req *model.UpdatePlayerRequest,
	) (*model.Player, error)

	// DeactivatePlayer marks a player inactive.
	DeactivatePlayer(ctx context.Context, scope policy.ClubScope, id string) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new player service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) ListPlayers(
	ctx context.Context,
	scope policy.ClubScope,
	filter model.PlayerFilter,
) ([]model.Player, error) {
	filter, err := filter.Normalize()
	if err != nil {
		return nil, err
	}
	players, err := s.repo.GetPlayersByClub(ctx, scope)
	if err != nil {
		return nil, err
	}
	return filter.Apply(players), nil
}

func (s *service) GetPlayer(ctx context.Context, scope policy.ClubScope, id string) (*model.Player, error) {
	return s.repo.GetPlayerByID(ctx, scope, id)
}

func (s *service) CreatePlayer(
	ctx context.Context,
	scope policy.ClubScope,
	req *model.CreatePlayerRequest,
) (*model.Player, error) {
	if err := scope.Require(); err != nil {
		return nil, err
	}
	return s.repo.CreatePlayer(ctx, scope, req.ToPlayer(scope.ClubID()))
}

func (s *service) UpdatePlayer(
	ctx context.Context,
	scope policy.ClubScope,
	id string,
	req *model.UpdatePlayerRequest,
) (*model.Player, error) {
	patch := req.Patch()
	if len(patch) == 0 {
		return nil, model.ErrEmptyUpdate
	}
	return s.repo.UpdatePlayer(ctx, scope, id, patch)
}

func (s *service) DeactivatePlayer(ctx context.Context, scope policy.ClubScope, id string) error {
	return s.repo.DeactivatePlayer(ctx, scope, id)
}
