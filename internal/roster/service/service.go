// Package service implements the roster manager of a team: its entries,
// the players that can still be added and the add, edit and remove actions.
package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	playerModel "github.com/marceldopr/Volleyball-stats-definitiu/internal/player/model"
	playerRepository "github.com/marceldopr/Volleyball-stats-definitiu/internal/player/repository"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/policy"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/roster/model"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/roster/repository"
)

// Service defines roster manager operations.
type Service interface {
	// Roster returns the team's entries for seasonID.
	Roster(ctx context.Context, scope policy.ClubScope, teamID, seasonID string) ([]model.RosterEntry, error)

	// AvailablePlayers returns the club's active players not yet on the
	// team's roster for seasonID.
	AvailablePlayers(ctx context.Context, scope policy.ClubScope, teamID, seasonID string) ([]playerModel.Player, error)

	// AddPlayer adds a player and returns the reloaded roster.
	AddPlayer(ctx context.Context, scope policy.ClubScope, teamID string, req *model.AddPlayerRequest) ([]model.RosterEntry, error)

	// UpdateEntry edits an entry.
	UpdateEntry(ctx context.Context, scope policy.ClubScope, id string, req *model.UpdateEntryRequest) (*model.RosterEntry, error)

	// RemoveEntry removes an entry.
	RemoveEntry(ctx context.Context, scope policy.ClubScope, id string) error
}

type service struct {
	repo    repository.Repository
	players playerRepository.Repository
	logger  *zap.SugaredLogger
}

// New creates a new roster service instance.
func New(repo repository.Repository, players playerRepository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, players: players, logger: logger}
}

func (s *service) Roster(
	ctx context.Context,
	scope policy.ClubScope,
	teamID, seasonID string,
) ([]model.RosterEntry, error) {
	if seasonID == "" {
		return nil, model.ErrSeasonRequired
	}
	return s.repo.GetRosterByTeamAndSeason(ctx, scope, teamID, seasonID)
}

func (s *service) AvailablePlayers(
	ctx context.Context,
	scope policy.ClubScope,
	teamID, seasonID string,
) ([]playerModel.Player, error) {
	if seasonID == "" {
		return nil, model.ErrSeasonRequired
	}

	var (
		entries []model.RosterEntry
		players []playerModel.Player
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = s.repo.GetRosterByTeamAndSeason(gctx, scope, teamID, seasonID)
		return err
	})
	g.Go(func() error {
		var err error
		players, err = s.players.GetPlayersByClub(gctx, scope)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	onRoster := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		onRoster[e.PlayerID] = struct{}{}
	}
	available := make([]playerModel.Player, 0, len(players))
	for _, p := range players {
		if _, taken := onRoster[p.ID]; !p.IsActive || taken {
			continue
		}
		available = append(available, p)
	}
	return available, nil
}

func (s *service) AddPlayer(
	ctx context.Context,
	scope policy.ClubScope,
	teamID string,
	req *model.AddPlayerRequest,
) ([]model.RosterEntry, error) {
	if _, err := s.repo.AddPlayerToTeamSeason(ctx, scope, req.ToEntry(teamID)); err != nil {
		return nil, err
	}
	return s.repo.GetRosterByTeamAndSeason(ctx, scope, teamID, req.SeasonID)
}

func (s *service) UpdateEntry(
	ctx context.Context,
	scope policy.ClubScope,
	id string,
	req *model.UpdateEntryRequest,
) (*model.RosterEntry, error) {
	patch := req.Patch()
	if len(patch) == 0 {
		return nil, model.ErrEmptyUpdate
	}
	return s.repo.UpdatePlayerInTeamSeason(ctx, scope, id, patch)
}

func (s *service) RemoveEntry(ctx context.Context, scope policy.ClubScope, id string) error {
	return s.repo.RemovePlayerFromTeamSeason(ctx, scope, id)
}
