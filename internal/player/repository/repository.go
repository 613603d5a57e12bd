// Package repository provides club-scoped access to players.
package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/player/model"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/policy"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
)

const collection = "players"

// Repository defines player access operations. Every call is restricted
// to the given club scope and issues exactly one store request.
type Repository interface {
	// GetPlayersByClub returns the club's players ordered by last name.
	GetPlayersByClub(ctx context.Context, scope policy.ClubScope) ([]model.Player, error)

	// GetPlayerByID returns one player of the club or model.ErrPlayerNotFound.
	GetPlayerByID(ctx context.Context, scope policy.ClubScope, id string) (*model.Player, error)

	// CreatePlayer inserts a player tagged with the scope's club.
	CreatePlayer(ctx context.Context, scope policy.ClubScope, player *model.Player) (*model.Player, error)

	// UpdatePlayer patches a player and returns the stored row.
	UpdatePlayer(ctx context.Context, scope policy.ClubScope, id string, patch store.Patch) (*model.Player, error)

	// DeactivatePlayer clears is_active. Players are never deleted.
	DeactivatePlayer(ctx context.Context, scope policy.ClubScope, id string) error
}

type repository struct {
	client store.Client
	logger *zap.SugaredLogger
}

// New creates a new player repository instance.
func New(client store.Client, logger *zap.SugaredLogger) Repository {
	return &repository{client: client, logger: logger}
}

func (r *repository) GetPlayersByClub(ctx context.Context, scope policy.ClubScope) ([]model.Player, error) {
	if err := scope.Require(); err != nil {
		return nil, err
	}
	players := []model.Player{}
	q := store.From(collection).Eq("club_id", scope.ClubID()).OrderBy("last_name", true)
	if err := r.client.Select(ctx, q, &players); err != nil {
		r.logger.Errorw("GetPlayersByClub failed", "club_id", scope.ClubID(), "error", err)
		return nil, store.Fail("fetch players", err)
	}
	r.logger.Debugw("players fetched", "club_id", scope.ClubID(), "count", len(players))
	return players, nil
}

func (r *repository) GetPlayerByID(ctx context.Context, scope policy.ClubScope, id string) (*model.Player, error) {
	if err := scope.Require(); err != nil {
		return nil, err
	}
	var player model.Player
	q := store.From(collection).Eq("id", id).Eq("club_id", scope.ClubID())
	if err := r.client.SelectOne(ctx, q, &player); err != nil {
		if store.IsNoRows(err) {
			return nil, model.ErrPlayerNotFound
		}
		r.logger.Errorw("GetPlayerByID failed", "player_id", id, "error", err)
		return nil, store.Fail("fetch player", err)
	}
	return &player, nil
}

func (r *repository) CreatePlayer(
	ctx context.Context,
	scope policy.ClubScope,
	player *model.Player,
) (*model.Player, error) {
	if err := scope.Require(); err != nil {
		return nil, err
	}
	player.ClubID = scope.ClubID()
	if err := r.client.Insert(ctx, collection, player); err != nil {
		r.logger.Errorw("CreatePlayer failed", "club_id", scope.ClubID(), "error", err)
		return nil, store.Fail("create player", err)
	}
	r.logger.Debugw("player created", "player_id", player.ID, "club_id", scope.ClubID())
	return player, nil
}

func (r *repository) UpdatePlayer(
	ctx context.Context,
	scope policy.ClubScope,
	id string,
	patch store.Patch,
) (*model.Player, error) {
	if err := scope.Require(); err != nil {
		return nil, err
	}
	var player model.Player
	q := store.From(collection).Eq("id", id).Eq("club_id", scope.ClubID())
	if err := r.client.Update(ctx, q, patch, &player); err != nil {
		r.logger.Errorw("UpdatePlayer failed", "player_id", id, "error", err)
		return nil, store.Fail("update player", err)
	}
	return &player, nil
}

func (r *repository) DeactivatePlayer(ctx context.Context, scope policy.ClubScope, id string) error {
	if err := scope.Require(); err != nil {
		return err
	}
	q := store.From(collection).Eq("id", id).Eq("club_id", scope.ClubID())
	if err := r.client.Update(ctx, q, store.Patch{"is_active": false}, nil); err != nil {
		r.logger.Errorw("DeactivatePlayer failed", "player_id", id, "error", err)
		return store.Fail("deactivate player", err)
	}
	r.logger.Debugw("player deactivated", "player_id", id)
	return nil
}
