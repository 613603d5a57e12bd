// Package repository provides club-scoped access to seasons.
package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/policy"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/season/model"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
)

const collection = "seasons"

// Repository defines season access operations.
type Repository interface {
	// GetSeasonsByClub returns the club's seasons, newest start date first.
	GetSeasonsByClub(ctx context.Context, scope policy.ClubScope) ([]model.Season, error)

	// GetCurrentSeasonByClub returns the current season. No current season
	// is (nil, nil); any other failure is (nil, err).
	GetCurrentSeasonByClub(ctx context.Context, scope policy.ClubScope) (*model.Season, error)

	// GetSeasonByID returns one season of the club or
	// model.ErrSeasonNotFound.
	GetSeasonByID(ctx context.Context, scope policy.ClubScope, id string) (*model.Season, error)

	// CreateSeason inserts a season tagged with the scope's club.
	CreateSeason(ctx context.Context, scope policy.ClubScope, season *model.Season) (*model.Season, error)

	// SetCurrentSeason clears is_current on every club season and sets it
	// on seasonID. The two writes share a transaction when the store
	// supports one; otherwise a failure between them can leave the club
	// with no current season.
	SetCurrentSeason(ctx context.Context, scope policy.ClubScope, seasonID string) error
}

type repository struct {
	client store.Client
	logger *zap.SugaredLogger
}

// New creates a new season repository instance.
func New(client store.Client, logger *zap.SugaredLogger) Repository {
	return &repository{client: client, logger: logger}
}

func (r *repository) GetSeasonsByClub(ctx context.Context, scope policy.ClubScope) ([]model.Season, error) {
	if err := scope.Require(); err != nil {
		return nil, err
	}
	seasons := []model.Season{}
	q := store.From(collection).Eq("club_id", scope.ClubID()).OrderBy("start_date", false)
	if err := r.client.Select(ctx, q, &seasons); err != nil {
		r.logger.Errorw("GetSeasonsByClub failed", "club_id", scope.ClubID(), "error", err)
		return nil, store.Fail("fetch seasons", err)
	}
	return seasons, nil
}

func (r *repository) GetCurrentSeasonByClub(ctx context.Context, scope policy.ClubScope) (*model.Season, error) {
	if err := scope.Require(); err != nil {
		return nil, err
	}
	var season model.Season
	q := store.From(collection).Eq("club_id", scope.ClubID()).Eq("is_current", true)
	if err := r.client.SelectOne(ctx, q, &season); err != nil {
		if store.IsNoRows(err) {
			r.logger.Debugw("no current season", "club_id", scope.ClubID())
			return nil, nil
		}
		r.logger.Errorw("GetCurrentSeasonByClub failed", "club_id", scope.ClubID(), "error", err)
		return nil, store.Fail("fetch current season", err)
	}
	return &season, nil
}

func (r *repository) GetSeasonByID(ctx context.Context, scope policy.ClubScope, id string) (*model.Season, error) {
	if err := scope.Require(); err != nil {
		return nil, err
	}
	var season model.Season
	q := store.From(collection).Eq("id", id).Eq("club_id", scope.ClubID())
	if err := r.client.SelectOne(ctx, q, &season); err != nil {
		if store.IsNoRows(err) {
			return nil, model.ErrSeasonNotFound
		}
		r.logger.Errorw("GetSeasonByID failed", "season_id", id, "error", err)
		return nil, store.Fail("fetch season", err)
	}
	return &season, nil
}

func (r *repository) CreateSeason(
	ctx context.Context,
	scope policy.ClubScope,
	season *model.Season,
) (*model.Season, error) {
	if err := scope.Require(); err != nil {
		return nil, err
	}
	season.ClubID = scope.ClubID()
	season.StartDate = store.OptionalText(season.StartDate)
	season.EndDate = store.OptionalText(season.EndDate)
	if err := r.client.Insert(ctx, collection, season); err != nil {
		r.logger.Errorw("CreateSeason failed", "club_id", scope.ClubID(), "name", season.Name, "error", err)
		return nil, store.Fail("create season", err)
	}
	r.logger.Debugw("season created", "season_id", season.ID, "club_id", scope.ClubID())
	return season, nil
}

func (r *repository) SetCurrentSeason(ctx context.Context, scope policy.ClubScope, seasonID string) error {
	if err := scope.Require(); err != nil {
		return err
	}
	return store.InTransaction(ctx, r.client, func(tx store.Client) error {
		all := store.From(collection).Eq("club_id", scope.ClubID())
		if err := tx.Update(ctx, all, store.Patch{"is_current": false}, nil); err != nil {
			r.logger.Errorw("SetCurrentSeason reset failed", "club_id", scope.ClubID(), "error", err)
			return store.Fail("reset seasons", err)
		}

		var season model.Season
		target := store.From(collection).Eq("id", seasonID).Eq("club_id", scope.ClubID())
		if err := tx.Update(ctx, target, store.Patch{"is_current": true}, &season); err != nil {
			r.logger.Errorw("SetCurrentSeason failed", "season_id", seasonID, "error", err)
			return store.Fail("set current season", err)
		}
		r.logger.Infow("current season changed", "club_id", scope.ClubID(), "season_id", seasonID)
		return nil
	})
}
