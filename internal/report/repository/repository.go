// Package repository provides club-scoped access to player reports.
package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/policy"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/report/model"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
)

const collection = "reports"

// Repository defines report access operations. Reports cannot be deleted.
type Repository interface {
	// GetReportsByPlayer returns a player's reports, newest date first.
	GetReportsByPlayer(ctx context.Context, scope policy.ClubScope, playerID string) ([]model.Report, error)

	// CreatePlayerReport inserts a report tagged with the scope's club.
	CreatePlayerReport(ctx context.Context, scope policy.ClubScope, report *model.Report) (*model.Report, error)

	// UpdatePlayerReport patches a report and returns the stored row.
	UpdatePlayerReport(ctx context.Context, scope policy.ClubScope, id string, patch store.Patch) (*model.Report, error)
}

type repository struct {
	client store.Client
	logger *zap.SugaredLogger
}

// New creates a new report repository instance.
func New(client store.Client, logger *zap.SugaredLogger) Repository {
	return &repository{client: client, logger: logger}
}

func (r *repository) GetReportsByPlayer(
	ctx context.Context,
	scope policy.ClubScope,
	playerID string,
) ([]model.Report, error) {
	if err := scope.Require(); err != nil {
		return nil, err
	}
	reports := []model.Report{}
	q := store.From(collection).
		Eq("club_id", scope.ClubID()).
		Eq("player_id", playerID).
		OrderBy("date", false)
	if err := r.client.Select(ctx, q, &reports); err != nil {
		r.logger.Errorw("GetReportsByPlayer failed", "player_id", playerID, "error", err)
		return nil, store.Fail("fetch reports", err)
	}
	return reports, nil
}

func (r *repository) CreatePlayerReport(
	ctx context.Context,
	scope policy.ClubScope,
	report *model.Report,
) (*model.Report, error) {
	if err := scope.Require(); err != nil {
		return nil, err
	}
	report.ClubID = scope.ClubID()
	if err := r.client.Insert(ctx, collection, report); err != nil {
		r.logger.Errorw("CreatePlayerReport failed", "player_id", report.PlayerID, "error", err)
		return nil, store.Fail("create report", err)
	}
	r.logger.Debugw("report created", "report_id", report.ID, "player_id", report.PlayerID)
	return report, nil
}

func (r *repository) UpdatePlayerReport(
	ctx context.Context,
	scope policy.ClubScope,
	id string,
	patch store.Patch,
) (*model.Report, error) {
	if err := scope.Require(); err != nil {
		return nil, err
	}
	var report model.Report
	q := store.From(collection).Eq("id", id).Eq("club_id", scope.ClubID())
	if err := r.client.Update(ctx, q, patch, &report); err != nil {
		r.logger.Errorw("UpdatePlayerReport failed", "report_id", id, "error", err)
		return nil, store.Fail("update report", err)
	}
	return &report, nil
}
