// Package service implements the reports panel of the player detail
// screen.
package service

import (
	"context"
	"html"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	playerRepository "github.com/marceldopr/Volleyball-stats-definitiu/internal/player/repository"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/policy"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/report/model"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/report/repository"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
)

// Service defines report operations.
type Service interface {
	ListReports(ctx context.Context, scope policy.ClubScope, playerID string) ([]model.Report, error)

	// CreateReport stores a report written by authorID about playerID. A
	// player outside the club is playerModel.ErrPlayerNotFound.
	CreateReport(
		ctx context.Context,
		scope policy.ClubScope,
		authorID, playerID string,
		req *model.CreateReportRequest,
	) (*model.Report, error)

	UpdateReport(ctx context.Context, scope policy.ClubScope, id string, req *model.UpdateReportRequest) (*model.Report, error)
}

type service struct {
	repo      repository.Repository
	players   playerRepository.Repository
	clock     clockwork.Clock
	sanitizer *bluemonday.Policy
	logger    *zap.SugaredLogger
}

// New creates a new report service instance. Report text is stripped of
// markup before it is stored.
func New(
	repo repository.Repository,
	players playerRepository.Repository,
	clock clockwork.Clock,
	logger *zap.SugaredLogger,
) Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &service{
		repo:      repo,
		players:   players,
		clock:     clock,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger,
	}
}

func (s *service) ListReports(ctx context.Context, scope policy.ClubScope, playerID string) ([]model.Report, error) {
	return s.repo.GetReportsByPlayer(ctx, scope, playerID)
}

func (s *service) CreateReport(
	ctx context.Context,
	scope policy.ClubScope,
	authorID, playerID string,
	req *model.CreateReportRequest,
) (*model.Report, error) {
	if authorID == "" {
		return nil, model.ErrNoAuthor
	}
	report := &model.Report{
		PlayerID:     playerID,
		AuthorUserID: authorID,
		Date:         req.Date,
		Title:        s.plain(req.Title, true),
		Content:      s.plain(req.Content, false),
	}
	if report.Title == "" || report.Content == "" {
		return nil, model.ErrEmptyReport
	}
	if report.Date == "" {
		report.Date = s.clock.Now().Format(model.DateLayout)
	}
	if _, err := s.players.GetPlayerByID(ctx, scope, playerID); err != nil {
		return nil, err
	}
	return s.repo.CreatePlayerReport(ctx, scope, report)
}

func (s *service) UpdateReport(
	ctx context.Context,
	scope policy.ClubScope,
	id string,
	req *model.UpdateReportRequest,
) (*model.Report, error) {
	patch := store.Patch{}
	if req.Date != nil {
		patch["date"] = *req.Date
	}
	if req.Title != nil {
		title := s.plain(*req.Title, true)
		if title == "" {
			return nil, model.ErrEmptyReport
		}
		patch["title"] = title
	}
	if req.Content != nil {
		content := s.plain(*req.Content, false)
		if content == "" {
			return nil, model.ErrEmptyReport
		}
		patch["content"] = content
	}
	if len(patch) == 0 {
		return nil, model.ErrEmptyUpdate
	}
	return s.repo.UpdatePlayerReport(ctx, scope, id, patch)
}

// plain strips markup from text. Single-line text also has its whitespace
// collapsed; multi-line text keeps its line breaks.
func (s *service) plain(text string, singleLine bool) string {
	clean := html.UnescapeString(s.sanitizer.Sanitize(text))
	if singleLine {
		return strings.Join(strings.Fields(clean), " ")
	}
	return strings.TrimSpace(clean)
}
