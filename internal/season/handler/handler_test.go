package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/middleware"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/policy"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/season/model"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/season/service"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ListSeasons(ctx context.Context, scope policy.ClubScope) ([]model.Season, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Season), args.Error(1)
}

func (m *mockService) CurrentSeason(ctx context.Context, scope policy.ClubScope) (*model.Season, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Season), args.Error(1)
}

func (m *mockService) CreateSeason(
	ctx context.Context,
	scope policy.ClubScope,
	req *model.CreateSeasonRequest,
) (*model.Season, error) {
	args := m.Called(ctx, scope, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Season), args.Error(1)
}

func (m *mockService) SetCurrentSeason(ctx context.Context, scope policy.ClubScope, seasonID string) error {
	return m.Called(ctx, scope, seasonID).Error(0)
}

var _ service.Service = (*mockService)(nil)

func setupRouter(t *testing.T, svc service.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	scope, err := policy.NewClubScope("club-1")
	require.NoError(t, err)

	r := gin.New()
	r.Use(func(c *gin.Context) { middleware.SetScope(c, scope) })
	h := New(svc, zap.NewNop().Sugar())
	r.GET("/seasons", h.ListSeasons)
	r.GET("/seasons/current", h.CurrentSeason)
	r.POST("/seasons", h.CreateSeason)
	r.POST("/seasons/:id/current", h.SetCurrentSeason)
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_CurrentSeason(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		svc := new(mockService)
		svc.On("CurrentSeason", mock.Anything, mock.Anything).Return(nil, nil)

		w := serve(setupRouter(t, svc), http.MethodGet, "/seasons/current", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"season": null}`, w.Body.String())
	})

	t.Run("failure", func(t *testing.T) {
		svc := new(mockService)
		svc.On("CurrentSeason", mock.Anything, mock.Anything).
			Return(nil, store.Fail("fetch current season", &store.Error{Message: "down"}))

		w := serve(setupRouter(t, svc), http.MethodGet, "/seasons/current", "")

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), MsgLoadFailed)
	})
}

func TestHandler_CreateSeason(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		svc := new(mockService)
		svc.On("CreateSeason", mock.Anything, mock.Anything, &model.CreateSeasonRequest{}).
			Return(&model.Season{ID: "s1", Name: "Temporada 2025-2026", IsCurrent: true}, nil)

		w := serve(setupRouter(t, svc), http.MethodPost, "/seasons", "")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Temporada 2025-2026")
	})

	t.Run("failure alert", func(t *testing.T) {
		svc := new(mockService)
		svc.On("CreateSeason", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, store.Fail("create season", &store.Error{Message: "denied"}))

		w := serve(setupRouter(t, svc), http.MethodPost, "/seasons", `{"name":"X"}`)

		assert.Contains(t, w.Body.String(), MsgCreateFailed)
		assert.Contains(t, w.Body.String(), `"retry":false`)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := serve(setupRouter(t, new(mockService)), http.MethodPost, "/seasons", `{`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_SetCurrentSeason(t *testing.T) {
	svc := new(mockService)
	svc.On("SetCurrentSeason", mock.Anything, mock.Anything, "s2").Return(nil)

	w := serve(setupRouter(t, svc), http.MethodPost, "/seasons/s2/current", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	svc.AssertExpectations(t)
}
