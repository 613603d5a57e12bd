package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/config"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/database"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/health"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/metrics"
	playerModel "github.com/marceldopr/Volleyball-stats-definitiu/internal/player/model"
	profileModel "github.com/marceldopr/Volleyball-stats-definitiu/internal/profile/model"
	reportModel "github.com/marceldopr/Volleyball-stats-definitiu/internal/report/model"
	rosterModel "github.com/marceldopr/Volleyball-stats-definitiu/internal/roster/model"
	seasonModel "github.com/marceldopr/Volleyball-stats-definitiu/internal/season/model"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store/gormstore"
	teamModel "github.com/marceldopr/Volleyball-stats-definitiu/internal/team/model"
)

const (
	coachEmail    = "coach@club.es"
	coachPassword = "s3cret-pass"
	rivalEmail    = "director@altreclub.es"
	cookieName    = "volleystats_client"
)

type testEnv struct {
	router  *gin.Engine
	metrics *metrics.Metrics
	db      *gorm.DB
	cookie  *http.Cookie
}

func testConfig() config.Config {
	return config.Config{
		Session: config.SessionConfig{
			SnapshotBackend: config.SnapshotBackendMemory,
			SnapshotName:    "auth-store",
			CookieName:      cookieName,
			CookieMaxAge:    time.Hour,
		},
		GinMode: gin.TestMode,
	}
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{DisableForeignKeyConstraintWhenMigrating: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&gormstore.AuthUser{}, &gormstore.AuthSession{},
		&profileModel.Profile{}, &playerModel.Player{}, &seasonModel.Season{},
		&teamModel.Team{}, &reportModel.Report{},
	))
	require.NoError(t, db.AutoMigrate(&rosterModel.RosterEntry{}))

	logger := zap.NewNop().Sugar()
	clock := clockwork.NewFakeClockAt(time.Date(2025, 10, 4, 10, 0, 0, 0, time.UTC))
	st := gormstore.New(db, logger,
		gormstore.WithAuth(gormstore.AuthConfig{JWTSecret: []byte("router-test-secret-0123"), SessionTTL: time.Hour, Issuer: "test"}),
	)

	userID, err := st.CreateUser(context.Background(), coachEmail, coachPassword)
	require.NoError(t, err)
	role := profileModel.RoleEntrenador
	require.NoError(t, db.Create(&profileModel.Profile{ID: userID, ClubID: "c1", FullName: "Laia Serra", Role: &role}).Error)

	m := metrics.New()
	r := NewRouter(testConfig(), Deps{
		Client:   st,
		Auth:     st,
		Verifier: st,
		Checks:   map[string]health.Checker{"database": database.Checker(db)},
		Metrics:  m,
		Clock:    clock,
		Logger:   logger,
	})
	return &testEnv{router: r, metrics: m, db: db}
}

func (e *testEnv) call(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if e.cookie != nil {
		req.AddCookie(e.cookie)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		if c.Name == cookieName {
			e.cookie = c
		}
	}
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestRouter_PublicEndpoints(t *testing.T) {
	env := setupEnv(t)

	t.Run("health reports the database", func(t *testing.T) {
		w := env.call(t, http.MethodGet, "/health", nil)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[health.Response](t, w)
		assert.Equal(t, map[string]string{"database": "ok"}, resp.Checks)
	})

	t.Run("guarded routes need a session", func(t *testing.T) {
		w := env.call(t, http.MethodGet, "/players", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("resolve redirects anonymous clients to login", func(t *testing.T) {
		w := env.call(t, http.MethodGet, "/navigation/resolve?path=/players", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"/login"`)
	})

	t.Run("unknown route is 404", func(t *testing.T) {
		w := env.call(t, http.MethodGet, "/nope", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRouter_LoginFailure(t *testing.T) {
	env := setupEnv(t)

	w := env.call(t, http.MethodPost, "/auth/login", map[string]string{"email": coachEmail, "password": "wrong"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid login credentials")

	w = env.call(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `volleystats_logins_total{outcome="failure"} 1`)
}

func TestRouter_CoachWorkflow(t *testing.T) {
	env := setupEnv(t)

	w := env.call(t, http.MethodPost, "/auth/login", map[string]string{"email": coachEmail, "password": coachPassword})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NotNil(t, env.cookie)
	assert.Contains(t, w.Body.String(), `"is_authenticated":true`)

	t.Run("navigation follows the role", func(t *testing.T) {
		w := env.call(t, http.MethodGet, "/navigation", nil)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[struct {
			Items     []json.RawMessage `json:"items"`
			RoleLabel string            `json:"role_label"`
		}](t, w)
		assert.Len(t, resp.Items, 6)
		assert.Equal(t, "Entrenador", resp.RoleLabel)
	})

	var seasonID string
	t.Run("create current season", func(t *testing.T) {
		w := env.call(t, http.MethodPost, "/seasons", map[string]any{"name": "Temporada 2025-2026", "is_current": true})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		resp := decode[struct {
			Season seasonModel.Season `json:"season"`
		}](t, w)
		assert.True(t, resp.Season.IsCurrent)
		assert.Equal(t, "c1", resp.Season.ClubID)
		seasonID = resp.Season.ID
	})

	var playerID string
	t.Run("create player", func(t *testing.T) {
		w := env.call(t, http.MethodPost, "/players", map[string]any{
			"first_name": "Ana", "last_name": "Bosch", "main_position": "S",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		resp := decode[struct {
			Player playerModel.Player `json:"player"`
		}](t, w)
		assert.True(t, resp.Player.IsActive)
		playerID = resp.Player.ID
	})

	var teamID string
	t.Run("create team in the current season", func(t *testing.T) {
		w := env.call(t, http.MethodPost, "/teams", map[string]any{"name": "Senior A", "gender": "female"})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		resp := decode[struct {
			Team teamModel.Team `json:"team"`
		}](t, w)
		assert.Equal(t, seasonID, resp.Team.SeasonID)
		teamID = resp.Team.ID
	})

	t.Run("roster add and list", func(t *testing.T) {
		w := env.call(t, http.MethodGet, "/teams/"+teamID+"/roster/available?season_id="+seasonID, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), playerID)

		w = env.call(t, http.MethodPost, "/teams/"+teamID+"/roster", map[string]any{
			"player_id": playerID, "season_id": seasonID, "jersey_number": "7",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = env.call(t, http.MethodGet, "/teams/"+teamID+"/roster?season_id="+seasonID, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		resp := decode[struct {
			Roster []rosterModel.RosterEntry `json:"roster"`
		}](t, w)
		require.Len(t, resp.Roster, 1)
		require.NotNil(t, resp.Roster[0].Player)
		assert.Equal(t, "Ana", resp.Roster[0].Player.FirstName)

		w = env.call(t, http.MethodPost, "/teams/"+teamID+"/roster", map[string]any{
			"player_id": playerID, "season_id": seasonID,
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("report defaults to today", func(t *testing.T) {
		w := env.call(t, http.MethodPost, "/players/"+playerID+"/reports", map[string]any{
			"title": "Primer entrenament", "content": "Bona col·locació",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		resp := decode[struct {
			Report reportModel.Report `json:"report"`
		}](t, w)
		assert.Equal(t, "2025-10-04", resp.Report.Date)

		w = env.call(t, http.MethodGet, "/players/"+playerID+"/reports", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Primer entrenament")
	})

	t.Run("store calls are instrumented", func(t *testing.T) {
		w := env.call(t, http.MethodGet, "/metrics", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `volleystats_logins_total{outcome="success"} 1`)
		assert.Contains(t, body, `collection="players"`)
		assert.True(t, strings.Contains(body, `route="/players"`))
	})

	t.Run("logout revokes access", func(t *testing.T) {
		w := env.call(t, http.MethodPost, "/auth/logout", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"is_authenticated":false`)

		w = env.call(t, http.MethodGet, "/players", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRouter_OtherClubIsIsolated(t *testing.T) {
	env := setupEnv(t)
	w := env.call(t, http.MethodPost, "/auth/login", map[string]string{"email": coachEmail, "password": coachPassword})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.call(t, http.MethodPost, "/seasons", map[string]any{"name": "Temporada 2025-2026", "is_current": true})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	seasonID := decode[struct {
		Season seasonModel.Season `json:"season"`
	}](t, w).Season.ID

	w = env.call(t, http.MethodPost, "/players", map[string]any{"first_name": "Ana", "last_name": "Bosch", "main_position": "S"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	playerID := decode[struct {
		Player playerModel.Player `json:"player"`
	}](t, w).Player.ID

	w = env.call(t, http.MethodPost, "/teams", map[string]any{"name": "Senior A"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	teamID := decode[struct {
		Team teamModel.Team `json:"team"`
	}](t, w).Team.ID

	w = env.call(t, http.MethodPost, "/teams/"+teamID+"/roster", map[string]any{
		"player_id": playerID, "season_id": seasonID, "jersey_number": "7",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	roster := decode[struct {
		Roster []rosterModel.RosterEntry `json:"roster"`
	}](t, w).Roster
	require.Len(t, roster, 1)
	entryID := roster[0].ID

	rivalID, err := gormstore.New(env.db, zap.NewNop().Sugar()).CreateUser(context.Background(), rivalEmail, coachPassword)
	require.NoError(t, err)
	role := profileModel.RoleDirectorTecnic
	require.NoError(t, env.db.Create(&profileModel.Profile{ID: rivalID, ClubID: "c2", FullName: "Pau Riera", Role: &role}).Error)

	rival := &testEnv{router: env.router, metrics: env.metrics, db: env.db}
	w = rival.call(t, http.MethodPost, "/auth/login", map[string]string{"email": rivalEmail, "password": coachPassword})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	tests := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{"read roster", http.MethodGet, "/teams/" + teamID + "/roster?season_id=" + seasonID, nil},
		{"available players", http.MethodGet, "/teams/" + teamID + "/roster/available?season_id=" + seasonID, nil},
		{"add to roster", http.MethodPost, "/teams/" + teamID + "/roster", map[string]any{"player_id": playerID, "season_id": seasonID}},
		{"update entry", http.MethodPatch, "/roster/" + entryID, map[string]any{"jersey_number": "99"}},
		{"remove entry", http.MethodDelete, "/roster/" + entryID, nil},
		{"team in foreign season", http.MethodPost, "/teams", map[string]any{"name": "Intrús", "season_id": seasonID}},
		{"report on foreign player", http.MethodPost, "/players/" + playerID + "/reports", map[string]any{"title": "T", "content": "C"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := rival.call(t, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
		})
	}

	w = env.call(t, http.MethodGet, "/teams/"+teamID+"/roster?season_id="+seasonID, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	roster = decode[struct {
		Roster []rosterModel.RosterEntry `json:"roster"`
	}](t, w).Roster
	require.Len(t, roster, 1)
	require.NotNil(t, roster[0].JerseyNumber)
	assert.Equal(t, "7", *roster[0].JerseyNumber)

	var teams, reports int64
	require.NoError(t, env.db.Model(&teamModel.Team{}).Where("club_id = ?", "c2").Count(&teams).Error)
	require.NoError(t, env.db.Model(&reportModel.Report{}).Count(&reports).Error)
	assert.Zero(t, teams)
	assert.Zero(t, reports)
}
