package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/middleware"
	profileModel "github.com/marceldopr/Volleyball-stats-definitiu/internal/profile/model"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/session"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/session/snapshot"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
)

// restoredState returns a state signed in as role, or an empty one when
// role is nil.
func restoredState(t *testing.T, role *profileModel.Role) *session.State {
	t.Helper()
	snaps := snapshot.NewMemory()
	if role != nil {
		require.NoError(t, snaps.Save(context.Background(), "auth-store", snapshot.Snapshot{
			Session: &store.Session{AccessToken: "jwt", User: store.User{ID: "u1"}},
			Profile: &profileModel.Profile{ID: "u1", ClubID: "c1", Role: role},
		}))
	}
	st := session.NewState(nil, nil, snaps, "auth-store", zap.NewNop().Sugar())
	require.NoError(t, st.Restore(context.Background()))
	return st
}

func setupRouter(st *session.State) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(zap.NewNop().Sugar())

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if st != nil {
			middleware.SetState(c, st)
		}
		c.Next()
	})
	r.GET("/navigation", h.Navigation)
	r.GET("/navigation/resolve", h.Resolve)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHandler_Navigation(t *testing.T) {
	coach := profileModel.RoleEntrenador
	director := profileModel.RoleDirectorTecnic

	tests := []struct {
		name      string
		role      *profileModel.Role
		wantItems int
		wantLabel string
		hidden    bool
	}{
		{"trainer gets the reduced set", &coach, 6, "Entrenador", true},
		{"director gets the full set", &director, 8, "Director Técnico", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(restoredState(t, tt.role))

			w := get(r, "/navigation")

			require.Equal(t, http.StatusOK, w.Code)
			var resp NavigationResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Len(t, resp.Items, tt.wantItems)
			assert.Equal(t, tt.wantLabel, resp.RoleLabel)

			hrefs := make([]string, 0, len(resp.Items))
			for _, item := range resp.Items {
				hrefs = append(hrefs, item.Href)
			}
			if tt.hidden {
				assert.NotContains(t, hrefs, "/analytics")
				assert.NotContains(t, hrefs, "/exports")
			} else {
				assert.Contains(t, hrefs, "/analytics")
				assert.Contains(t, hrefs, "/exports")
			}
		})
	}
}

func TestHandler_Resolve(t *testing.T) {
	coach := profileModel.RoleEntrenador

	tests := []struct {
		name     string
		state    *session.State
		path     string
		want     string
		redirect bool
	}{
		{"no state goes to login", nil, "/players", "/login", true},
		{"signed out goes to login", restoredState(t, nil), "/teams", "/login", true},
		{"signed out on login stays", restoredState(t, nil), "/login", "/login", false},
		{"known route", restoredState(t, &coach), "/players/abc", "/players/abc", false},
		{"hidden entry still reachable", restoredState(t, &coach), "/analytics", "/analytics", false},
		{"unknown route goes home", restoredState(t, &coach), "/nowhere", "/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(tt.state)

			w := get(r, "/navigation/resolve?path="+tt.path)

			require.Equal(t, http.StatusOK, w.Code)
			var resp ResolveResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.want, resp.Target)
			assert.Equal(t, tt.redirect, resp.Redirect)
		})
	}
}
