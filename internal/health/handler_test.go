package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/database"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// Set max open connections to 1 for in-memory SQLite
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	return db
}

func setupRouter(handler *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", handler.Check)
	return router
}

func check(t *testing.T, router *gin.Engine) (int, Response) {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestHandler_Check(t *testing.T) {
	logger := zap.NewNop().Sugar()

	t.Run("no checks is healthy", func(t *testing.T) {
		code, resp := check(t, setupRouter(New(nil, logger)))

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "ok", resp.Status)
		assert.Empty(t, resp.Checks)
	})

	t.Run("success - database is healthy", func(t *testing.T) {
		db := setupTestDB(t)
		h := New(map[string]Checker{"database": database.Checker(db)}, logger)

		code, resp := check(t, setupRouter(h))

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, map[string]string{"database": "ok"}, resp.Checks)
	})

	t.Run("failure - database is unavailable", func(t *testing.T) {
		db := setupTestDB(t)
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())
		h := New(map[string]Checker{"database": database.Checker(db)}, logger)

		code, resp := check(t, setupRouter(h))

		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, "unhealthy", resp.Status)
		assert.Equal(t, "unhealthy", resp.Checks["database"])
	})

	t.Run("one failing check marks the service unhealthy", func(t *testing.T) {
		h := New(map[string]Checker{
			"database": func(context.Context) error { return nil },
			"snapshot": func(context.Context) error { return errors.New("redis down") },
		}, logger)

		code, resp := check(t, setupRouter(h))

		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, "ok", resp.Checks["database"])
		assert.Equal(t, "unhealthy", resp.Checks["snapshot"])
	})

	t.Run("checks receive a deadline", func(t *testing.T) {
		var hasDeadline bool
		h := New(map[string]Checker{
			"probe": func(ctx context.Context) error {
				_, hasDeadline = ctx.Deadline()
				return nil
			},
		}, logger)

		code, _ := check(t, setupRouter(h))

		assert.Equal(t, http.StatusOK, code)
		assert.True(t, hasDeadline)
	})

	t.Run("multiple concurrent health checks", func(t *testing.T) {
		db := setupTestDB(t)
		router := setupRouter(New(map[string]Checker{"database": database.Checker(db)}, logger))

		results := make(chan int, 10)
		for i := 0; i < 10; i++ {
			go func() {
				w := httptest.NewRecorder()
				req, _ := http.NewRequest(http.MethodGet, "/health", nil)
				router.ServeHTTP(w, req)
				results <- w.Code
			}()
		}

		for i := 0; i < 10; i++ {
			assert.Equal(t, http.StatusOK, <-results, "health check should return 200 OK")
		}
	})
}
