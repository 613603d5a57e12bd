package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/policy"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/season/model"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store/gormstore"
)

func ptr[T any](v T) *T { return &v }

func setupRepo(t *testing.T) (Repository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.Season{}))
	logger := zap.NewNop().Sugar()
	return New(gormstore.New(db, logger), logger), db
}

func mustScope(t *testing.T, clubID string) policy.ClubScope {
	t.Helper()
	scope, err := policy.NewClubScope(clubID)
	require.NoError(t, err)
	return scope
}

func current(t *testing.T, db *gorm.DB, clubID string) []string {
	t.Helper()
	var ids []string
	require.NoError(t, db.Model(&model.Season{}).
		Where("club_id = ? AND is_current = ?", clubID, true).
		Pluck("id", &ids).Error)
	return ids
}

func TestRepository_GetSeasonsByClub(t *testing.T) {
	repo, db := setupRepo(t)
	require.NoError(t, db.Create(&[]model.Season{
		{ID: "s1", ClubID: "c1", Name: "Temporada 2023-2024", StartDate: ptr("2023-09-01")},
		{ID: "s2", ClubID: "c1", Name: "Temporada 2024-2025", StartDate: ptr("2024-09-01")},
		{ID: "s3", ClubID: "c2", Name: "Other", StartDate: ptr("2025-09-01")},
	}).Error)

	seasons, err := repo.GetSeasonsByClub(context.Background(), mustScope(t, "c1"))
	require.NoError(t, err)
	require.Len(t, seasons, 2)
	assert.Equal(t, "s2", seasons[0].ID)
	assert.Equal(t, "s1", seasons[1].ID)
}

func TestRepository_GetCurrentSeasonByClub(t *testing.T) {
	ctx := context.Background()

	t.Run("absent is nil without error", func(t *testing.T) {
		repo, db := setupRepo(t)
		require.NoError(t, db.Create(&model.Season{ID: "s1", ClubID: "c1", Name: "Old"}).Error)

		season, err := repo.GetCurrentSeasonByClub(ctx, mustScope(t, "c1"))
		require.NoError(t, err)
		assert.Nil(t, season)
	})

	t.Run("present", func(t *testing.T) {
		repo, db := setupRepo(t)
		require.NoError(t, db.Create(&model.Season{ID: "s1", ClubID: "c1", Name: "Now", IsCurrent: true}).Error)

		season, err := repo.GetCurrentSeasonByClub(ctx, mustScope(t, "c1"))
		require.NoError(t, err)
		require.NotNil(t, season)
		assert.Equal(t, "s1", season.ID)
	})

	t.Run("failure is distinct from absence", func(t *testing.T) {
		repo, db := setupRepo(t)
		require.NoError(t, db.Migrator().DropTable(&model.Season{}))

		season, err := repo.GetCurrentSeasonByClub(ctx, mustScope(t, "c1"))
		assert.Nil(t, season)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to fetch current season: ")
	})
}

func TestRepository_GetSeasonByID(t *testing.T) {
	ctx := context.Background()
	repo, db := setupRepo(t)
	require.NoError(t, db.Create(&[]model.Season{
		{ID: "s1", ClubID: "c1", Name: "Temporada 2025-2026"},
		{ID: "s9", ClubID: "c2", Name: "Temporada 2025-2026"},
	}).Error)

	season, err := repo.GetSeasonByID(ctx, mustScope(t, "c1"), "s1")
	require.NoError(t, err)
	assert.Equal(t, "c1", season.ClubID)

	_, err = repo.GetSeasonByID(ctx, mustScope(t, "c1"), "s9")
	assert.ErrorIs(t, err, model.ErrSeasonNotFound)

	_, err = repo.GetSeasonByID(ctx, policy.ClubScope{}, "s1")
	assert.ErrorIs(t, err, policy.ErrNoScope)
}

func TestRepository_CreateSeason(t *testing.T) {
	repo, db := setupRepo(t)

	season, err := repo.CreateSeason(context.Background(), mustScope(t, "c1"), &model.Season{
		Name:      "Temporada 2025-2026",
		StartDate: ptr(""),
		EndDate:   ptr("2026-06-30"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, season.ID)

	var stored model.Season
	require.NoError(t, db.First(&stored, "id = ?", season.ID).Error)
	assert.Equal(t, "c1", stored.ClubID)
	assert.Nil(t, stored.StartDate)
	assert.Equal(t, "2026-06-30", *stored.EndDate)
	assert.False(t, stored.IsCurrent)
}

func TestRepository_SetCurrentSeason(t *testing.T) {
	ctx := context.Background()

	t.Run("exactly one current season afterwards", func(t *testing.T) {
		repo, db := setupRepo(t)
		require.NoError(t, db.Create(&[]model.Season{
			{ID: "s1", ClubID: "c1", Name: "A", IsCurrent: true},
			{ID: "s2", ClubID: "c1", Name: "B"},
			{ID: "s3", ClubID: "c2", Name: "Other", IsCurrent: true},
		}).Error)

		require.NoError(t, repo.SetCurrentSeason(ctx, mustScope(t, "c1"), "s2"))

		assert.Equal(t, []string{"s2"}, current(t, db, "c1"))
		assert.Equal(t, []string{"s3"}, current(t, db, "c2"))
	})

	t.Run("unknown season rolls back the reset", func(t *testing.T) {
		repo, db := setupRepo(t)
		require.NoError(t, db.Create(&model.Season{ID: "s1", ClubID: "c1", Name: "A", IsCurrent: true}).Error)

		err := repo.SetCurrentSeason(ctx, mustScope(t, "c1"), "missing")
		require.Error(t, err)
		assert.True(t, store.IsNoRows(err))
		assert.Contains(t, err.Error(), "failed to set current season: ")
		assert.Equal(t, []string{"s1"}, current(t, db, "c1"))
	})

	t.Run("another club's season cannot be made current", func(t *testing.T) {
		repo, db := setupRepo(t)
		require.NoError(t, db.Create(&model.Season{ID: "s9", ClubID: "c2", Name: "Other"}).Error)

		require.Error(t, repo.SetCurrentSeason(ctx, mustScope(t, "c1"), "s9"))
		assert.Empty(t, current(t, db, "c2"))
	})
}
