package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/player/model"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/player/repository"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/policy"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) GetPlayersByClub(ctx context.Context, scope policy.ClubScope) ([]model.Player, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Player), args.Error(1)
}

func (m *mockRepository) GetPlayerByID(ctx context.Context, scope policy.ClubScope, id string) (*model.Player, error) {
	args := m.Called(ctx, scope, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Player), args.Error(1)
}

func (m *mockRepository) CreatePlayer(
	ctx context.Context,
	scope policy.ClubScope,
	player *model.Player,
) (*model.Player, error) {
	args := m.Called(ctx, scope, player)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Player), args.Error(1)
}

func (m *mockRepository) UpdatePlayer(
	ctx context.Context,
	scope policy.ClubScope,
	id string,
	patch store.Patch,
) (*model.Player, error) {
	args := m.Called(ctx, scope, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Player), args.Error(1)
}

func (m *mockRepository) DeactivatePlayer(ctx context.Context, scope policy.ClubScope, id string) error {
	return m.Called(ctx, scope, id).Error(0)
}

var _ repository.Repository = (*mockRepository)(nil)

func testScope(t *testing.T) policy.ClubScope {
	t.Helper()
	scope, err := policy.NewClubScope("club-1")
	require.NoError(t, err)
	return scope
}

func TestService_ListPlayers(t *testing.T) {
	ctx := context.Background()
	scope := testScope(t)
	players := []model.Player{
		{ID: "1", FirstName: "Ana", LastName: "Bosch", MainPosition: "S", IsActive: true},
		{ID: "2", FirstName: "Bea", LastName: "Coll", MainPosition: "L", IsActive: false},
	}

	t.Run("defaults to active players", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetPlayersByClub", ctx, scope).Return(players, nil)
		svc := New(repo, zap.NewNop().Sugar())

		got, err := svc.ListPlayers(ctx, scope, model.PlayerFilter{})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "1", got[0].ID)
		repo.AssertExpectations(t)
	})

	t.Run("invalid status skips the store", func(t *testing.T) {
		repo := new(mockRepository)
		svc := New(repo, zap.NewNop().Sugar())

		_, err := svc.ListPlayers(ctx, scope, model.PlayerFilter{Status: "x"})
		assert.ErrorIs(t, err, model.ErrInvalidStatus)
		repo.AssertNotCalled(t, "GetPlayersByClub", mock.Anything, mock.Anything)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		repo := new(mockRepository)
		failure := store.Fail("fetch players", &store.Error{Message: "boom"})
		repo.On("GetPlayersByClub", ctx, scope).Return(nil, failure)
		svc := New(repo, zap.NewNop().Sugar())

		_, err := svc.ListPlayers(ctx, scope, model.PlayerFilter{Status: model.StatusAll})
		assert.Equal(t, failure, err)
	})
}

func TestService_CreatePlayer(t *testing.T) {
	ctx := context.Background()
	scope := testScope(t)
	repo := new(mockRepository)
	repo.On("CreatePlayer", ctx, scope, mock.MatchedBy(func(p *model.Player) bool {
		return p.ClubID == "club-1" && p.IsActive && p.FirstName == "Ana"
	})).Return(&model.Player{ID: "p1", ClubID: "club-1"}, nil)
	svc := New(repo, zap.NewNop().Sugar())

	got, err := svc.CreatePlayer(ctx, scope, &model.CreatePlayerRequest{FirstName: "Ana", LastName: "Bosch", MainPosition: "S"})
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ID)
	repo.AssertExpectations(t)
}

func TestService_UpdatePlayer(t *testing.T) {
	ctx := context.Background()
	scope := testScope(t)

	t.Run("empty update", func(t *testing.T) {
		svc := New(new(mockRepository), zap.NewNop().Sugar())
		_, err := svc.UpdatePlayer(ctx, scope, "p1", &model.UpdatePlayerRequest{})
		assert.ErrorIs(t, err, model.ErrEmptyUpdate)
	})

	t.Run("patch is forwarded", func(t *testing.T) {
		repo := new(mockRepository)
		name := "Ruiz"
		repo.On("UpdatePlayer", ctx, scope, "p1", store.Patch{"last_name": "Ruiz"}).
			Return(&model.Player{ID: "p1", LastName: "Ruiz"}, nil)
		svc := New(repo, zap.NewNop().Sugar())

		got, err := svc.UpdatePlayer(ctx, scope, "p1", &model.UpdatePlayerRequest{LastName: &name})
		require.NoError(t, err)
		assert.Equal(t, "Ruiz", got.LastName)
	})
}

func TestService_DeactivatePlayer(t *testing.T) {
	ctx := context.Background()
	scope := testScope(t)
	repo := new(mockRepository)
	repo.On("DeactivatePlayer", ctx, scope, "p1").Return(nil)
	svc := New(repo, zap.NewNop().Sugar())

	require.NoError(t, svc.DeactivatePlayer(ctx, scope, "p1"))
	repo.AssertExpectations(t)
}
