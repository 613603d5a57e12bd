// Package repository reads profiles from the remote store.
package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/profile/model"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
)

const collection = "profiles"

// Repository defines profile access operations.
type Repository interface {
	// GetByUserID returns the profile whose id equals the authenticated
	// user's id. Zero rows is a failure carrying the provider's message.
	GetByUserID(ctx context.Context, userID string) (*model.Profile, error)
}

type repository struct {
	client store.Client
	logger *zap.SugaredLogger
}

// New creates a new profile repository instance.
func New(client store.Client, logger *zap.SugaredLogger) Repository {
	return &repository{client: client, logger: logger}
}

// GetByUserID implements Repository.
func (r *repository) GetByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	var profile model.Profile
	if err := r.client.SelectOne(ctx, store.From(collection).Eq("id", userID), &profile); err != nil {
		r.logger.Errorw("GetByUserID failed", "user_id", userID, "error", err)
		return nil, store.Fail("fetch profile", err)
	}
	return &profile, nil
}
