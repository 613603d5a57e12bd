package snapshot

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	profileModel "github.com/marceldopr/Volleyball-stats-definitiu/internal/profile/model"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
)

func sampleSnapshot() Snapshot {
	role := profileModel.RoleDirectorTecnic
	return Snapshot{
		Session: &store.Session{AccessToken: "jwt", TokenType: "bearer", ExpiresAt: 1767225600,
			User: store.User{ID: "u1", Email: "dt@club.es"}},
		Profile: &profileModel.Profile{ID: "u1", ClubID: "c1", FullName: "Laura Pons", Role: &role},
	}
}

func testRoundTrip(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	missing, err := s.Load(ctx, "auth-store:nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)

	want := sampleSnapshot()
	require.NoError(t, s.Save(ctx, "auth-store:client-1", want))

	got, err := s.Load(ctx, "auth-store:client-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)

	require.NoError(t, s.Save(ctx, "auth-store:client-1", Snapshot{}))
	cleared, err := s.Load(ctx, "auth-store:client-1")
	require.NoError(t, err)
	require.NotNil(t, cleared)
	assert.Nil(t, cleared.Session)
	assert.Nil(t, cleared.Profile)
}

func TestMemory(t *testing.T) {
	testRoundTrip(t, NewMemory())
}

func TestFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "snapshots")
	s, err := NewFile(dir)
	require.NoError(t, err)

	testRoundTrip(t, s)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "auth-store_client-1.json", entries[0].Name())

	t.Run("corrupt file", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o600))
		_, err := s.Load(context.Background(), "broken")
		assert.ErrorContains(t, err, "failed to decode snapshot")
	})
}

// fakeRedis implements the two commands the store uses.
type fakeRedis struct {
	redis.Cmdable
	data map[string]string
	ttls map[string]time.Duration
	err  error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.data[key] = string(value.([]byte))
	f.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func TestRedis(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		fake := newFakeRedis()
		testRoundTrip(t, NewRedis(fake, 24*time.Hour))

		assert.Contains(t, fake.data, "volleystats:snapshot:auth-store:client-1")
		assert.Equal(t, 24*time.Hour, fake.ttls["volleystats:snapshot:auth-store:client-1"])
	})

	t.Run("connection failure", func(t *testing.T) {
		fake := newFakeRedis()
		fake.err = errors.New("dial tcp: connection refused")
		s := NewRedis(fake, 0)

		_, err := s.Load(context.Background(), "x")
		assert.ErrorContains(t, err, "failed to read snapshot")
		assert.ErrorContains(t, s.Save(context.Background(), "x", Snapshot{}), "failed to write snapshot")
	})

	t.Run("invalid url", func(t *testing.T) {
		_, _, err := NewRedisFromURL(context.Background(), "://nope", 0)
		assert.ErrorContains(t, err, "invalid REDIS_URL")
	})
}
