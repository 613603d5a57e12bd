package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/session/snapshot"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
)

// Registry owns the State of every signed-in client. A client without a
// kept State gets a fresh one restored from its snapshot; it is kept only
// while it holds a session, so anonymous traffic never accumulates.
type Registry struct {
	auth      store.Authenticator
	profiles  ProfileReader
	snapshots snapshot.Store
	baseName  string
	logger    *zap.SugaredLogger

	mu     sync.Mutex
	states map[string]*State
}

// NewRegistry creates a registry whose snapshots are named
// "<baseName>:<client id>".
func NewRegistry(
	auth store.Authenticator,
	profiles ProfileReader,
	snapshots snapshot.Store,
	baseName string,
	logger *zap.SugaredLogger,
) *Registry {
	if snapshots == nil {
		snapshots = snapshot.NewMemory()
	}
	if baseName == "" {
		baseName = DefaultSnapshotName
	}
	return &Registry{
		auth:      auth,
		profiles:  profiles,
		snapshots: snapshots,
		baseName:  baseName,
		logger:    logger,
		states:    make(map[string]*State),
	}
}

// NewClientID returns a fresh random client id.
func NewClientID() string {
	return uuid.NewString()
}

// ValidClientID reports whether id looks like one issued by NewClientID.
func ValidClientID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Get returns the State of clientID. A State that is not signed in after
// restoring its snapshot is not kept; it joins the registry when a login on
// it succeeds and leaves it again on logout.
func (r *Registry) Get(ctx context.Context, clientID string) *State {
	r.mu.Lock()
	st, ok := r.states[clientID]
	r.mu.Unlock()
	if ok {
		return st
	}

	st = NewState(r.auth, r.profiles, r.snapshots, r.baseName+":"+clientID, r.logger)
	st.onAuthChange = func(authenticated bool) {
		r.track(clientID, st, authenticated)
	}
	if err := st.Restore(ctx); err != nil {
		r.logger.Warnw("failed to restore session snapshot", "client_id", clientID, "error", err)
	}
	if !st.IsAuthenticated() {
		return st
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if kept, ok := r.states[clientID]; ok {
		return kept
	}
	r.states[clientID] = st
	return st
}

func (r *Registry) track(clientID string, st *State, authenticated bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if authenticated {
		r.states[clientID] = st
		return
	}
	delete(r.states, clientID)
}

// Len returns the number of signed-in clients kept in memory.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}
