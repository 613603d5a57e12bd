// Package session holds per-client authentication state: who is signed in,
// their profile, whether a sign-in is in flight and the last error.
package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	profileModel "github.com/marceldopr/Volleyball-stats-definitiu/internal/profile/model"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/policy"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/session/snapshot"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
)

// Fallback messages used when the provider gives none.
const (
	MsgLoginFailed        = "Login failed"
	MsgProfileFetchFailed = "Failed to fetch profile"
	DefaultSnapshotName   = "auth-store"
)

// ProfileReader fetches the profile of a signed-in user.
type ProfileReader interface {
	GetByUserID(ctx context.Context, userID string) (*profileModel.Profile, error)
}

// View is a consistent copy of a State.
type View struct {
	Session         *store.Session        `json:"session"`
	Profile         *profileModel.Profile `json:"profile"`
	Loading         bool                  `json:"loading"`
	Error           *string               `json:"error"`
	IsAuthenticated bool                  `json:"is_authenticated"`
}

// State is the session state of one client. Session and profile are
// either both present or both absent once a login has finished.
// The mutex is never held across a remote call.
type State struct {
	auth      store.Authenticator
	profiles  ProfileReader
	snapshots snapshot.Store
	name      string
	logger    *zap.SugaredLogger

	// onAuthChange runs after a login succeeds (true) or a logout ends
	// (false), outside the lock.
	onAuthChange func(authenticated bool)

	mu      sync.Mutex
	session *store.Session
	profile *profileModel.Profile
	loading bool
	err     string
}

// NewState creates an empty state persisted under name.
func NewState(
	auth store.Authenticator,
	profiles ProfileReader,
	snapshots snapshot.Store,
	name string,
	logger *zap.SugaredLogger,
) *State {
	if snapshots == nil {
		snapshots = snapshot.NewMemory()
	}
	if name == "" {
		name = DefaultSnapshotName
	}
	return &State{
		auth:      auth,
		profiles:  profiles,
		snapshots: snapshots,
		name:      name,
		logger:    logger,
	}
}

// Login signs in and loads the profile. It never returns the provider's
// failure; the outcome is in the returned view's Error and IsAuthenticated.
func (s *State) Login(ctx context.Context, email, password string) View {
	s.update(ctx, func() {
		s.loading = true
		s.err = ""
	})

	sess, err := s.auth.SignInWithPassword(ctx, email, password)
	if err != nil || sess == nil {
		msg := MsgLoginFailed
		if m := store.MessageOf(err); m != "" {
			msg = m
		}
		s.logger.Warnw("login failed", "email", email, "error", msg)
		return s.update(ctx, func() {
			s.loading = false
			s.err = msg
		})
	}

	profile, err := s.profiles.GetByUserID(store.WithAccessToken(ctx, sess.AccessToken), sess.User.ID)
	if err != nil || profile == nil {
		msg := MsgProfileFetchFailed
		if m := store.MessageOf(err); m != "" {
			msg = m
		}
		s.logger.Warnw("profile fetch failed after sign-in", "user_id", sess.User.ID, "error", msg)
		if signOutErr := s.auth.SignOut(ctx, sess); signOutErr != nil {
			s.logger.Warnw("failed to revoke session without profile", "user_id", sess.User.ID, "error", signOutErr)
		}
		return s.update(ctx, func() {
			s.loading = false
			s.err = msg
		})
	}

	s.logger.Infow("login succeeded", "user_id", sess.User.ID, "club_id", profile.ClubID)
	view := s.update(ctx, func() {
		s.session = sess
		s.profile = profile
		s.loading = false
		s.err = ""
	})
	s.notify(true)
	return view
}

// Logout signs out remotely on a best-effort basis and always clears the
// local session and profile. The last error is left as it was.
func (s *State) Logout(ctx context.Context) View {
	var sess *store.Session
	s.update(ctx, func() {
		s.loading = true
		sess = s.session
	})

	if err := s.auth.SignOut(ctx, sess); err != nil {
		s.logger.Warnw("remote sign-out failed", "error", err)
	}

	view := s.update(ctx, func() {
		s.session = nil
		s.profile = nil
		s.loading = false
	})
	s.notify(false)
	return view
}

// IsAuthenticated reports whether both session and profile are present.
func (s *State) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session != nil && s.profile != nil
}

// View returns a copy of the current state.
func (s *State) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// Profile returns the current profile, if any.
func (s *State) Profile() *profileModel.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Session returns the current session, if any.
func (s *State) Session() *store.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Scope returns the club scope of the signed-in user.
func (s *State) Scope() (policy.ClubScope, error) {
	return policy.ScopeFromProfile(s.Profile())
}

// Restore loads the persisted snapshot, if any. Loading is always false
// afterwards so an interrupted login never leaves a stuck indicator.
func (s *State) Restore(ctx context.Context) error {
	snap, err := s.snapshots.Load(ctx, s.name)
	if err != nil {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if snap != nil {
		s.session = snap.Session
		s.profile = snap.Profile
	}
	s.loading = false
	return nil
}

// update applies fn under the lock, persists the snapshot and returns the
// resulting view.
func (s *State) update(ctx context.Context, fn func()) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
	if err := s.snapshots.Save(ctx, s.name, snapshot.Snapshot{Session: s.session, Profile: s.profile}); err != nil {
		s.logger.Errorw("failed to persist session snapshot", "name", s.name, "error", err)
	}
	return s.viewLocked()
}

func (s *State) notify(authenticated bool) {
	if s.onAuthChange != nil {
		s.onAuthChange(authenticated)
	}
}

func (s *State) viewLocked() View {
	v := View{
		Session:         s.session,
		Profile:         s.profile,
		Loading:         s.loading,
		IsAuthenticated: s.session != nil && s.profile != nil,
	}
	if s.err != "" {
		msg := s.err
		v.Error = &msg
	}
	return v
}
