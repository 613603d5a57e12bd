package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	profileModel "github.com/marceldopr/Volleyball-stats-definitiu/internal/profile/model"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/policy"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/response"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/session"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
)

const (
	clientIDKey = "volleystats.client_id"
	stateKey    = "volleystats.state"
	scopeKey    = "volleystats.scope"
)

// MsgUnauthenticated is returned to callers without a session.
const MsgUnauthenticated = "Debes iniciar sesión"

// CookieOptions configures the client id cookie.
type CookieOptions struct {
	Name   string
	MaxAge int
	Secure bool
}

// Client resolves the session state of the calling browser from its client
// id cookie, issuing a new id when the cookie is missing or malformed.
func Client(registry *session.Registry, cookie CookieOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cookie.Name)
		if err != nil || !session.ValidClientID(id) {
			id = session.NewClientID()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookie.Name, id, cookie.MaxAge, "/", "", cookie.Secure, true)
		}
		c.Set(clientIDKey, id)
		SetState(c, registry.Get(c.Request.Context(), id))
		c.Next()
	}
}

// RequireAuth rejects callers without a session or without a club. On
// success the club scope is stored in the gin context and the access token
// is attached to the request context for the store adapter. When verifier
// is non-nil the token is checked too; a rejected token signs the client out.
func RequireAuth(verifier store.TokenVerifier, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := StateFrom(c)
		if st == nil || !st.IsAuthenticated() {
			unauthenticated(c)
			return
		}

		sess := st.Session()
		if verifier != nil {
			if _, err := verifier.VerifyToken(c.Request.Context(), sess.AccessToken); err != nil {
				logger.Infow("access token rejected", "client_id", c.GetString(clientIDKey), "error", err)
				st.Logout(c.Request.Context())
				unauthenticated(c)
				return
			}
		}

		scope, err := st.Scope()
		if err != nil {
			response.Error(c, http.StatusForbidden, response.CodeNoClub, response.MsgNoClub)
			return
		}

		SetScope(c, scope)
		c.Request = c.Request.WithContext(store.WithAccessToken(c.Request.Context(), sess.AccessToken))
		c.Next()
	}
}

func unauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": response.ErrorBody{
			Code:    response.CodeUnauthenticated,
			Message: MsgUnauthenticated,
		},
		"redirect": policy.LoginPath,
	})
}

// SetState stores the session state of the request.
func SetState(c *gin.Context, st *session.State) {
	c.Set(stateKey, st)
}

// StateFrom returns the session state resolved by Client.
func StateFrom(c *gin.Context) *session.State {
	v, ok := c.Get(stateKey)
	if !ok {
		return nil
	}
	st, _ := v.(*session.State)
	return st
}

// SetScope stores the club scope of the request.
func SetScope(c *gin.Context, scope policy.ClubScope) {
	c.Set(scopeKey, scope)
}

// ScopeFrom returns the club scope set by RequireAuth. Outside a guarded
// route it returns the zero scope, which every access function refuses.
func ScopeFrom(c *gin.Context) policy.ClubScope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return policy.ClubScope{}
	}
	scope, _ := v.(policy.ClubScope)
	return scope
}

// ProfileFrom returns the signed-in profile, if any.
func ProfileFrom(c *gin.Context) *profileModel.Profile {
	if st := StateFrom(c); st != nil {
		return st.Profile()
	}
	return nil
}

// ClientIDFrom returns the client id resolved by Client.
func ClientIDFrom(c *gin.Context) string {
	return c.GetString(clientIDKey)
}
