// Package store defines the boundary to the remote data store: queries with
// equality filters, single-field ordering and embedded relations, plus
// password sign-in. Adapters live in the rest and gormstore subpackages.
package store

import (
	"context"
	"fmt"
	"regexp"
)

// Filter is an equality condition on one column.
type Filter struct {
	Field string
	Value any
}

// Order sorts results by one column.
type Order struct {
	Field     string
	Ascending bool
}

// Embed requests a related record to be returned inline.
type Embed struct {
	// Relation is the related collection name (e.g. "players").
	Relation string
	// Field is the Go struct field that receives it (e.g. "Player").
	Field string
	// Columns restricts the embedded columns; empty means all.
	Columns []string
}

// Query selects rows of one collection.
type Query struct {
	Collection string
	Filters    []Filter
	Order      *Order
	Embeds     []Embed
}

// From starts a query on collection.
func From(collection string) Query {
	return Query{Collection: collection}
}

// Eq adds an equality filter.
func (q Query) Eq(field string, value any) Query {
	q.Filters = append(append([]Filter(nil), q.Filters...), Filter{Field: field, Value: value})
	return q
}

// OrderBy sets the ordering column.
func (q Query) OrderBy(field string, ascending bool) Query {
	q.Order = &Order{Field: field, Ascending: ascending}
	return q
}

// With embeds a related record.
func (q Query) With(e Embed) Query {
	q.Embeds = append(append([]Embed(nil), q.Embeds...), e)
	return q
}

var identifier = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Validate rejects identifiers that are not plain lower-case column or
// table names. Adapters interpolate them into URLs and SQL.
func (q Query) Validate() error {
	if !identifier.MatchString(q.Collection) {
		return fmt.Errorf("invalid collection name %q", q.Collection)
	}
	for _, f := range q.Filters {
		if !identifier.MatchString(f.Field) {
			return fmt.Errorf("invalid filter field %q", f.Field)
		}
	}
	if q.Order != nil && !identifier.MatchString(q.Order.Field) {
		return fmt.Errorf("invalid order field %q", q.Order.Field)
	}
	for _, e := range q.Embeds {
		if !identifier.MatchString(e.Relation) {
			return fmt.Errorf("invalid embed relation %q", e.Relation)
		}
		for _, c := range e.Columns {
			if !identifier.MatchString(c) {
				return fmt.Errorf("invalid embed column %q", c)
			}
		}
	}
	return nil
}

// Client reads and writes collections. dest arguments are pointers to a
// struct (single row) or to a slice of structs.
type Client interface {
	// Select returns all matching rows.
	Select(ctx context.Context, q Query, dest any) error
	// SelectOne returns exactly one row; zero rows yield an *Error with CodeNoRows.
	SelectOne(ctx context.Context, q Query, dest any) error
	// Insert stores record and decodes server-assigned fields back into it.
	Insert(ctx context.Context, collection string, record any) error
	// Update patches all matching rows. When dest is non-nil the updated
	// row is decoded into it and zero matches yield CodeNoRows.
	Update(ctx context.Context, q Query, patch map[string]any, dest any) error
	// Delete removes all matching rows.
	Delete(ctx context.Context, q Query) error
}

// Transactor is implemented by clients that can run several calls atomically.
type Transactor interface {
	Transaction(ctx context.Context, fn func(tx Client) error) error
}

// InTransaction runs fn inside a transaction when c supports one and
// directly against c otherwise.
func InTransaction(ctx context.Context, c Client, fn func(tx Client) error) error {
	if t, ok := c.(Transactor); ok {
		return t.Transaction(ctx, fn)
	}
	return fn(c)
}

// User identifies the signed-in account.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is the token bundle returned by a successful sign-in. Only its
// presence matters to the rest of the application.
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token,omitempty"`
	// ExpiresAt is a unix timestamp in seconds.
	ExpiresAt int64 `json:"expires_at"`
	User      User  `json:"user"`
}

// Authenticator signs users in and out of the remote store.
type Authenticator interface {
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context, session *Session) error
}

type accessTokenKey struct{}

// WithAccessToken attaches the caller's access token to ctx so adapters can
// forward it to the provider.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

// AccessTokenFrom returns the access token attached by WithAccessToken.
func AccessTokenFrom(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(accessTokenKey{}).(string)
	return token, ok && token != ""
}

// TokenVerifier is implemented by adapters that issue their own tokens and
// can tell whether one is still valid.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (userID string, err error)
}
