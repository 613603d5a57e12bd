// Package gormstore is the store adapter for a self-hosted PostgreSQL
// database accessed through gorm. It also serves sqlite in tests.
package gormstore

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
)

// Store implements store.Client, store.Transactor and store.Authenticator.
type Store struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
	clock  clockwork.Clock
	auth   AuthConfig
}

// AuthConfig configures sign-in for the postgres adapter.
type AuthConfig struct {
	JWTSecret  []byte
	SessionTTL time.Duration
	Issuer     string
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the clock used for timestamps and token expiry.
func WithClock(c clockwork.Clock) Option {
	return func(s *Store) {
		s.clock = c
	}
}

// WithAuth enables password sign-in.
func WithAuth(cfg AuthConfig) Option {
	return func(s *Store) {
		s.auth = cfg
	}
}

// New creates a Store over db.
func New(db *gorm.DB, logger *zap.SugaredLogger, opts ...Option) *Store {
	s := &Store{
		db:     db,
		logger: logger,
		clock:  clockwork.NewRealClock(),
		auth:   AuthConfig{SessionTTL: time.Hour, Issuer: "volleystats"},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	_ store.Client        = (*Store)(nil)
	_ store.Transactor    = (*Store)(nil)
	_ store.Authenticator = (*Store)(nil)
	_ store.TokenVerifier = (*Store)(nil)
)

func (s *Store) with(db *gorm.DB) *Store {
	cp := *s
	cp.db = db
	return &cp
}

func where(filters []store.Filter) clause.Where {
	exprs := make([]clause.Expression, 0, len(filters))
	for _, f := range filters {
		exprs = append(exprs, clause.Eq{Column: clause.Column{Name: f.Field}, Value: f.Value})
	}
	return clause.Where{Exprs: exprs}
}

// scoped builds the base statement for q.
func (s *Store) scoped(ctx context.Context, q store.Query) *gorm.DB {
	tx := s.db.WithContext(ctx).Table(q.Collection)
	if len(q.Filters) > 0 {
		tx = tx.Clauses(where(q.Filters))
	}
	if q.Order != nil {
		tx = tx.Order(clause.OrderByColumn{
			Column: clause.Column{Name: q.Order.Field},
			Desc:   !q.Order.Ascending,
		})
	}
	for _, e := range q.Embeds {
		field := e.Field
		if field == "" {
			continue
		}
		if len(e.Columns) == 0 {
			tx = tx.Preload(field)
			continue
		}
		cols := append([]string{"id"}, e.Columns...)
		tx = tx.Preload(field, func(db *gorm.DB) *gorm.DB {
			return db.Select(cols)
		})
	}
	return tx
}

// Select implements store.Client.
func (s *Store) Select(ctx context.Context, q store.Query, dest any) error {
	if err := q.Validate(); err != nil {
		return err
	}
	if err := s.scoped(ctx, q).Find(dest).Error; err != nil {
		return translate(err)
	}
	return nil
}

// SelectOne implements store.Client.
func (s *Store) SelectOne(ctx context.Context, q store.Query, dest any) error {
	if err := q.Validate(); err != nil {
		return err
	}
	if err := s.scoped(ctx, q).Take(dest).Error; err != nil {
		return translate(err)
	}
	return nil
}

// Insert implements store.Client.
func (s *Store) Insert(ctx context.Context, collection string, record any) error {
	if err := store.From(collection).Validate(); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Table(collection).Omit(clause.Associations).Create(record).Error; err != nil {
		return translate(err)
	}
	return nil
}

// Update implements store.Client. updated_at is stamped from the store clock
// unless the patch sets it.
func (s *Store) Update(ctx context.Context, q store.Query, patch map[string]any, dest any) error {
	if err := q.Validate(); err != nil {
		return err
	}
	if len(q.Filters) == 0 {
		return fmt.Errorf("update of %s requires at least one filter", q.Collection)
	}
	values := make(map[string]any, len(patch)+1)
	for k, v := range patch {
		if !validColumn(k) {
			return fmt.Errorf("invalid column %q", k)
		}
		values[k] = v
	}
	if _, ok := values["updated_at"]; !ok {
		values["updated_at"] = s.clock.Now().UTC()
	}

	res := s.db.WithContext(ctx).Table(q.Collection).Clauses(where(q.Filters)).Updates(values)
	if res.Error != nil {
		return translate(res.Error)
	}
	if isNil(dest) {
		return nil
	}
	if res.RowsAffected == 0 {
		return noRows()
	}
	return s.SelectOne(ctx, store.Query{Collection: q.Collection, Filters: q.Filters}, dest)
}

// Delete implements store.Client.
func (s *Store) Delete(ctx context.Context, q store.Query) error {
	if err := q.Validate(); err != nil {
		return err
	}
	if len(q.Filters) == 0 {
		return fmt.Errorf("delete from %s requires at least one filter", q.Collection)
	}
	conds := make([]string, 0, len(q.Filters))
	args := make([]any, 0, len(q.Filters))
	for _, f := range q.Filters {
		conds = append(conds, fmt.Sprintf("%q = ?", f.Field))
		args = append(args, f.Value)
	}
	sql := fmt.Sprintf("DELETE FROM %q WHERE %s", q.Collection, strings.Join(conds, " AND "))
	if err := s.db.WithContext(ctx).Exec(sql, args...).Error; err != nil {
		return translate(err)
	}
	return nil
}

// Transaction implements store.Transactor.
func (s *Store) Transaction(ctx context.Context, fn func(tx store.Client) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(s.with(tx))
	})
}

func validColumn(name string) bool {
	return store.From(name).Validate() == nil
}

func noRows() error {
	return &store.Error{
		Code:    store.CodeNoRows,
		Message: "JSON object requested, multiple (or no) rows returned",
		Details: "The result contains 0 rows",
	}
}

// translate maps driver errors to *store.Error.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var already *store.Error
	if errors.As(err, &already) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return noRows()
	case errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicate(err):
		return &store.Error{Code: store.CodeUniqueViolation, Message: err.Error()}
	case errors.Is(err, gorm.ErrForeignKeyViolated) || isForeignKey(err):
		return &store.Error{Code: store.CodeForeignKeyViolation, Message: err.Error()}
	}
	return &store.Error{Message: err.Error()}
}

func isDuplicate(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "SQLSTATE 23505")
}

func isForeignKey(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "violates foreign key constraint") ||
		strings.Contains(msg, "FOREIGN KEY constraint failed")
}

// isNil reports whether dest is nil or a nil pointer.
func isNil(dest any) bool {
	if dest == nil {
		return true
	}
	v := reflect.ValueOf(dest)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
