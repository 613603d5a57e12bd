package gormstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
)

// AuthUser is an account that can sign in with a password.
type AuthUser struct {
	ID           string    `gorm:"primaryKey;column:id"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

// TableName specifies the table name for GORM.
func (AuthUser) TableName() string {
	return "auth_users"
}

// AuthSession records an issued access token by its sha256 hash.
type AuthSession struct {
	TokenHash string    `gorm:"primaryKey;column:token_hash"`
	UserID    string    `gorm:"column:user_id;index;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null"`
}

// TableName specifies the table name for GORM.
func (AuthSession) TableName() string {
	return "auth_sessions"
}

var errInvalidCredentials = &store.Error{
	Code:    store.CodeInvalidCredentials,
	Message: "Invalid login credentials",
	Status:  400,
}

// ErrAuthDisabled is returned when no signing secret is configured.
var ErrAuthDisabled = errors.New("password sign-in is not configured")

// CreateUser registers an account and returns its id.
func (s *Store) CreateUser(ctx context.Context, email, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	user := AuthUser{
		ID:           uuid.NewString(),
		Email:        normalizeEmail(email),
		PasswordHash: string(hash),
		CreatedAt:    s.clock.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return "", translate(err)
	}
	return user.ID, nil
}

// SignInWithPassword implements store.Authenticator.
func (s *Store) SignInWithPassword(ctx context.Context, email, password string) (*store.Session, error) {
	if len(s.auth.JWTSecret) == 0 {
		return nil, ErrAuthDisabled
	}

	var user AuthUser
	err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errInvalidCredentials
	}
	if err != nil {
		return nil, translate(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, errInvalidCredentials
	}

	now := s.clock.Now().UTC()
	expiresAt := now.Add(s.auth.SessionTTL)
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   user.ID,
		Issuer:    s.auth.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.auth.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	row := AuthSession{
		TokenHash: hashToken(token),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, translate(err)
	}

	s.logger.Debugw("session issued", "user_id", user.ID, "expires_at", expiresAt)

	return &store.Session{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt.Unix(),
		User:        store.User{ID: user.ID, Email: user.Email},
	}, nil
}

// SignOut implements store.Authenticator by revoking the session row.
func (s *Store) SignOut(ctx context.Context, session *store.Session) error {
	if session == nil || session.AccessToken == "" {
		return nil
	}
	err := s.db.WithContext(ctx).
		Where("token_hash = ?", hashToken(session.AccessToken)).
		Delete(&AuthSession{}).Error
	return translate(err)
}

// VerifyToken validates an access token issued by SignInWithPassword and
// returns its subject. Revoked and expired tokens are rejected.
func (s *Store) VerifyToken(ctx context.Context, token string) (string, error) {
	if len(s.auth.JWTSecret) == 0 {
		return "", ErrAuthDisabled
	}
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.auth.JWTSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		return "", fmt.Errorf("invalid access token: %w", err)
	}

	var row AuthSession
	err = s.db.WithContext(ctx).Where("token_hash = ?", hashToken(token)).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", errors.New("invalid access token: session revoked")
	}
	if err != nil {
		return "", translate(err)
	}
	return claims.Subject, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
