package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
)

type tokenResponse struct {
	AccessToken  string     `json:"access_token"`
	TokenType    string     `json:"token_type"`
	ExpiresAt    int64      `json:"expires_at"`
	RefreshToken string     `json:"refresh_token"`
	User         store.User `json:"user"`
}

// authErrorBody covers both error shapes the auth service has used.
type authErrorBody struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	ErrorCode        string `json:"error_code"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

func decodeAuthError(status int, body []byte) error {
	var b authErrorBody
	_ = json.Unmarshal(body, &b)

	e := &store.Error{Status: status, Code: b.ErrorCode}
	if e.Code == "" {
		e.Code = b.Error
	}
	for _, msg := range []string{b.Msg, b.ErrorDescription, b.Message} {
		if msg != "" {
			e.Message = msg
			break
		}
	}
	if e.Message == "" {
		e.Message = fallbackMessage(status, body)
	}
	if e.Code == "invalid_grant" {
		e.Code = store.CodeInvalidCredentials
	}
	return e
}

// SignInWithPassword implements store.Authenticator.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*store.Session, error) {
	body, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   authPath + "token",
		query:  url.Values{"grant_type": {"password"}},
		body:   map[string]string{"email": email, "password": password},
		bearer: c.apiKey,
	}, decodeAuthError)
	if err != nil {
		return nil, err
	}

	var tr tokenResponse
	if err := decode(body, &tr); err != nil {
		return nil, err
	}
	if tr.AccessToken == "" {
		return nil, nil
	}
	return &store.Session{
		AccessToken:  tr.AccessToken,
		TokenType:    tr.TokenType,
		RefreshToken: tr.RefreshToken,
		ExpiresAt:    tr.ExpiresAt,
		User:         tr.User,
	}, nil
}

// SignOut implements store.Authenticator.
func (c *Client) SignOut(ctx context.Context, session *store.Session) error {
	if session == nil || session.AccessToken == "" {
		return nil
	}
	_, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   authPath + "logout",
		bearer: session.AccessToken,
	}, decodeAuthError)
	return err
}
