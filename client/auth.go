package client

import (
	"context"
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// Login exchanges credentials for a bearer session and attaches it to the
// client. A rejected login surfaces as AuthError.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}
	session := &Session{}
	if _, err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, session); err != nil {
		return nil, err
	}
	c.token = session.Token
	return session, nil
}

// Logout notifies the backend and drops the local credential. The server
// call is best-effort: the credential is cleared even when it fails, and
// the error is returned only so the caller can mention it.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
	c.token = ""
	return err
}

// Profile fetches the identity behind the current session. An invalid or
// expired token yields AuthError; callers must then fall back to a fresh
// login, never proceed with the stale identity.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	user := &User{}
	if _, err := c.do(ctx, http.MethodGet, "/auth/profile", nil, nil, user); err != nil {
		return nil, err
	}
	return user, nil
}

// RestoreSession validates a stored token against the backend and installs
// it on success. On any failure the client is left unauthenticated.
func (c *Client) RestoreSession(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, &AuthError{}
	}
	if TokenExpired(token, time.Now()) {
		c.token = ""
		return nil, &AuthError{Message: "session expired"}
	}

	c.token = token
	user, err := c.Profile(ctx)
	if err != nil {
		c.token = ""
		return nil, err
	}
	return user, nil
}

// TokenExpired inspects the token's exp claim without verifying the
// signature; the backend stays authoritative, this only short-circuits the
// round trip for a token that is already dead. A token that cannot be
// parsed counts as expired.
func TokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return true
	}
	return !claims.VerifyExpiresAt(now.Unix(), false)
}
