package client

import (
	"context"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEndpoint = "http://cert.test/api/v1"

func newTestClient(t *testing.T, opts ...Option) *Client {
	t.Helper()
	c := New(testEndpoint, opts...)
	httpmock.ActivateNonDefault(c.HTTPClient())
	t.Cleanup(httpmock.DeactivateAndReset)
	return c
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": exp.Unix(),
	})
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestLoginStoresToken(t *testing.T) {
	c := newTestClient(t)
	httpmock.RegisterResponder("POST", testEndpoint+"/auth/login",
		httpmock.NewStringResponder(200, `{
			"code": 200,
			"message": "ok",
			"data": {"token": "tok-123", "userId": 7, "username": "admin", "role": "admin"}
		}`))

	session, err := c.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", session.Token)
	assert.Equal(t, "admin", session.Username)
	assert.Equal(t, int64(7), session.UserID)
	assert.True(t, c.HasSession())
}

func TestLoginRejectedIsAuthError(t *testing.T) {
	c := newTestClient(t)
	httpmock.RegisterResponder("POST", testEndpoint+"/auth/login",
		httpmock.NewStringResponder(401, `{"code": 401, "message": "bad credentials"}`))

	_, err := c.Login(context.Background(), "admin", "wrong")
	require.Error(t, err)
	assert.True(t, IsAuthError(err))
	assert.False(t, c.HasSession())
}

func TestUnreachableBackendIsNetworkError(t *testing.T) {
	// No responder registered: httpmock refuses the connection.
	c := newTestClient(t)

	_, err := c.Login(context.Background(), "admin", "secret")
	require.Error(t, err)
	var netErr *NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestLogoutClearsTokenEvenOnFailure(t *testing.T) {
	c := newTestClient(t, WithToken("tok-123"))
	httpmock.RegisterResponder("POST", testEndpoint+"/auth/logout",
		httpmock.NewStringResponder(500, `{"code": 500, "message": "boom"}`))

	err := c.Logout(context.Background())
	assert.Error(t, err)
	assert.False(t, c.HasSession())
}

func TestRestoreSessionValidToken(t *testing.T) {
	c := newTestClient(t)
	httpmock.RegisterResponder("GET", testEndpoint+"/auth/profile",
		httpmock.NewStringResponder(200, `{
			"code": 200,
			"data": {"id": 7, "username": "admin", "role": "admin"}
		}`))

	user, err := c.RestoreSession(context.Background(), signedToken(t, time.Now().Add(time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.True(t, c.HasSession())
}

func TestRestoreSessionExpiredTokenSkipsRoundTrip(t *testing.T) {
	c := newTestClient(t)

	_, err := c.RestoreSession(context.Background(), signedToken(t, time.Now().Add(-time.Hour)))
	require.Error(t, err)
	assert.True(t, IsAuthError(err))
	assert.False(t, c.HasSession())
	assert.Equal(t, 0, httpmock.GetTotalCallCount())
}

func TestRestoreSessionRejectedTokenClearsClient(t *testing.T) {
	c := newTestClient(t)
	httpmock.RegisterResponder("GET", testEndpoint+"/auth/profile",
		httpmock.NewStringResponder(401, `{"code": 401, "message": "token invalid"}`))

	_, err := c.RestoreSession(context.Background(), signedToken(t, time.Now().Add(time.Hour)))
	require.Error(t, err)
	assert.True(t, IsAuthError(err))
	assert.False(t, c.HasSession())
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()
	assert.False(t, TokenExpired(signedToken(t, now.Add(time.Hour)), now))
	assert.True(t, TokenExpired(signedToken(t, now.Add(-time.Minute)), now))
	assert.True(t, TokenExpired("not-a-jwt", now))
}
