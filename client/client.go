// Package client talks to the certificate backend's REST surface
// (/api/v1). It owns the bearer credential for the session, the response
// envelope convention ({code, data, message}), and the mapping from wire
// failures to the console's error taxonomy.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultTimeout bounds every request. No operation is cancellable once
// issued, so a hung backend must not hang the console.
const DefaultTimeout = 30 * time.Second

// Client is a thin, session-aware wrapper over the backend REST API. The
// token is read by every request and only replaced between operations, on
// login/logout.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	log        *logrus.Entry
}

// Option mutates a Client during construction.
type Option func(*Client)

// WithToken seeds the client with an existing bearer credential, e.g. a
// session restored from the config file.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient swaps the underlying transport; tests use it to install a
// mock.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithLogger routes the client's debug logging.
func WithLogger(log *logrus.Logger) Option {
	return func(c *Client) { c.log = log.WithField("component", "client") }
}

// New builds a client for an API endpoint such as
// "http://localhost:8080/api/v1".
func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		log:        logrus.StandardLogger().WithField("component", "client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the API base URL the client talks to.
func (c *Client) Endpoint() string { return c.endpoint }

// SetToken replaces the session credential. An empty token makes subsequent
// calls unauthenticated.
func (c *Client) SetToken(token string) { c.token = token }

// HasSession reports whether a bearer credential is attached.
func (c *Client) HasSession() bool { return c.token != "" }

// HTTPClient exposes the transport so tests can attach a mock responder.
func (c *Client) HTTPClient() *http.Client { return c.httpClient }

// envelope is the backend's uniform response wrapper. Paged listings add
// the total/page fields.
type envelope struct {
	Code       int             `json:"code"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalPages int             `json:"totalPages"`
}

func (e *envelope) ok() bool {
	return e.Code == http.StatusOK || e.Code == http.StatusCreated
}

// do performs one round trip and decodes the envelope. Transport failures
// become NetworkError; 401 becomes AuthError; 404 becomes NotFoundError;
// 400 becomes ValidationError; any other non-success code becomes APIError.
// A nil out skips data decoding.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) (*envelope, error) {
	u := c.endpoint + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var payload *bytes.Reader
	if body != nil {
		data, err := codec.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "encoding request body")
		}
		payload = bytes.NewReader(data)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, u, payload)
	if err != nil {
		return nil, errors.Wrapf(err, "building %s %s", method, path)
	}
	req = req.WithContext(ctx)

	reqID := uuid.New().String()
	req.Header.Set("X-Request-Id", reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	log := c.log.WithFields(logrus.Fields{
		"method":    method,
		"path":      path,
		"requestId": reqID,
	})

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Debug("request failed")
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	log.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"duration": time.Since(start).String(),
	}).Debug("request completed")

	env := &envelope{}
	if err := codec.Unmarshal(raw, env); err != nil {
		return nil, errors.Wrapf(err, "decoding response of %s %s", method, path)
	}
	if env.Code == 0 {
		env.Code = resp.StatusCode
	}

	if resp.StatusCode == http.StatusUnauthorized || env.Code == http.StatusUnauthorized {
		return nil, &AuthError{Message: env.Message}
	}
	if resp.StatusCode == http.StatusNotFound || env.Code == http.StatusNotFound {
		return nil, &NotFoundError{}
	}
	if !env.ok() {
		if env.Code == http.StatusBadRequest {
			return nil, &ValidationError{Message: env.Message}
		}
		return nil, &APIError{Code: env.Code, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := codec.Unmarshal(env.Data, out); err != nil {
			return nil, errors.Wrapf(err, "decoding data of %s %s", method, path)
		}
	}
	return env, nil
}
