// Package client implements the request gateways for every portfolio
// resource: thin typed wrappers over one HTTP core that attaches the bearer
// credential, encodes JSON or multipart bodies, and converts failures into
// the api error taxonomy. Gateways never touch application state; merging
// responses into stores is the state package's job.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/getfolio/folio/pkg/api"
	"github.com/getfolio/folio/pkg/logging"
)

// apiPrefix is prepended to every resource path.
const apiPrefix = "/api/v1"

// TokenSource supplies the current bearer credential. An empty string means
// no credential is available.
type TokenSource interface {
	Token() string
}

// Client is the HTTP core shared by all resource gateways.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      TokenSource
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithCredentials sets the bearer token source. Without one, every
// auth-required operation fails with api.ErrUnauthenticated.
func WithCredentials(creds TokenSource) Option {
	return func(c *Client) {
		c.creds = creds
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the backend at baseURL (scheme and host, no path).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// authMode controls credential handling per request.
type authMode int

const (
	// authOptional attaches the token when one is present. Public reads use
	// this; the backend, not the client, decides whether to reject.
	authOptional authMode = iota

	// authRequired fails fast with api.ErrUnauthenticated before issuing any
	// request when no token is present.
	authRequired
)

func (c *Client) token() string {
	if c.creds == nil {
		return ""
	}
	return c.creds.Token()
}

// do sends one request and returns the response body on 2xx. All failure
// paths come back as *api.RequestError.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, auth authMode) ([]byte, error) {
	token := c.token()
	if auth == authRequired && token == "" {
		return nil, api.ErrUnauthenticated
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, api.TransportError(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed", "method", method, "path", path, "requestId", requestID, "error", err)
		return nil, api.TransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, api.TransportError(err)
	}

	c.logger.Debug("request done", "method", method, "path", path, "status", resp.StatusCode, "requestId", requestID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, api.ServerError(resp.StatusCode, respBody)
	}
	return respBody, nil
}

func (c *Client) get(ctx context.Context, path string, auth authMode) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, "", nil, auth)
}

func (c *Client) delete(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodDelete, path, "", nil, authRequired)
}

func (c *Client) postJSON(ctx context.Context, path string, payload any, auth authMode) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return nil, api.TransportError(err)
	}
	return c.do(ctx, http.MethodPost, path, "application/json", &buf, auth)
}

func (c *Client) patchJSON(ctx context.Context, path string, payload any) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return nil, api.TransportError(err)
	}
	return c.do(ctx, http.MethodPatch, path, "application/json", &buf, authRequired)
}

func (c *Client) postForm(ctx context.Context, path string, form *form) ([]byte, error) {
	body, contentType, err := form.encode()
	if err != nil {
		return nil, api.TransportError(err)
	}
	return c.do(ctx, http.MethodPost, path, contentType, body, authRequired)
}

func (c *Client) patchForm(ctx context.Context, path string, form *form) ([]byte, error) {
	body, contentType, err := form.encode()
	if err != nil {
		return nil, api.TransportError(err)
	}
	return c.do(ctx, http.MethodPatch, path, contentType, body, authRequired)
}

// form collects text fields and file parts for a multipart request body.
type form struct {
	fields []formField
	files  []formFile
}

type formField struct{ key, value string }

type formFile struct {
	key      string
	filename string
	data     []byte
}

func (f *form) set(key, value string) {
	if value == "" {
		return
	}
	f.fields = append(f.fields, formField{key, value})
}

// setJSON marshals a structured value into a single text field, matching the
// backend's convention for array fields inside multipart bodies.
func (f *form) setJSON(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	f.fields = append(f.fields, formField{key, string(data)})
}

func (f *form) file(key, filename string, data []byte) {
	if len(data) == 0 {
		return
	}
	if filename == "" {
		filename = key
	}
	f.files = append(f.files, formFile{key, filename, data})
}

func (f *form) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, field := range f.fields {
		if err := w.WriteField(field.key, field.value); err != nil {
			return nil, "", err
		}
	}
	for _, file := range f.files {
		part, err := w.CreateFormFile(file.key, file.filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(file.data); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
