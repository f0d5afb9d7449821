package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/signing-client/internal/logging"
)

const DefaultBaseURL = "https://api.hellosign.com/v3"

// Config holds what the HTTP transport needs to reach and authenticate
// against the API. AccessToken takes precedence over APIKey; with neither
// set requests are sent unauthenticated.
type Config struct {
	BaseURL     string
	APIKey      string
	AccessToken string
	UserAgent   string
	Timeout     time.Duration
}

type Option func(*Client)

// WithHTTPClient sends requests through hc. The client is copied, never mutated.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithLogger(logger *logrus.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// Client is the resty-backed implementation of ITransport. It is immutable
// after construction and safe for concurrent use.
type Client struct {
	baseURL    string
	config     Config
	httpClient *http.Client
	rest       *resty.Client
	logger     *logrus.Logger
}

var _ ITransport = (*Client)(nil)

func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "transport: invalid base url %q", cfg.BaseURL)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("transport: base url %q must be absolute", cfg.BaseURL)
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		config:  cfg,
		logger:  logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	httpClient := http.Client{}
	if c.httpClient != nil {
		httpClient = *c.httpClient
	}

	rest := resty.NewWithClient(&httpClient).
		SetBaseURL(c.baseURL).
		SetLogger(c.logger).
		SetHeader("Accept", "application/json")
	rest.SetTransport(logging.RoundTripper("SigningAPI", c.logger, rest.GetClient().Transport))
	if httpClient.Timeout == 0 && cfg.Timeout > 0 {
		rest.SetTimeout(cfg.Timeout)
	}
	if cfg.UserAgent != "" {
		rest.SetHeader("User-Agent", cfg.UserAgent)
	}

	c.httpClient = rest.GetClient()
	c.rest = rest
	return c, nil
}

// Anonymous returns a copy of c that sends no credentials, for the few
// endpoints that must be called without authentication.
func (c *Client) Anonymous() *Client {
	anon := *c
	anon.config.APIKey = ""
	anon.config.AccessToken = ""
	return &anon
}

func (c *Client) Get(ctx context.Context, path string) (map[string]interface{}, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body map[string]interface{}) (map[string]interface{}, error) {
	return c.do(ctx, http.MethodPost, path, encodeForm(body))
}

func (c *Client) do(ctx context.Context, method, path string, form url.Values) (map[string]interface{}, error) {
	requestID, err := uuid.NewV4()
	if err != nil {
		return nil, errors.Wrap(err, "transport: request id")
	}

	req := c.rest.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", requestID.String())
	if len(form) > 0 {
		req.SetFormDataFromValues(form)
	}
	c.authenticate(req)

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, errors.Wrapf(err, "transport: %s %s", method, path)
	}

	if !resp.IsSuccess() {
		return nil, newAPIError(resp.StatusCode(), requestID.String(), resp.Body())
	}

	return c.parseBody(path, resp.Body())
}

func (c *Client) authenticate(req *resty.Request) {
	switch {
	case c.config.AccessToken != "":
		req.SetAuthToken(c.config.AccessToken)
	case c.config.APIKey != "":
		req.SetBasicAuth(c.config.APIKey, "")
	}
}

func (c *Client) parseBody(path string, data []byte) (map[string]interface{}, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, errors.Wrapf(ErrMalformedResponse, "%s: %v", path, err)
	}

	if warnings, ok := parsed["warnings"].([]interface{}); ok {
		for _, warning := range warnings {
			c.logger.WithField("path", path).WithField("warning", warning).Warn("Transport.Warning")
		}
	}

	return parsed, nil
}

func newAPIError(status int, requestID string, data []byte) *APIError {
	apiErr := &APIError{StatusCode: status, RequestID: requestID}

	var envelope errorEnvelope
	if err := json.Unmarshal(data, &envelope); err == nil {
		apiErr.Name = envelope.Error.Name
		apiErr.Message = envelope.Error.Message
	}

	return apiErr
}
