// Package payflow is a Go client for the Payflow payment-processing API.
//
// A Client wraps one API credential and exposes a typed method per remote
// operation. The wire protocol is JSON with snake_case keys; entities on
// this side use lowerCamelCase fields, and the client transcodes between
// the two on every call.
package payflow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/payflow-go/internal/transcode"
)

// Version is the library version reported in the User-Agent header.
const Version = "0.3.0"

const (
	liveBaseURL    = "https://api.payflow.com"
	sandboxBaseURL = "https://sandbox.payflow.com"

	defaultTimeout = 30 * time.Second

	userAgent    = "payflow-go/" + Version
	apiKeyHeader = "x-api-key"
)

// Config configures a Client. Only APIKey is required; the zero value of
// LiveMode routes all calls to the sandbox environment.
type Config struct {
	// APIKey authenticates every request.
	APIKey string `yaml:"api_key" validate:"required"`

	// LiveMode selects the production base URL. Defaults to sandbox.
	LiveMode bool `yaml:"live_mode"`

	// BaseURL overrides the environment-derived base URL when set.
	BaseURL string `yaml:"base_url" validate:"omitempty,url"`

	// Timeout bounds each request. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout"`

	// Logger receives structured request/failure logs. Defaults to a nop
	// logger.
	Logger *zap.Logger `yaml:"-"`

	// HTTPClient overrides the transport. Connection pooling is left
	// entirely to it.
	HTTPClient *http.Client `yaml:"-"`
}

// Client is a Payflow API client. It holds no mutable state, so a single
// instance may be shared across goroutines.
type Client struct {
	apiKey     string
	baseURL    string
	timeout    time.Duration
	logger     *zap.Logger
	httpClient *http.Client
}

var validate = validator.New()

// NewClient builds a Client from cfg.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	baseURL := sandboxBaseURL
	if cfg.LiveMode {
		baseURL = liveBaseURL
	}
	if cfg.BaseURL != "" {
		baseURL = cfg.BaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		timeout:    timeout,
		logger:     logger,
		httpClient: httpClient,
	}, nil
}

// do performs one request/response cycle: build the URL, transcode and
// serialize the body, issue the call bounded by the configured timeout, and
// either classify the failure or return the decoded payload in internal
// form. One attempt per invocation; retrying is the caller's business.
func (c *Client) do(ctx context.Context, method, path string, query map[string]interface{}, body interface{}) (interface{}, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reqURL := c.baseURL + path
	if len(query) > 0 {
		vals := url.Values{}
		for k, v := range query {
			if v == nil {
				continue
			}
			vals.Set(k, fmt.Sprint(v))
		}
		if encoded := vals.Encode(); encoded != "" {
			reqURL += "?" + encoded
		}
	}

	var reqBody io.Reader
	if body != nil && method != http.MethodGet && method != http.MethodHead {
		wire, err := toWire(body)
		if err != nil {
			return nil, &ClientError{
				Code:    ErrCodeMarshal,
				Message: "failed to prepare request body",
				Details: err.Error(),
			}
		}
		reqBody = bytes.NewReader(wire)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, &ClientError{
			Code:    ErrCodeRequest,
			Message: "failed to create request",
			Details: err.Error(),
		}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set(apiKeyHeader, c.apiKey)

	c.logger.Debug("payflow: sending request",
		zap.String("method", method),
		zap.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.transportError(method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ClientError{
			Code:    ErrCodeResponse,
			Message: "failed to read response body",
			Details: err.Error(),
		}
	}

	if resp.StatusCode >= 400 {
		return nil, c.apiError(method, path, resp.StatusCode, respBody)
	}

	var decoded interface{}
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, &ClientError{
			Code:    ErrCodeParse,
			Message: "failed to parse response",
			Details: string(respBody),
		}
	}

	// Some endpoints report logical failures with a 2xx transport status
	// and an HTTP-like code in the body.
	if m, ok := decoded.(map[string]interface{}); ok {
		if status := embeddedStatus(m); status != 0 {
			return nil, c.apiError(method, path, status, respBody)
		}
	}

	return transcode.ToInternalForm(decoded), nil
}

// apiError decodes a failure payload and classifies it by status code. An
// undecodable body degrades to the bare status text.
func (c *Client) apiError(method, path string, status int, body []byte) *APIError {
	apiErr := &APIError{
		Status: status,
		Kind:   kindForStatus(status),
		Raw:    string(body),
	}

	var payload map[string]interface{}
	if json.Unmarshal(body, &payload) == nil && payload != nil {
		apiErr.Message, apiErr.Code = classifyPayload(payload)
	} else {
		apiErr.Message = http.StatusText(status)
	}

	c.logger.Error("payflow: request failed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
		zap.String("code", apiErr.Code),
		zap.String("kind", string(apiErr.Kind)))

	return apiErr
}

func (c *Client) transportError(method, path string, err error) *ClientError {
	code := ErrCodeTransport
	message := "request failed"

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		code = ErrCodeTimeout
		message = "request timed out"
	}

	c.logger.Error("payflow: transport failure",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("code", code),
		zap.Error(err))

	return &ClientError{
		Code:    code,
		Message: message,
		Details: err.Error(),
	}
}

// toWire marshals a typed request, rewrites its keys to the wire
// convention, and re-serializes. Going through the generic JSON form keeps
// the transcoder total over whatever shape the request has.
func toWire(body interface{}) ([]byte, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	return json.Marshal(transcode.ToWireForm(generic))
}

// decodeEntity converts a payload already in internal form into the typed
// entity T, unwrapping the {code, msg, data} envelope when present.
func decodeEntity[T any](payload interface{}) (*T, error) {
	if m, ok := payload.(map[string]interface{}); ok {
		if data, ok := m["data"]; ok && data != nil {
			payload = data
		}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, &ClientError{
			Code:    ErrCodeParse,
			Message: "failed to re-encode payload",
			Details: err.Error(),
		}
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &ClientError{
			Code:    ErrCodeParse,
			Message: "failed to decode entity",
			Details: err.Error(),
		}
	}
	return &out, nil
}
