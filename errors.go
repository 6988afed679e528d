package payflow

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrorKind buckets classified API failures for caller branching.
type ErrorKind string

const (
	ErrKindAPI        ErrorKind = "api"
	ErrKindAuth       ErrorKind = "auth"
	ErrKindValidation ErrorKind = "validation"
	ErrKindNotFound   ErrorKind = "not_found"
	ErrKindRateLimit  ErrorKind = "rate_limit"
	ErrKindServer     ErrorKind = "server"
)

// Generic client error codes.
const (
	ErrCodeTimeout   = "TIMEOUT"
	ErrCodeTransport = "TRANSPORT_ERROR"
	ErrCodeMarshal   = "MARSHAL_ERROR"
	ErrCodeRequest   = "REQUEST_ERROR"
	ErrCodeResponse  = "RESPONSE_ERROR"
	ErrCodeParse     = "PARSE_ERROR"
)

// ErrMissingAPIKey indicates the client was constructed without a credential.
var ErrMissingAPIKey = errors.New("api key is required")

// APIError is a failure reported by the Payflow API, either via a transport
// status >= 400 or via a failure code embedded in a 2xx body.
type APIError struct {
	Status  int       `json:"status"`
	Code    string    `json:"code,omitempty"`
	Message string    `json:"message"`
	Kind    ErrorKind `json:"kind"`
	Raw     string    `json:"raw,omitempty"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("payflow: %s (status %d, code %s)", e.Message, e.Status, e.Code)
	}
	return fmt.Sprintf("payflow: %s (status %d)", e.Message, e.Status)
}

// ClientError is a failure inside the library itself: the request never
// completed or the response could not be handled.
type ClientError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *ClientError) Error() string {
	if e.Details != "" {
		return "payflow: " + e.Message + ": " + e.Details
	}
	return "payflow: " + e.Message
}

// IsTimeout reports whether err is a client-side timeout.
func IsTimeout(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce) && ce.Code == ErrCodeTimeout
}

// KindOf returns the classification kind of err, or an empty kind when err
// is not an APIError.
func KindOf(err error) ErrorKind {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}

// kindForStatus maps an HTTP status to exactly one error kind. Statuses
// outside the mapped set fall back to the plain API kind.
func kindForStatus(status int) ErrorKind {
	switch {
	case status == 401 || status == 403:
		return ErrKindAuth
	case status == 400 || status == 422:
		return ErrKindValidation
	case status == 404:
		return ErrKindNotFound
	case status == 429:
		return ErrKindRateLimit
	case status >= 500:
		return ErrKindServer
	default:
		return ErrKindAPI
	}
}

const defaultErrorMessage = "unknown error"

// classifyPayload extracts the message and code fields from a decoded error
// payload. The API is inconsistent about field names: newer endpoints send
// "message", older ones "msg"; codes arrive as strings or numbers.
func classifyPayload(payload map[string]interface{}) (message, code string) {
	message = defaultErrorMessage
	if m, ok := payload["message"].(string); ok && m != "" {
		message = m
	} else if m, ok := payload["msg"].(string); ok && m != "" {
		message = m
	}

	switch c := payload["code"].(type) {
	case string:
		code = c
	case float64:
		code = strconv.Itoa(int(c))
	case int:
		code = strconv.Itoa(c)
	}
	return message, code
}

// embeddedStatus returns the failure status embedded in a 2xx payload, or 0
// when the payload does not carry one. The API reports some logical
// failures with transport status 200 and an HTTP-like code in the body.
func embeddedStatus(payload map[string]interface{}) int {
	c, ok := payload["code"].(float64)
	if !ok {
		return 0
	}
	switch int(c) {
	case 400, 401, 403, 404, 422, 500:
		if _, ok := payload["msg"]; ok {
			return int(c)
		}
		if _, ok := payload["message"]; ok {
			return int(c)
		}
	}
	return 0
}
