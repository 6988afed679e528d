// Package webhook verifies and parses Payflow webhook deliveries.
//
// Payflow signs each delivery with HMAC-SHA256 over the raw request body,
// hex-encoded in the x-payflow-signature header. Always verify before
// trusting the payload.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/wekeepgrowing/payflow-go/internal/transcode"
)

// SignatureHeader is the request header carrying the delivery signature.
const SignatureHeader = "x-payflow-signature"

var (
	// ErrInvalidSignature indicates the payload was not signed with the
	// expected secret.
	ErrInvalidSignature = errors.New("webhook signature mismatch")
)

// Event is a parsed webhook delivery. Data holds the event object with keys
// in internal (lowerCamelCase) form.
type Event struct {
	EventID   string                 `json:"eventId"`
	EventType string                 `json:"eventType"`
	CreatedAt time.Time              `json:"createdAt,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

// VerifySignature reports whether signature matches payload under secret.
// The comparison is constant-time.
func VerifySignature(payload []byte, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// ParseEvent verifies the signature and decodes the delivery into an Event.
func ParseEvent(payload []byte, signature, secret string) (*Event, error) {
	if !VerifySignature(payload, signature, secret) {
		return nil, ErrInvalidSignature
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse webhook payload: %w", err)
	}

	internal, _ := transcode.ToInternalForm(raw).(map[string]interface{})

	var event Event
	encoded, err := json.Marshal(internal)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode webhook payload: %w", err)
	}
	if err := json.Unmarshal(encoded, &event); err != nil {
		return nil, fmt.Errorf("failed to decode webhook event: %w", err)
	}
	return &event, nil
}
