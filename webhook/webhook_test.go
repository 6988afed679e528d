package webhook_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wekeepgrowing/payflow-go/webhook"
)

func sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	payload := []byte(`{"event_id": "evt_1"}`)
	secret := "whsec_test"

	assert.True(t, webhook.VerifySignature(payload, sign(payload, secret), secret))
	assert.False(t, webhook.VerifySignature(payload, sign(payload, "other"), secret))
	assert.False(t, webhook.VerifySignature(payload, "not-hex", secret))
	assert.False(t, webhook.VerifySignature([]byte(`tampered`), sign(payload, secret), secret))
}

func TestParseEvent(t *testing.T) {
	secret := "whsec_test"

	t.Run("valid delivery", func(t *testing.T) {
		payload := []byte(`{
			"event_id": "evt_1",
			"event_type": "subscription.canceled",
			"created_at": "2026-08-30T10:00:00Z",
			"data": {"subscription_id": "sub_1", "cancel_at": "2026-09-01T00:00:00Z"}
		}`)

		event, err := webhook.ParseEvent(payload, sign(payload, secret), secret)
		require.NoError(t, err)

		assert.Equal(t, "evt_1", event.EventID)
		assert.Equal(t, "subscription.canceled", event.EventType)
		assert.False(t, event.CreatedAt.IsZero())
		// Data keys arrive transcoded to internal form.
		assert.Equal(t, "sub_1", event.Data["subscriptionId"])
		assert.NotContains(t, event.Data, "subscription_id")
	})

	t.Run("bad signature", func(t *testing.T) {
		payload := []byte(`{"event_id": "evt_1"}`)
		_, err := webhook.ParseEvent(payload, "deadbeef", secret)
		assert.ErrorIs(t, err, webhook.ErrInvalidSignature)
	})

	t.Run("unparseable payload", func(t *testing.T) {
		payload := []byte(`not json`)
		_, err := webhook.ParseEvent(payload, sign(payload, secret), secret)
		assert.Error(t, err)
	})
}
