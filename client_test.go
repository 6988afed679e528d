package payflow_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	payflow "github.com/wekeepgrowing/payflow-go"
)

func newTestClient(t *testing.T, handler http.Handler) (*payflow.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := payflow.NewClient(payflow.Config{
		APIKey:  "sk_test_123",
		BaseURL: server.URL,
	})
	require.NoError(t, err)
	return client, server
}

func TestNewClient(t *testing.T) {
	t.Run("requires api key", func(t *testing.T) {
		_, err := payflow.NewClient(payflow.Config{})
		assert.ErrorIs(t, err, payflow.ErrMissingAPIKey)
	})

	t.Run("rejects malformed base url", func(t *testing.T) {
		_, err := payflow.NewClient(payflow.Config{
			APIKey:  "sk_test_123",
			BaseURL: "not a url",
		})
		assert.Error(t, err)
	})

	t.Run("accepts minimal config", func(t *testing.T) {
		client, err := payflow.NewClient(payflow.Config{APIKey: "sk_test_123"})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestRequestHeaders(t *testing.T) {
	var gotHeaders http.Header
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		w.Write([]byte(`{"data": {"total": 0, "items": []}}`))
	}))

	_, err := client.ListProducts(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, "sk_test_123", gotHeaders.Get("x-api-key"))
	assert.Equal(t, "application/json", gotHeaders.Get("Content-Type"))
	assert.Contains(t, gotHeaders.Get("User-Agent"), "payflow-go/")
}

func TestStatusClassification(t *testing.T) {
	t.Run("404 with structured body", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"msg": "not found", "code": 404}`))
		}))

		_, err := client.GetProduct(context.Background(), "prod_missing")
		require.Error(t, err)

		var apiErr *payflow.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 404, apiErr.Status)
		assert.Equal(t, "not found", apiErr.Message)
		assert.Equal(t, "404", apiErr.Code)
		assert.Equal(t, payflow.ErrKindNotFound, apiErr.Kind)
	})

	t.Run("401 maps to auth kind", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message": "invalid api key"}`))
		}))

		_, err := client.ListProducts(context.Background(), nil)
		assert.Equal(t, payflow.ErrKindAuth, payflow.KindOf(err))
	})

	t.Run("undecodable error body keeps status text", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("<html>bad gateway</html>"))
		}))

		_, err := client.ListProducts(context.Background(), nil)
		require.Error(t, err)

		var apiErr *payflow.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 502, apiErr.Status)
		assert.Equal(t, http.StatusText(502), apiErr.Message)
		assert.Equal(t, payflow.ErrKindServer, apiErr.Kind)
		assert.Equal(t, "<html>bad gateway</html>", apiErr.Raw)
	})
}

func TestEmbeddedFailureInSuccess(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": 401, "msg": "invalid key"}`))
	}))

	_, err := client.ListTransactions(context.Background(), nil)
	require.Error(t, err)

	var apiErr *payflow.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Status)
	assert.Equal(t, "invalid key", apiErr.Message)
	assert.Equal(t, payflow.ErrKindAuth, apiErr.Kind)
}

func TestMalformedSuccessBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))

	_, err := client.ListProducts(context.Background(), nil)
	require.Error(t, err)

	var clientErr *payflow.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, payflow.ErrCodeParse, clientErr.Code)
	assert.Contains(t, clientErr.Details, "not json at all")
}

func TestTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(server.Close)

	client, err := payflow.NewClient(payflow.Config{
		APIKey:  "sk_test_123",
		BaseURL: server.URL,
		Timeout: 10 * time.Millisecond,
	})
	require.NoError(t, err)

	start := time.Now()
	_, err = client.ListProducts(context.Background(), nil)
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.True(t, payflow.IsTimeout(err), "expected timeout, got %v", err)
	assert.Less(t, elapsed, 500*time.Millisecond, "timeout was not bounded")
}

func TestTransportError(t *testing.T) {
	client, err := payflow.NewClient(payflow.Config{
		APIKey:  "sk_test_123",
		BaseURL: "http://127.0.0.1:1", // nothing listens here
	})
	require.NoError(t, err)

	_, err = client.ListProducts(context.Background(), nil)
	require.Error(t, err)

	var clientErr *payflow.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.False(t, errors.Is(err, payflow.ErrMissingAPIKey))
	assert.False(t, payflow.IsTimeout(err))
}
