package rabbitmq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/muhammadheryan/sanitary-shop/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelayMillis(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expiresAt time.Time
		want      int64
	}{
		{name: "future", expiresAt: now.Add(3 * time.Second), want: 3000},
		{name: "now", expiresAt: now, want: 0},
		{name: "past clamps to zero", expiresAt: now.Add(-time.Minute), want: 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, delayMillis(tt.expiresAt, now))
		})
	}
}

func TestNewPublishing(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	exp := model.ToastExpiration{SessionID: "s1", ToastID: 7, ExpiresAt: now.Add(1500 * time.Millisecond)}

	msg, err := newPublishing(exp, now)
	require.NoError(t, err)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, int64(1500), msg.Headers["x-delay"])

	got, err := decodeExpiration(msg.Body)
	require.NoError(t, err)
	assert.Equal(t, exp.SessionID, got.SessionID)
	assert.Equal(t, exp.ToastID, got.ToastID)
	assert.True(t, exp.ExpiresAt.Equal(got.ExpiresAt))
}

func TestDecodeExpiration_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "oops"},
		{name: "missing session", body: `{"toast_id":1}`},
		{name: "missing toast id", body: `{"session_id":"s1"}`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeExpiration([]byte(tt.body))
			assert.Error(t, err)
		})
	}
}

func TestConsumer_CallExpireAPI(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "success", status: http.StatusOK},
		{name: "client error is not retried", status: http.StatusBadRequest},
		{name: "server error is retried", status: http.StatusInternalServerError, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var gotPath, gotAuth string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.EscapedPath()
				gotAuth = r.Header.Get("Authorization")
				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(map[string]bool{"removed": true})
			}))
			defer srv.Close()

			c := &Consumer{apiURL: srv.URL, apiKey: "internal-key", client: srv.Client()}
			err := c.callExpireAPI(context.Background(), model.ToastExpiration{SessionID: "a b", ToastID: 42})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, "/internal/v1/notifications/a%20b/42/expire", gotPath)
			assert.Equal(t, "Bearer internal-key", gotAuth)
		})
	}
}
