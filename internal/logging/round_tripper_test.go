package logging

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripper_LogsCompletedRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	logger, hook := test.NewNullLogger()
	client := &http.Client{Transport: RoundTripper("Test", logger, nil)}

	req, err := http.NewRequest(http.MethodGet, server.URL+"/account", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-Id", "req-1")

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "Transport.Test.Complete", entry.Message)
	assert.Equal(t, http.StatusAccepted, entry.Data["status"])
	assert.Equal(t, "/account", entry.Data["path"])
	assert.Equal(t, "req-1", entry.Data["requestID"])
	assert.Contains(t, entry.Data, "durationMs")
}

func TestRoundTripper_LogsError(t *testing.T) {
	logger, hook := test.NewNullLogger()
	failing := roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})
	rt := RoundTripper("Test", logger, failing)

	req := httptest.NewRequest(http.MethodPost, "http://example.invalid/account/verify", nil)
	resp, err := rt.RoundTrip(req)

	assert.Nil(t, resp)
	assert.EqualError(t, err, "connection refused")
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "Transport.Test.Error", entry.Message)
}
