package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/genvault/genvault/internal/web"
)

type fakeStatus struct {
	tag       string
	connected bool
	uptime    time.Duration
}

func (f *fakeStatus) Tag() string           { return f.tag }
func (f *fakeStatus) Connected() bool       { return f.connected }
func (f *fakeStatus) Uptime() time.Duration { return f.uptime }

func TestStatusEndpoint(t *testing.T) {
	t.Parallel()

	server := web.New(0, &fakeStatus{
		tag:       "genvault",
		connected: true,
		uptime:    90 * time.Second,
	}, zap.NewNop())

	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, `"status":"online"`)
	assert.Contains(t, body, `"bot":"genvault"`)
	assert.Contains(t, body, `"uptime":"1m30s"`)
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	connected := web.New(0, &fakeStatus{connected: true}, zap.NewNop())
	recorder := httptest.NewRecorder()
	connected.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"discord":true`)

	disconnected := web.New(0, &fakeStatus{connected: false}, zap.NewNop())
	recorder = httptest.NewRecorder()
	disconnected.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"discord":false`)
}
