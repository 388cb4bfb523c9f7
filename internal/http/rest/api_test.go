package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mkamau2/jiseti/config"
	deps "github.com/mkamau2/jiseti/internal/debs"
	"github.com/mkamau2/jiseti/util/values"
	"github.com/mkamau2/jiseti/util/websockets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// envelope mirrors ServerResponse for decoding test responses.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func newTestAPI() *API {
	return &API{
		Config: &config.Config{
			Port:       5000,
			JwtSecret:  "test-secret",
			JwtExpires: "1h",
		},
		Deps: &deps.Dependencies{
			WebSocket: websockets.NewWebSocketManager(),
		},
	}
}

func doRequest(t *testing.T, api *API, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	api.setUpServerHandler().ServeHTTP(rec, req)

	var resp envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestHealthEndpoint(t *testing.T) {
	api := newTestAPI()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	api.setUpServerHandler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"Server is running"}`, rec.Body.String())
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	api := newTestAPI()

	req := httptest.NewRequest(http.MethodGet, "/api/reports/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	api.setUpServerHandler().ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(values.HeaderRequestID))
}

func TestRequestIDHeaderIsEchoed(t *testing.T) {
	api := newTestAPI()

	req := httptest.NewRequest(http.MethodGet, "/api/reports/not-a-uuid", nil)
	req.Header.Set(values.HeaderRequestID, "req-123")
	rec := httptest.NewRecorder()
	api.setUpServerHandler().ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(values.HeaderRequestID))
}
