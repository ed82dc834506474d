package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/salescode/salescode-payments/internal/core/ports"
	"github.com/salescode/salescode-payments/internal/core/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router   *gin.Engine
	registry *service.GatewayRegistry
}

// newTestServer wires the real registry and dispatcher around gateways.
func newTestServer(t *testing.T, gateways ...ports.Gateway) *testServer {
	t.Helper()
	registry := service.NewGatewayRegistry(gateways...)
	dispatcher := service.NewEventDispatcher(registry, nil)
	return newTestServerWith(t, registry, dispatcher, RouterConfig{GinMode: gin.TestMode})
}

func newTestServerWith(t *testing.T, registry *service.GatewayRegistry, dispatcher EventDispatcher, cfg RouterConfig) *testServer {
	t.Helper()
	if cfg.GinMode == "" {
		cfg.GinMode = gin.TestMode
	}
	handler := NewHandler(registry, dispatcher, BuildInfo{Version: "1.0.0", Environment: "test"})
	return &testServer{router: SetupRouter(handler, cfg), registry: registry}
}

func (s *testServer) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case []byte:
		reader = bytes.NewReader(b)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

