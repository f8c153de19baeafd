package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(logger *logrus.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), RequestLogger(logger))
	router.GET("/ok", func(c *gin.Context) {
		GetLogger(c).Info("inside handler")
		c.JSON(http.StatusOK, gin.H{"request_id": GetRequestID(c)})
	})
	router.GET("/missing", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "nope"})
	})
	return router
}

func bufferLogger() (*logrus.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.DebugLevel)
	return logger, &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	var lines []map[string]interface{}
	decoder := json.NewDecoder(buf)
	for decoder.More() {
		var line map[string]interface{}
		require.NoError(t, decoder.Decode(&line))
		lines = append(lines, line)
	}
	return lines
}

func TestRequestIDIsGenerated(t *testing.T) {
	logger, _ := bufferLogger()
	router := newTestRouter(logger)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	requestID := w.Header().Get(RequestIDHeader)
	assert.Len(t, requestID, 36)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, requestID, body["request_id"])
}

func TestRequestIDIsPropagated(t *testing.T) {
	logger, _ := bufferLogger()
	router := newTestRouter(logger)

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRequestLoggerWritesAccessLine(t *testing.T) {
	logger, buf := bufferLogger()
	router := newTestRouter(logger)

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	router.ServeHTTP(httptest.NewRecorder(), req)

	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)

	assert.Equal(t, "inside handler", lines[0]["msg"])
	assert.Equal(t, "req-1", lines[0]["request_id"])

	assert.Equal(t, "API request", lines[1]["msg"])
	assert.Equal(t, "info", lines[1]["level"])
	assert.Equal(t, float64(http.StatusOK), lines[1]["status"])
	assert.Equal(t, "/ok", lines[1]["path"])
	assert.Equal(t, http.MethodGet, lines[1]["method"])
}

func TestRequestLoggerWarnsOnClientErrors(t *testing.T) {
	logger, buf := bufferLogger()
	router := newTestRouter(logger)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "warning", lines[0]["level"])
	assert.Equal(t, float64(http.StatusNotFound), lines[0]["status"])
}

func TestGetLoggerFallsBack(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.NotNil(t, GetLogger(c))
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name     string
		origins  []string
		origin   string
		expected string
	}{
		{name: "any origin", origins: []string{"*"}, origin: "http://frontend.local", expected: "*"},
		{name: "empty list allows any origin", origins: nil, origin: "http://frontend.local", expected: "*"},
		{name: "listed origin", origins: []string{"http://localhost:3000"}, origin: "http://localhost:3000", expected: "http://localhost:3000"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CORS(tt.origins))
			router.GET("/pizzas", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/pizzas", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expected, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORSRejectsUnlistedOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS([]string{"http://localhost:3000"}))
	router.GET("/pizzas", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/pizzas", nil)
	req.Header.Set("Origin", "http://evil.example")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
