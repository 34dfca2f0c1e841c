package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/validator"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// SetupTestRouter returns a bare engine in test mode with the shared validators registered
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	_ = validator.RegisterAll()
	return gin.New()
}

// TestRequest is one call against a test router. Body is JSON encoded when set.
type TestRequest struct {
	Method  string
	URL     string
	Body    any
	Headers map[string]string
}

// Bearer returns an Authorization header carrying accessToken
func Bearer(accessToken string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + accessToken}
}

func ExecuteRequest(t *testing.T, router *gin.Engine, req TestRequest) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		require.NoError(t, err, "encode request body")
		body = bytes.NewReader(encoded)
	}

	httpReq := httptest.NewRequest(req.Method, req.URL, body)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httpReq)
	return recorder
}

// ParseResponse decodes the JSON body of recorder into v
func ParseResponse(t *testing.T, recorder *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), v), "decode response body: %s", recorder.Body.String())
}
