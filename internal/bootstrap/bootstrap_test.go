package bootstrap

import (
	"net/http"
	"testing"

	sharedError "github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/middleware"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSetupEngine_RecoversPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := NewBootstrap(testutil.NewTestConfig(t)).SetupEngine()
	engine.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	recorder := testutil.ExecuteRequest(t, engine, testutil.TestRequest{Method: http.MethodGet, URL: "/panic"})

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotEmpty(t, recorder.Header().Get(middleware.RequestIDHeader))

	var resp sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &resp)
	assert.Equal(t, sharedError.InternalServerError.Code, resp.Code)
}

func TestSetupEngine_MethodNotAllowed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := NewBootstrap(testutil.NewTestConfig(t)).SetupEngine()
	engine.GET("/only-get", func(c *gin.Context) { c.Status(http.StatusOK) })

	recorder := testutil.ExecuteRequest(t, engine, testutil.TestRequest{Method: http.MethodPost, URL: "/only-get"})
	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}
