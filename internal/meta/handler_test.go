package meta_test

import (
	"net/http"
	"path/filepath"
	"testing"

	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/meta"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type healthResponse struct {
	Status string `json:"status"`
	Checks struct {
		Database struct {
			Status string `json:"status"`
			Driver string `json:"driver"`
		} `json:"database"`
	} `json:"checks"`
}

func TestHealth(t *testing.T) {
	cfg := testutil.NewTestConfig(t)
	cfg.Database.Name = filepath.Join(t.TempDir(), "health.db")

	db, err := database.New(cfg)
	require.NoError(t, err)

	router := testutil.SetupTestRouter()
	router.GET("/health", meta.NewHandler(cfg, db).Health)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/health"})
	require.Equal(t, http.StatusOK, recorder.Code)

	var healthy healthResponse
	testutil.ParseResponse(t, recorder, &healthy)
	assert.Equal(t, "healthy", healthy.Status)
	assert.Equal(t, "sqlite", healthy.Checks.Database.Driver)

	require.NoError(t, db.Close())

	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/health"})
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	var unhealthy healthResponse
	testutil.ParseResponse(t, recorder, &unhealthy)
	assert.Equal(t, "unhealthy", unhealthy.Status)
	assert.Equal(t, "down", unhealthy.Checks.Database.Status)
}
