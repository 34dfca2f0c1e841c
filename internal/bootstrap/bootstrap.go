package bootstrap

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/config"
	sharedError "github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/middleware"
	"github.com/gin-gonic/gin"
)

// Bootstrap handles common server setup
type Bootstrap struct {
	cfg *config.Config
}

func NewBootstrap(cfg *config.Config) *Bootstrap {
	return &Bootstrap{
		cfg: cfg,
	}
}

// SetupEngine creates a gin engine with the common middleware chain.
// Routes are registered separately by router.Setup.
func (b *Bootstrap) SetupEngine() *gin.Engine {
	if b.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
	}

	// slog handles request logging
	gin.DefaultWriter = io.Discard
	gin.DefaultErrorWriter = io.Discard

	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	engine.Use(gin.CustomRecovery(b.recoveryHandler))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS(b.cfg))
	engine.Use(middleware.Timeout(b.cfg.Server.RequestTimeout))
	engine.Use(middleware.LoggerMiddleware())

	return engine
}

// recoveryHandler turns a panic into the standard 500 error body
func (b *Bootstrap) recoveryHandler(c *gin.Context, recovered interface{}) {
	slog.Error("Panic Recovered",
		"error", recovered,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"request_id", middleware.GetRequestID(c),
	)

	c.AbortWithStatusJSON(http.StatusInternalServerError, sharedError.InternalServerError)
}
