package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"universe-classifier/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
// Si jwtSvc no tiene secreto, las rutas de clasificación quedan abiertas.
func NewRouter(
	logger *zap.Logger,
	authH *AuthHandler,
	classifyH *ClassifyHandler,
	jwtSvc *service.JWTService,
	limiter service.RateLimiter,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/auth/token", authH.IssueToken)

	api := r.Group("")
	if jwtSvc.Enabled() {
		api.Use(JWTAuthMiddleware(jwtSvc))
	}

	classify := api.Group("/classify", RateLimitMiddleware(limiter))
	classify.POST("", classifyH.ClassifyBatch)
	classify.POST("/one", classifyH.ClassifyOne)

	runs := api.Group("/runs")
	runs.GET("/:id", classifyH.GetRun)
	runs.GET("/:id/outcomes", classifyH.ListOutcomes)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
