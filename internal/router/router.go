package router

import (
	"net/http"

	"github.com/envelope-zero/transaction-import/internal/config"
	"github.com/envelope-zero/transaction-import/internal/controllers/healthz"
	v1 "github.com/envelope-zero/transaction-import/internal/controllers/v1"
	"github.com/envelope-zero/transaction-import/internal/controllers/version"
	"github.com/envelope-zero/transaction-import/internal/httputil"
	"github.com/envelope-zero/transaction-import/internal/models"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// This is set at build time with -ldflags "-X github.com/envelope-zero/transaction-import/internal/router.buildVersion=..."
var buildVersion = "0.0.0"

// Config sets up the router and its middlewares.
//
// The returned function unregisters the Prometheus metrics and
// must be called when the router is not used anymore.
func Config(cfg config.Config) (*gin.Engine, func(), error) {
	gin.SetMode(cfg.GinMode)

	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(cfg.APIURL))
	r.Use(MetricsMiddleware())
	r.NoMethod(func(c *gin.Context) {
		httputil.NewError(c, http.StatusMethodNotAllowed, errMethodNotAllowed)
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	if len(cfg.CORSAllowOrigins) > 0 {
		log.Debug().Strs("allowOrigins", cfg.CORSAllowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(_, _, _ string, _ int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", cfg.APIURL.String()).Str("Host", cfg.APIURL.Host).Str("Path", cfg.APIURL.Path).Msg("Router")
	log.Info().Str("version", buildVersion).Msg("Router")

	err := registerPrometheusMetrics()
	if err != nil {
		return nil, func() {}, err
	}

	teardown := func() {
		if !unregisterPrometheusMetrics() {
			log.Error().Msg("could not unregister Prometheus metrics")
		}
	}

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in
// Separating this from Config() allows us to attach it to different
// paths for different use cases, e.g. behind a reverse proxy prefix.
func AttachRoutes(cfg config.Config, group *gin.RouterGroup) {
	// Register metrics
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	if cfg.EnablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)

	healthz.RegisterRoutes(group.Group("/healthz"))
	version.RegisterRoutes(group.Group("/version"), buildVersion)

	// API v1 setup
	v1.RegisterRootRoutes(group.Group("/v1"))
	v1.RegisterCategoryRoutes(group.Group("/v1/categories"))
	v1.RegisterTransactionRoutes(group.Group("/v1/transactions"))
	v1.RegisterImportRoutes(group.Group("/v1/import"), cfg.UploadDir)
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"` // Endpoint returning the health of the backend
	Metrics string `json:"metrics" example:"https://example.com/api/metrics"` // Endpoint returning Prometheus metrics
	Version string `json:"version" example:"https://example.com/api/version"` // Endpoint returning the version of the backend
	V1      string `json:"v1" example:"https://example.com/api/v1"`           // List endpoint for all v1 endpoints
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Healthz: url + "/healthz",
			Metrics: url + "/metrics",
			Version: url + "/version",
			V1:      url + "/v1",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}
