package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/creatorpulse/creatorpulse/internal/cache"
	"github.com/creatorpulse/creatorpulse/internal/db"
	"github.com/creatorpulse/creatorpulse/internal/metrics"
	"github.com/creatorpulse/creatorpulse/internal/models"
	"github.com/creatorpulse/creatorpulse/internal/scraper"
	"github.com/creatorpulse/creatorpulse/pkg/logging"
)

// Router sets up API routes
type Router struct {
	scrapeAPI    *ScrapeAPI
	accountAPI   *AccountAPI
	analyticsAPI *AnalyticsAPI
	db           *db.DB
	logger       *zap.Logger
}

// NewRouter wires repositories, sources and pipelines into the API surface
func NewRouter(database *db.DB, redisCache *cache.Cache, scraperClient *scraper.Client) (*Router, error) {
	repo := db.NewRepository(database.DB)
	analyticsRepo := db.NewAnalyticsRepository(repo)
	accountRepo := db.NewAccountRepository(repo)

	pipelines, err := BuildPipelines(scraperClient, redisCache, analyticsRepo)
	if err != nil {
		return nil, err
	}

	return &Router{
		scrapeAPI:    NewScrapeAPI(pipelines),
		accountAPI:   NewAccountAPI(accountRepo),
		analyticsAPI: NewAnalyticsAPI(analyticsRepo),
		db:           database,
		logger:       logging.GetLogger().With(zap.String("component", "api-router")),
	}, nil
}

// BuildPipelines constructs one pipeline per supported platform.
func BuildPipelines(scraperClient *scraper.Client, redisCache *cache.Cache, store metrics.Store) (map[string]*metrics.Pipeline, error) {
	sources := []metrics.Source{
		metrics.NewInstagramSource(scraperClient),
		metrics.NewLinkedInSource(scraperClient),
		metrics.NewTwitterSource(scraperClient, redisCache),
	}

	pipelines := make(map[string]*metrics.Pipeline, len(sources))
	for _, source := range sources {
		pipeline, err := metrics.NewPipeline(source, store)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s pipeline: %w", source.Platform(), err)
		}
		pipelines[source.Platform()] = pipeline
	}
	if len(pipelines) != len(models.Platforms) {
		return nil, fmt.Errorf("expected %d pipelines, built %d", len(models.Platforms), len(pipelines))
	}
	return pipelines, nil
}

// SetupRoutes sets up all API routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	engine.GET("/health", r.healthHandler)
	engine.GET("/.well-known/healthcheck.json", r.healthHandler)

	engine.POST("/scrape/:platform", r.scrapeAPI.Scrape)
	engine.POST("/accounts", r.accountAPI.Connect)
	engine.GET("/accounts/:user_id", r.accountAPI.List)
	engine.GET("/analytics/:user_id", r.analyticsAPI.Get)
}

// healthHandler handles health check requests
func (r *Router) healthHandler(c *gin.Context) {
	if err := r.db.Health(c.Request.Context()); err != nil {
		r.logger.Error("Health check failed", zap.Error(err))
		c.JSON(503, gin.H{
			"status":  "DEGRADED",
			"service": "creatorpulse-api",
		})
		return
	}
	c.JSON(200, gin.H{
		"status":  "OK",
		"service": "creatorpulse-api",
	})
}
