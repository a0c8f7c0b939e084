package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/creatorpulse/creatorpulse/internal/db"
	"github.com/creatorpulse/creatorpulse/internal/metrics"
	"github.com/creatorpulse/creatorpulse/internal/models"
	"github.com/creatorpulse/creatorpulse/pkg/logging"
)

// ScrapeRequest is the inbound payload of a scrape invocation.
type ScrapeRequest struct {
	Handle         string  `json:"handle" binding:"required"`
	UserID         string  `json:"user_id" binding:"required,uuid"`
	BiasAdjustment float64 `json:"bias_adjustment"`
}

// ScrapeAPI serves the per-platform scrape endpoints.
type ScrapeAPI struct {
	pipelines map[string]*metrics.Pipeline
	logger    *zap.Logger
}

// NewScrapeAPI creates a new scrape API over one pipeline per platform
func NewScrapeAPI(pipelines map[string]*metrics.Pipeline) *ScrapeAPI {
	return &ScrapeAPI{
		pipelines: pipelines,
		logger:    logging.GetLogger().With(zap.String("component", "scrape-api")),
	}
}

// Scrape runs the analytics pipeline for one platform and handle
func (a *ScrapeAPI) Scrape(c *gin.Context) {
	platform := c.Param("platform")
	pipeline, ok := a.pipelines[platform]
	if !ok {
		respondError(c, NewError(http.StatusNotFound, "unknown platform: "+platform))
		return
	}

	var req ScrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be a UUID"})
		return
	}

	result, err := pipeline.Run(c.Request.Context(), userID, req.Handle, req.BiasAdjustment)
	if err != nil {
		a.logger.Error("Scrape run failed",
			zap.String("platform", platform),
			zap.String("handle", req.Handle),
			zap.Error(err))
		respondError(c, NewError(http.StatusBadGateway, err.Error()))
		return
	}

	c.JSON(http.StatusOK, result)
}

// AccountRequest is the payload for connecting a handle.
type AccountRequest struct {
	UserID   string `json:"user_id" binding:"required,uuid"`
	Platform string `json:"platform" binding:"required"`
	Handle   string `json:"handle" binding:"required"`
}

// AccountAPI serves connected-account management.
type AccountAPI struct {
	accounts *db.AccountRepository
	logger   *zap.Logger
}

// NewAccountAPI creates a new account API
func NewAccountAPI(accounts *db.AccountRepository) *AccountAPI {
	return &AccountAPI{
		accounts: accounts,
		logger:   logging.GetLogger().With(zap.String("component", "account-api")),
	}
}

// Connect registers the handle a user connected on a platform
func (a *AccountAPI) Connect(c *gin.Context) {
	var req AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidPlatform(req.Platform) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown platform: " + req.Platform})
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be a UUID"})
		return
	}
	account := &models.ConnectedAccount{
		UserID:    userID,
		Platform:  req.Platform,
		Handle:    req.Handle,
		CreatedAt: time.Now().UTC(),
	}
	if err := a.accounts.Upsert(c.Request.Context(), account); err != nil {
		a.logger.Error("Failed to upsert connected account", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "connected"})
}

// List returns the accounts a user has connected
func (a *AccountAPI) List(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be a UUID"})
		return
	}

	accounts, err := a.accounts.GetByUser(c.Request.Context(), userID)
	if err != nil {
		a.logger.Error("Failed to list connected accounts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list accounts"})
		return
	}

	c.JSON(http.StatusOK, accounts)
}

// AnalyticsAPI serves stored analytics rows.
type AnalyticsAPI struct {
	analytics *db.AnalyticsRepository
	logger    *zap.Logger
}

// NewAnalyticsAPI creates a new analytics API
func NewAnalyticsAPI(analytics *db.AnalyticsRepository) *AnalyticsAPI {
	return &AnalyticsAPI{
		analytics: analytics,
		logger:    logging.GetLogger().With(zap.String("component", "analytics-api")),
	}
}

// Get returns the stored analytics row of one user
func (a *AnalyticsAPI) Get(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be a UUID"})
		return
	}

	row, err := a.analytics.GetAnalytics(c.Request.Context(), userID)
	if err != nil {
		a.logger.Error("Failed to load analytics row", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load analytics"})
		return
	}
	if row == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no analytics for user"})
		return
	}

	c.JSON(http.StatusOK, row)
}
