package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/cache"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/repository"
)

const apiVersion = "1.0.0"

type HealthHandler struct {
	db          *gorm.DB
	cache       *cache.Client
	influencers repository.InfluencerRepository
	env         string
}

func NewHealthHandler(db *gorm.DB, c *cache.Client, influencers repository.InfluencerRepository, env string) *HealthHandler {
	return &HealthHandler{db: db, cache: c, influencers: influencers, env: env}
}

func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":      "Welcome to the Fluencr B2B Influencer CRM API",
		"version":      apiVersion,
		"environment":  h.env,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"docs_url":     "/docs",
		"health_check": "/api/v1/health",
	})
}

// Docs lists every registered route.
func (h *HealthHandler) Docs(c *fiber.Ctx) error {
	type route struct {
		Method string `json:"method"`
		Path   string `json:"path"`
	}
	var out []route
	for _, r := range c.App().GetRoutes(true) {
		if r.Method == fiber.MethodHead {
			continue
		}
		out = append(out, route{Method: r.Method, Path: r.Path})
	}
	return c.JSON(fiber.Map{"version": apiVersion, "routes": out})
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(h.db); err != nil {
		dbStatus = "unhealthy"
	}
	cacheStatus := "disabled"
	if h.cache.Enabled() {
		cacheStatus = "ok"
		if err := h.cache.Ping(c.UserContext()); err != nil {
			cacheStatus = "unhealthy"
		}
	}

	status := "healthy"
	if dbStatus != "ok" {
		status = "degraded"
	}
	return c.JSON(dto.HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
		Cache:     cacheStatus,
	})
}

// TestDB runs a real query and reports how long it took.
func (h *HealthHandler) TestDB(c *fiber.Ctx) error {
	start := time.Now()
	n, err := h.influencers.Count(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.DBStatusResponse{
			Connected: false,
			Status:    "error",
		})
	}
	return c.JSON(dto.DBStatusResponse{
		Connected:      true,
		Status:         "ok",
		ResponseTimeMs: time.Since(start).Milliseconds(),
		Influencers:    n,
	})
}
