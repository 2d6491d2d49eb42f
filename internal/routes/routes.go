package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/auth"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/cache"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/identity"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/middleware"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	Influencer  *handlers.InfluencerHandler
	Campaign    *handlers.CampaignHandler
	Interaction *handlers.InteractionHandler
	Intent      *handlers.IntentHandler
	Admin       *handlers.AdminHandler
	AI          *handlers.AIHandler
}

func Setup(app *fiber.App, cfg *config.Config, verifier auth.Verifier, rdb *cache.Client, h Handlers) {
	lc := limiter.Config{
		Max:               cfg.RateLimitPerMinute,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Error: true, Message: "Too many requests", Code: "RATE_LIMITED",
			})
		},
	}
	// Shared counters across instances when Redis is configured.
	if s := rdb.Storage(); s != nil {
		lc.Storage = s
	}
	// Registered before the gate so rejected tokens are counted too and
	// cannot drive unlimited calls to the identity provider.
	v1 := app.Group("/api/v1", limiter.New(lc))

	// Everything behind this point is authenticated unless allow-listed.
	app.Use(middleware.AccessGate(verifier, middleware.NewPublicRoutes(cfg.PublicPaths, cfg.PublicPrefixes)))

	app.Get("/", h.Health.Root)
	app.Get("/docs", h.Health.Docs)

	v1.Get("/health", h.Health.Check)
	v1.Get("/test-db", h.Health.TestDB)

	// Auth: the prefix is public, so identity-bound routes guard themselves.
	authGroup := v1.Group("/auth")
	authGroup.Get("/status", h.Auth.Status)
	authGroup.Get("/me", middleware.RequireIdentity(), h.Auth.Me)
	authGroup.Get("/me/detailed", middleware.RequireIdentity(), h.Auth.Detailed)
	authGroup.Put("/me", middleware.RequireIdentity(), h.Auth.UpdateMe)
	authGroup.Get("/permissions", middleware.RequireIdentity(), h.Auth.Permissions)

	// Fixed paths first so they are not captured by /:id.
	inf := v1.Group("/influencers")
	inf.Get("/", h.Influencer.List)
	inf.Get("/my-list", h.Influencer.MyList)
	inf.Get("/my/crm", h.Influencer.CRM)
	inf.Post("/add-to-my-list", h.Influencer.AddToList)
	inf.Delete("/remove-from-my-list/:id", h.Influencer.Remove)
	inf.Put("/update-my-influencer/:id", h.Influencer.UpdateSaved)
	inf.Get("/check-saved/:id", h.Influencer.CheckSaved)
	inf.Put("/:id/relationship", h.Influencer.Relationship)
	inf.Put("/:id/follow-up", h.Influencer.FollowUp)
	inf.Get("/:id", h.Influencer.Get)

	campaigns := v1.Group("/campaigns")
	campaigns.Post("/", h.Campaign.Create)
	campaigns.Get("/", h.Campaign.List)
	campaigns.Get("/:id", h.Campaign.Get)
	campaigns.Put("/:id", h.Campaign.Update)
	campaigns.Delete("/:id", h.Campaign.Delete)
	campaigns.Post("/:id/influencers", h.Campaign.AssignInfluencer)
	campaigns.Get("/:id/influencers", h.Campaign.ListAssignments)
	campaigns.Put("/:id/influencers/:influencer_id", h.Campaign.UpdateAssignment)
	campaigns.Delete("/:id/influencers/:influencer_id", h.Campaign.RemoveAssignment)

	interactions := v1.Group("/interactions")
	interactions.Post("/", h.Interaction.Create)
	interactions.Get("/", h.Interaction.List)
	interactions.Get("/:id", h.Interaction.Get)
	interactions.Put("/:id", h.Interaction.Update)
	interactions.Delete("/:id", h.Interaction.Delete)
	interactions.Post("/:id/attachment", h.Interaction.Attach)

	pro := middleware.RequireTier(identity.TierPro)
	intent := v1.Group("/intent")
	intent.Post("/audience-segments", h.Intent.CreateSegment)
	intent.Get("/audience-segments", h.Intent.ListSegments)
	intent.Post("/intent-signals", h.Intent.RecordSignal)
	intent.Post("/trust-relationships", h.Intent.RecordTrust)
	intent.Get("/buyer-alignment-scores", pro, h.Intent.AlignmentScores)
	intent.Post("/audience-overlap", pro, h.Intent.AudienceOverlap)
	intent.Get("/trust-graph", pro, h.Intent.TrustGraph)

	admin := v1.Group("/admin")
	admin.Get("/analytics", middleware.RequireRole(identity.RoleAdmin), h.Admin.Analytics)
	admin.Get("/status-distribution", middleware.RequireRole(identity.RoleAdmin), h.Admin.StatusDistribution)
	admin.Get("/users", middleware.RequireRole(identity.RoleManager), h.Admin.Users)
	admin.Post("/influencers", middleware.RequireRole(identity.RoleAdmin), h.Influencer.AdminCreate)

	ai := v1.Group("/ai")
	ai.Post("/generate-message", h.AI.Generate)
	ai.Post("/generate-message-fallback", h.AI.Fallback)
}
