package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/eventura/eventura-backend/internal/config"
	"github.com/eventura/eventura-backend/internal/handler"
	"github.com/eventura/eventura-backend/internal/middleware"
	"github.com/eventura/eventura-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Student   *handler.StudentHandler
	College   *handler.CollegeHandler
	Event     *handler.EventHandler
	Rating    *handler.RatingHandler
	Analytics *handler.AnalyticsHandler
	Stats     *handler.StatsHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response can be traced.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally; listing payloads compress well.
	router.Use(middleware.Brotli())

	// Every miss is JSON, never HTML.
	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrEndpointNotFound)
	})

	// Health check.
	router.GET("/health", handlers.Stats.Health)

	// Search is the only endpoint taking a request body; rate-limit it per IP.
	searchLimiter := middleware.NewRateLimiter(30, time.Minute)

	api := router.Group("/api/v1")
	{
		// ─── Stats ─────────────────────────────────────────────────────
		api.GET("/stats", handlers.Stats.GetStats)
		api.GET("/stats/by-college", handlers.Stats.StatsByCollege)

		// ─── Students ──────────────────────────────────────────────────
		api.GET("/students", handlers.Student.ListStudents)
		api.GET("/students/top3", handlers.Student.Top3Students)
		api.GET("/students/:id", handlers.Student.GetStudent)
		api.POST("/students/search", searchLimiter.Middleware(), handlers.Student.SearchStudents)

		// ─── Colleges ──────────────────────────────────────────────────
		api.GET("/colleges", handlers.College.ListColleges)
		api.GET("/colleges/leaderboard", handlers.College.Leaderboard)
		api.GET("/colleges/:id", handlers.College.GetCollege)

		// ─── Events ────────────────────────────────────────────────────
		api.GET("/events", handlers.Event.ListEvents)
		api.GET("/events/top", handlers.Event.TopEvents)

		// ─── Ratings ───────────────────────────────────────────────────
		api.GET("/ratings/global", handlers.Rating.GlobalRating)
		api.GET("/ratings/college/:id", handlers.Rating.CollegeRating)

		// ─── Analytics ─────────────────────────────────────────────────
		// Aggregates are cache-backed server-side; let clients reuse them too.
		analytics := api.Group("/analytics")
		analytics.Use(middleware.CacheControl(int(cfg.CacheTTL / time.Second)))
		{
			analytics.GET("/distribution", handlers.Analytics.Distribution)
			analytics.GET("/top-by-college", handlers.Analytics.TopByCollege)
		}
	}

	return router
}
