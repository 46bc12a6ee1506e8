package routes

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"weddingapi/middlewares"
	"weddingapi/models"
	"weddingapi/utils"
)

// Deps is the dependency container main fills in. Handlers only see the
// repository interfaces, never a concrete database.
type Deps struct {
	Users   models.UserRepository
	Events  models.EventRepository
	Guests  models.GuestRepository
	Budgets models.BudgetRepository

	// code registries ("event-id" / "guest-id" collections)
	EventIDs models.RegistryRepository
	GuestIDs models.RegistryRepository

	// per-process code sequences, owned by main
	EventCodes *utils.CodeSequence
	GuestCodes *utils.CodeSequence

	RDB *redis.Client
	Inv *utils.CacheInvalidator
}

func RegisterRoutes(server *gin.Engine, d *Deps) {
	// global per-IP limit
	globalLimiter := middlewares.NewRateLimiter(middlewares.LimiterConfig{
		RPS:     20,
		Burst:   40,
		IdleTTL: 3 * time.Minute,
	})
	server.Use(globalLimiter.Middleware(func(c *gin.Context) string {
		return "ip:" + c.ClientIP()
	}))

	// stricter limit on the account endpoints
	authLimiter := middlewares.NewRateLimiter(middlewares.LimiterConfig{
		RPS:     0.5,
		Burst:   2,
		IdleTTL: 10 * time.Minute,
	})
	server.POST("/signup",
		authLimiter.Middleware(func(c *gin.Context) string { return "signup:" + c.ClientIP() }),
		d.signup,
	)
	server.POST("/login",
		authLimiter.Middleware(func(c *gin.Context) string { return "login:" + c.ClientIP() }),
		d.login,
	)

	// public snapshot reads; the event nav renders before sign-in
	server.GET("/events", d.getEvents)
	server.GET("/events/:id", d.getEvent)
	server.GET("/events/live", d.liveEvents)
	server.GET("/budgets", d.getBudgets)

	auth := server.Group("/")
	auth.Use(middlewares.Authenticate)

	userLimiter := middlewares.NewRateLimiter(middlewares.LimiterConfig{
		RPS:     5,
		Burst:   10,
		IdleTTL: 10 * time.Minute,
	})
	auth.Use(userLimiter.Middleware(func(c *gin.Context) string {
		return "u:" + strconv.FormatInt(c.GetInt64("userId"), 10)
	}))

	auth.Use(middlewares.Quota(d.RDB, middlewares.QuotaRule{
		Limit:  2000,
		Window: 24 * time.Hour,
		KeyFn: func(c *gin.Context) string {
			uid := c.GetInt64("userId")
			if uid == 0 {
				return ""
			}
			return fmt.Sprintf("quota:user:%d:day", uid)
		},
	}))

	auth.POST("/events", d.createEvent)
	auth.DELETE("/events/:id", d.deleteEvent)

	auth.GET("/guests", d.getGuests)
	auth.GET("/guests/live", d.liveGuests)
	auth.POST("/guests", d.createGuest)
	auth.DELETE("/guests/:id", d.deleteGuest)
}
