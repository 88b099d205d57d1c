package routes

import (
	"Food-Share-Backend/internal/api/handlers"
	"Food-Share-Backend/internal/middleware"
	"Food-Share-Backend/pkg/jwt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type Config struct {
	App              *fiber.App
	AuthHandler      handlers.AuthHandler
	ListingHandler   handlers.ListingHandler
	RequestHandler   handlers.RequestHandler
	DonationHandler  handlers.DonationHandler
	DashboardHandler handlers.DashboardHandler
	HealthHandler    handlers.HealthHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.MetricsMiddleware())
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Auth()
	c.FoodListings()
	c.FoodRequests()
	c.Donations()
	c.Dashboard()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/test", c.HealthHandler.Test)
	c.App.Get("/api/health", c.HealthHandler.Check)
	c.App.Get("/metrics", c.Middleware.MetricsHandler())
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth", limiter.New(limiter.Config{
		Max:               20,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
	}))
	auth.Post("/register", c.AuthHandler.Register)
	auth.Post("/login", c.AuthHandler.Login)
}

// FoodListings mixes relaxed and protected operations; each route states the
// identity it needs.
func (c *Config) FoodListings() {
	optional := c.Middleware.OptionalAuthMiddleware(c.JWTService)
	required := c.Middleware.AuthMiddleware(c.JWTService)

	listings := c.App.Group("/api/food/listings")
	listings.Get("", optional, c.ListingHandler.GetListings)
	listings.Post("", optional, c.ListingHandler.CreateListing)
	listings.Get("/mine", required, c.ListingHandler.GetMyListings)
	listings.Get("/:id", optional, c.ListingHandler.GetListingByID)
	listings.Put("/:id", optional, c.ListingHandler.UpdateListing)
	listings.Delete("/:id", optional, c.ListingHandler.DeleteListing)
	listings.Post("/:id/image", optional, c.ListingHandler.UploadListingImage)
}

func (c *Config) FoodRequests() {
	requests := c.App.Group("/api/food/requests")
	requests.Post("", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.RequestHandler.CreateRequest)
	requests.Get("", c.Middleware.AuthMiddleware(c.JWTService), c.RequestHandler.GetMyRequests)
}

func (c *Config) Donations() {
	c.App.Get("/api/food/donations", c.Middleware.AuthMiddleware(c.JWTService), c.DonationHandler.GetMyDonations)
}

func (c *Config) Dashboard() {
	c.App.Get("/api/dashboard", c.Middleware.AuthMiddleware(c.JWTService), c.DashboardHandler.GetSummary)
}
