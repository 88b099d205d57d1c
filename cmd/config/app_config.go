package config

import (
	"Food-Share-Backend/internal/api/handlers"
	"Food-Share-Backend/internal/api/presenters"
	"Food-Share-Backend/internal/api/routes"
	"Food-Share-Backend/internal/middleware"
	"Food-Share-Backend/internal/utils"
	"Food-Share-Backend/internal/utils/cache"
	"Food-Share-Backend/internal/utils/storage"
	"Food-Share-Backend/pkg/dashboard"
	"Food-Share-Backend/pkg/donation"
	"Food-Share-Backend/pkg/jwt"
	"Food-Share-Backend/pkg/listing"
	"Food-Share-Backend/pkg/request"
	"Food-Share-Backend/pkg/user"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// NewApp wires repositories, services and handlers onto a fiber app. rdb may
// be nil, in which case the listing feed is not cached.
func NewApp(ctx context.Context, db *gorm.DB, rdb *redis.Client) (*fiber.App, io.Closer, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: utils.GetConfig("APP_ENV") == "development",
		BodyLimit:         8 * 1024 * 1024,
		ErrorHandler:      presenters.ErrorHandler,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		return nil, nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening access log: %w", err)
	}

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Second,
	}))

	// utils
	var s3 storage.AwsS3
	if s3, err = storage.NewAwsS3(ctx); err != nil {
		if !errors.Is(err, storage.ErrNotConfigured) {
			_ = file.Close()
			return nil, nil, err
		}
		slog.Info("image storage disabled", "reason", err)
	}

	listingCache := cache.NewNoopListingCache()
	if rdb != nil {
		ttl := time.Duration(utils.GetConfigInt("LISTING_CACHE_TTL_SECONDS", 30)) * time.Second
		listingCache = cache.NewRedisListingCache(rdb, ttl)
	}

	sqlDB, err := db.DB()
	if err != nil {
		_ = file.Close()
		return nil, nil, err
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	listingRepository := listing.NewListingRepository(db)
	requestRepository := request.NewRequestRepository(db)
	donationRepository := donation.NewDonationRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	listingService := listing.NewListingService(listingRepository, listingCache, s3)
	requestService := request.NewRequestService(requestRepository, listingRepository)
	donationService := donation.NewDonationService(donationRepository)
	dashboardService := dashboard.NewDashboardService(listingRepository, requestRepository)

	// Handler
	authHandler := handlers.NewAuthHandler(userService, validator)
	listingHandler := handlers.NewListingHandler(listingService, validator)
	requestHandler := handlers.NewRequestHandler(requestService)
	donationHandler := handlers.NewDonationHandler(donationService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	healthHandler := handlers.NewHealthHandler(sqlDB)

	// routes
	routesConfig := routes.Config{
		App:              app,
		AuthHandler:      authHandler,
		ListingHandler:   listingHandler,
		RequestHandler:   requestHandler,
		DonationHandler:  donationHandler,
		DashboardHandler: dashboardHandler,
		HealthHandler:    healthHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, file, nil
}
