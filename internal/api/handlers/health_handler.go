package handlers

import (
	"Food-Share-Backend/domain"
	"Food-Share-Backend/internal/api/presenters"
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

type (
	HealthHandler interface {
		Check(c *fiber.Ctx) error
		Test(c *fiber.Ctx) error
	}

	// Pinger is satisfied by *sql.DB.
	Pinger interface {
		PingContext(ctx context.Context) error
	}

	HealthResponse struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
		DB        string `json:"db"`
	}

	healthHandler struct {
		db Pinger
	}
)

func NewHealthHandler(db Pinger) HealthHandler {
	return &healthHandler{db: db}
}

func (h *healthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "ok"
	if h.db == nil {
		dbStatus = "unhealthy"
	} else if err := h.db.PingContext(ctx); err != nil {
		slog.Warn("database ping failed", "error", err)
		dbStatus = "unhealthy"
	}

	return presenters.SuccessResponse(c, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
	}, fiber.StatusOK)
}

func (h *healthHandler) Test(c *fiber.Ctx) error {
	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageBackendConnected)
}
