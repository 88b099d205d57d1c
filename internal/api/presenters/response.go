package presenters

import (
	"Food-Share-Backend/domain"
	"log/slog"

	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
)

type (
	ErrorBody struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Error   string `json:"error,omitempty"`
	}

	MessageBody struct {
		Message string `json:"message"`
	}
)

// ErrorResponse writes the failure envelope. Server errors are logged and
// reported, and their detail never reaches the client.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	body := ErrorBody{Status: false, Message: message}

	if status >= fiber.StatusInternalServerError {
		if message == "" {
			body.Message = domain.MessageInternalServerError
		}
		slog.Error("request failed",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
			"error", err,
		)
		if hub := sentryfiber.GetHubFromContext(c); hub != nil && err != nil {
			hub.CaptureException(err)
		}
	} else if err != nil {
		body.Error = err.Error()
	}

	return c.Status(status).JSON(body)
}

func SuccessResponse(c *fiber.Ctx, data any, status int) error {
	return c.Status(status).JSON(data)
}

func MessageResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(MessageBody{Message: message})
}

// ErrorHandler is the app-level fallback for errors that escape handlers.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := domain.MessageInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}
	if code >= fiber.StatusInternalServerError {
		return ErrorResponse(c, code, domain.MessageInternalServerError, err)
	}
	return ErrorResponse(c, code, message, nil)
}
