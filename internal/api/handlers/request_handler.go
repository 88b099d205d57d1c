package handlers

import (
	"Food-Share-Backend/domain"
	"Food-Share-Backend/internal/api/presenters"
	"Food-Share-Backend/internal/middleware"
	"Food-Share-Backend/pkg/request"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	RequestHandler interface {
		CreateRequest(c *fiber.Ctx) error
		GetMyRequests(c *fiber.Ctx) error
	}

	requestHandler struct {
		requestService request.RequestService
	}
)

func NewRequestHandler(requestService request.RequestService) RequestHandler {
	return &requestHandler{requestService: requestService}
}

func (h *requestHandler) CreateRequest(c *fiber.Ctx) error {
	req := new(domain.CreateFoodRequestRequest)
	if err := c.BodyParser(req); err != nil {
		if isTypeError(err, "quantity") {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidQuantity, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.requestService.CreateRequest(c.Context(), *req, middleware.UserID(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFoodItemIDRequired):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFoodItemIDRequired, nil)
		case errors.Is(err, domain.ErrInvalidRequestQuantity):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidQuantity, err)
		case errors.Is(err, domain.ErrFoodItemNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFoodItemNotFound, nil)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateRequest, err)
		}
	}

	return presenters.SuccessResponse(c, domain.CreateFoodRequestResponse{
		Message: domain.MessageSuccessCreateRequest,
		Request: *res,
	}, fiber.StatusCreated)
}

func (h *requestHandler) GetMyRequests(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized, domain.ErrUnauthorized)
	}

	requests, err := h.requestService.GetMyRequests(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrParseUUID) {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRequests, err)
	}
	return presenters.SuccessResponse(c, requests, fiber.StatusOK)
}
