package handlers

import (
	"Food-Share-Backend/domain"
	"Food-Share-Backend/internal/api/presenters"
	"Food-Share-Backend/internal/middleware"
	"Food-Share-Backend/pkg/donation"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	DonationHandler interface {
		GetMyDonations(c *fiber.Ctx) error
	}

	donationHandler struct {
		donationService donation.DonationService
	}
)

func NewDonationHandler(donationService donation.DonationService) DonationHandler {
	return &donationHandler{donationService: donationService}
}

func (h *donationHandler) GetMyDonations(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized, domain.ErrUnauthorized)
	}

	donations, err := h.donationService.GetMyDonations(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrParseUUID) {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDonations, err)
	}
	return presenters.SuccessResponse(c, donations, fiber.StatusOK)
}
