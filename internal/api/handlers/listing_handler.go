package handlers

import (
	"Food-Share-Backend/domain"
	"Food-Share-Backend/internal/api/presenters"
	"Food-Share-Backend/internal/middleware"
	"Food-Share-Backend/internal/utils"
	"Food-Share-Backend/pkg/listing"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ListingHandler interface {
		GetListings(c *fiber.Ctx) error
		GetMyListings(c *fiber.Ctx) error
		GetListingByID(c *fiber.Ctx) error
		CreateListing(c *fiber.Ctx) error
		UpdateListing(c *fiber.Ctx) error
		DeleteListing(c *fiber.Ctx) error
		UploadListingImage(c *fiber.Ctx) error
	}

	listingHandler struct {
		listingService listing.ListingService
		validator      *validator.Validate
	}
)

func NewListingHandler(listingService listing.ListingService, validator *validator.Validate) ListingHandler {
	return &listingHandler{
		listingService: listingService,
		validator:      validator,
	}
}

func (h *listingHandler) GetListings(c *fiber.Ctx) error {
	listings, err := h.listingService.GetListings(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetListings, err)
	}
	return presenters.SuccessResponse(c, listings, fiber.StatusOK)
}

func (h *listingHandler) GetMyListings(c *fiber.Ctx) error {
	listings, err := h.listingService.GetMyListings(c.Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrParseUUID) {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetListings, err)
	}
	return presenters.SuccessResponse(c, listings, fiber.StatusOK)
}

func (h *listingHandler) GetListingByID(c *fiber.Ctx) error {
	res, err := h.listingService.GetListingByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageListingNotFound, nil)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetListings, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *listingHandler) CreateListing(c *fiber.Ctx) error {
	req := new(domain.CreateListingRequest)
	if err := c.BodyParser(req); err != nil {
		if isTypeError(err, "quantity") {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidQuantity, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateListing, errors.New(utils.FormatValidationError(err)))
	}

	res, err := h.listingService.CreateListing(c.Context(), *req, middleware.UserID(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidQuantity):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidQuantity, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSaveListing, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *listingHandler) UpdateListing(c *fiber.Ctx) error {
	req := new(domain.UpdateListingRequest)
	if err := c.BodyParser(req); err != nil {
		if isTypeError(err, "quantity") {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidQuantity, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.listingService.UpdateListing(c.Context(), c.Params("id"), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrListingNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageListingNotFound, nil)
		case errors.Is(err, domain.ErrNegativeQuantity), errors.Is(err, domain.ErrInvalidQuantity):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidQuantity, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateListing, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *listingHandler) DeleteListing(c *fiber.Ctx) error {
	if err := h.listingService.DeleteListing(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageListingNotFound, nil)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteListing, err)
	}
	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageSuccessDeleteListing)
}

func (h *listingHandler) UploadListingImage(c *fiber.Ctx) error {
	image, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, domain.ErrImageRequired)
	}

	req := domain.UploadListingImageRequest{
		ListingID: c.Params("id"),
		Image:     image,
	}

	res, err := h.listingService.UploadListingImage(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrImageStorageDisabled):
			return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessageFailedUploadImage, err)
		case errors.Is(err, domain.ErrListingNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageListingNotFound, nil)
		case errors.Is(err, domain.ErrInvalidImageFormat):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadImage, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
