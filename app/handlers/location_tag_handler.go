package handlers

import (
	"log"

	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/dto"
	businessflow "github.com/Git-peanutsuu/OdekakeEventCalendar-app/business_flow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// LocationTagHandlerInterface defines the contract for location tag handlers
type LocationTagHandlerInterface interface {
	List(c fiber.Ctx) error
	Create(c fiber.Ctx) error
	Update(c fiber.Ctx) error
	Delete(c fiber.Ctx) error
}

// LocationTagHandler handles location tag HTTP requests
type LocationTagHandler struct {
	tagFlow   businessflow.LocationTagFlow
	validator *validator.Validate
}

// NewLocationTagHandler creates a new location tag handler
func NewLocationTagHandler(tagFlow businessflow.LocationTagFlow) *LocationTagHandler {
	return &LocationTagHandler{
		tagFlow:   tagFlow,
		validator: newValidator(),
	}
}

func (h *LocationTagHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *LocationTagHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// List returns all location tags
func (h *LocationTagHandler) List(c fiber.Ctx) error {
	tags, err := h.tagFlow.List(createRequestContext(c, "/api/location-tags"))
	if err != nil {
		log.Println("Location tag list failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list location tags", "LOCATION_TAG_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Location tags retrieved", tags)
}

// Create stores a new location tag
func (h *LocationTagHandler) Create(c fiber.Ctx) error {
	var req dto.CreateLocationTagRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrorList(err))
	}

	tag, err := h.tagFlow.Create(createRequestContext(c, "/api/location-tags"), &req)
	if err != nil {
		log.Println("Location tag create failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create location tag", "LOCATION_TAG_CREATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, "Location tag created", tag)
}

// Update applies a partial update to a location tag
func (h *LocationTagHandler) Update(c fiber.Ctx) error {
	id := c.Params("id")

	var req dto.UpdateLocationTagRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrorList(err))
	}

	tag, err := h.tagFlow.Update(createRequestContext(c, "/api/location-tags/:id"), id, &req)
	if err != nil {
		if businessflow.IsLocationTagNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Location tag not found", "LOCATION_TAG_NOT_FOUND", nil)
		}

		log.Println("Location tag update failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update location tag", "LOCATION_TAG_UPDATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Location tag updated", tag)
}

// Delete removes a location tag. Events referencing it become untagged.
func (h *LocationTagHandler) Delete(c fiber.Ctx) error {
	id := c.Params("id")

	if err := h.tagFlow.Delete(createRequestContext(c, "/api/location-tags/:id"), id); err != nil {
		if businessflow.IsLocationTagNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Location tag not found", "LOCATION_TAG_NOT_FOUND", nil)
		}

		log.Println("Location tag delete failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete location tag", "LOCATION_TAG_DELETE_FAILED", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
