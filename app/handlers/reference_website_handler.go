package handlers

import (
	"log"

	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/dto"
	businessflow "github.com/Git-peanutsuu/OdekakeEventCalendar-app/business_flow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// ReferenceWebsiteHandlerInterface defines the contract for reference website handlers
type ReferenceWebsiteHandlerInterface interface {
	List(c fiber.Ctx) error
	Create(c fiber.Ctx) error
	Update(c fiber.Ctx) error
	Delete(c fiber.Ctx) error
}

// ReferenceWebsiteHandler handles reference website HTTP requests
type ReferenceWebsiteHandler struct {
	websiteFlow businessflow.ReferenceWebsiteFlow
	validator   *validator.Validate
}

// NewReferenceWebsiteHandler creates a new reference website handler
func NewReferenceWebsiteHandler(websiteFlow businessflow.ReferenceWebsiteFlow) *ReferenceWebsiteHandler {
	return &ReferenceWebsiteHandler{
		websiteFlow: websiteFlow,
		validator:   newValidator(),
	}
}

func (h *ReferenceWebsiteHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *ReferenceWebsiteHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// List returns all reference websites
func (h *ReferenceWebsiteHandler) List(c fiber.Ctx) error {
	sites, err := h.websiteFlow.List(createRequestContext(c, "/api/reference-websites"))
	if err != nil {
		log.Println("Reference website list failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list reference websites", "REFERENCE_WEBSITE_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Reference websites retrieved", sites)
}

// Create stores a new reference website
func (h *ReferenceWebsiteHandler) Create(c fiber.Ctx) error {
	var req dto.CreateReferenceWebsiteRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrorList(err))
	}

	site, err := h.websiteFlow.Create(createRequestContext(c, "/api/reference-websites"), &req)
	if err != nil {
		log.Println("Reference website create failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create reference website", "REFERENCE_WEBSITE_CREATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, "Reference website created", site)
}

// Update applies a partial update to a reference website
func (h *ReferenceWebsiteHandler) Update(c fiber.Ctx) error {
	id := c.Params("id")

	var req dto.UpdateReferenceWebsiteRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrorList(err))
	}

	site, err := h.websiteFlow.Update(createRequestContext(c, "/api/reference-websites/:id"), id, &req)
	if err != nil {
		if businessflow.IsReferenceWebsiteNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Reference website not found", "REFERENCE_WEBSITE_NOT_FOUND", nil)
		}

		log.Println("Reference website update failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update reference website", "REFERENCE_WEBSITE_UPDATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Reference website updated", site)
}

// Delete removes a reference website
func (h *ReferenceWebsiteHandler) Delete(c fiber.Ctx) error {
	id := c.Params("id")

	if err := h.websiteFlow.Delete(createRequestContext(c, "/api/reference-websites/:id"), id); err != nil {
		if businessflow.IsReferenceWebsiteNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Reference website not found", "REFERENCE_WEBSITE_NOT_FOUND", nil)
		}

		log.Println("Reference website delete failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete reference website", "REFERENCE_WEBSITE_DELETE_FAILED", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
