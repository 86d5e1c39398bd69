package handlers

import (
	"log"

	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/dto"
	businessflow "github.com/Git-peanutsuu/OdekakeEventCalendar-app/business_flow"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// EventHandlerInterface defines the contract for event handlers
type EventHandlerInterface interface {
	List(c fiber.Ctx) error
	ByDate(c fiber.Ctx) error
	Get(c fiber.Ctx) error
	Create(c fiber.Ctx) error
	Update(c fiber.Ctx) error
	Delete(c fiber.Ctx) error
	Share(c fiber.Ctx) error
	GoogleCalendarLink(c fiber.Ctx) error
	ExportICS(c fiber.Ctx) error
}

// EventHandler handles event-related HTTP requests
type EventHandler struct {
	eventFlow businessflow.EventFlow
	validator *validator.Validate
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventFlow businessflow.EventFlow) *EventHandler {
	return &EventHandler{
		eventFlow: eventFlow,
		validator: newValidator(),
	}
}

func (h *EventHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *EventHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// List returns all events, optionally restricted to one date via ?date=
func (h *EventHandler) List(c fiber.Ctx) error {
	ctx := createRequestContext(c, "/api/events")

	if date := c.Query("date"); date != "" {
		if _, err := utils.ParseCalendarDate(date); err != nil {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid date", "INVALID_CALENDAR_DATE", nil)
		}
		events, err := h.eventFlow.ByDate(ctx, date)
		if err != nil {
			log.Println("Event list by date failed", err)
			return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list events", "EVENT_LIST_FAILED", nil)
		}
		return h.SuccessResponse(c, fiber.StatusOK, "Events retrieved", events)
	}

	events, err := h.eventFlow.List(ctx)
	if err != nil {
		log.Println("Event list failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list events", "EVENT_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Events retrieved", events)
}

// ByDate returns the events on one calendar date in insertion order
func (h *EventHandler) ByDate(c fiber.Ctx) error {
	date := c.Params("date")
	if _, err := utils.ParseCalendarDate(date); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid date", "INVALID_CALENDAR_DATE", nil)
	}

	events, err := h.eventFlow.ByDate(createRequestContext(c, "/api/events/date/:date"), date)
	if err != nil {
		log.Println("Event list by date failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list events", "EVENT_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Events retrieved", events)
}

// Get returns a single event by ID
func (h *EventHandler) Get(c fiber.Ctx) error {
	id := c.Params("id")

	event, err := h.eventFlow.Get(createRequestContext(c, "/api/events/:id"), id)
	if err != nil {
		if businessflow.IsEventNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Event not found", "EVENT_NOT_FOUND", nil)
		}

		log.Println("Event lookup failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to look up event", "EVENT_LOOKUP_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Event retrieved", event)
}

// Create stores a new event
func (h *EventHandler) Create(c fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrorList(err))
	}

	event, err := h.eventFlow.Create(createRequestContext(c, "/api/events"), &req)
	if err != nil {
		log.Println("Event create failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create event", "EVENT_CREATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, "Event created", event)
}

// Update applies a partial update to an event
func (h *EventHandler) Update(c fiber.Ctx) error {
	id := c.Params("id")

	var req dto.UpdateEventRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrorList(err))
	}

	event, err := h.eventFlow.Update(createRequestContext(c, "/api/events/:id"), id, &req)
	if err != nil {
		if businessflow.IsEventNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Event not found", "EVENT_NOT_FOUND", nil)
		}

		log.Println("Event update failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update event", "EVENT_UPDATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Event updated", event)
}

// Delete removes an event
func (h *EventHandler) Delete(c fiber.Ctx) error {
	id := c.Params("id")

	if err := h.eventFlow.Delete(createRequestContext(c, "/api/events/:id"), id); err != nil {
		if businessflow.IsEventNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Event not found", "EVENT_NOT_FOUND", nil)
		}

		log.Println("Event delete failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete event", "EVENT_DELETE_FAILED", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Share returns the formatted share text for an event
func (h *EventHandler) Share(c fiber.Ctx) error {
	id := c.Params("id")

	share, err := h.eventFlow.Share(createRequestContext(c, "/api/events/:id/share"), id)
	if err != nil {
		if businessflow.IsEventNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Event not found", "EVENT_NOT_FOUND", nil)
		}

		log.Println("Event share failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to build share text", "EVENT_SHARE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Share text built", share)
}

// GoogleCalendarLink returns the Google Calendar deep link for an event
func (h *EventHandler) GoogleCalendarLink(c fiber.Ctx) error {
	id := c.Params("id")

	link, err := h.eventFlow.GoogleCalendarURL(createRequestContext(c, "/api/events/:id/google-calendar"), id)
	if err != nil {
		if businessflow.IsEventNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Event not found", "EVENT_NOT_FOUND", nil)
		}

		log.Println("Event export failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to build calendar link", "EVENT_EXPORT_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Calendar link built", fiber.Map{"url": link})
}

// ExportICS streams the iCalendar serialization of an event
func (h *EventHandler) ExportICS(c fiber.Ctx) error {
	id := c.Params("id")

	payload, err := h.eventFlow.ExportICS(createRequestContext(c, "/api/events/:id/calendar.ics"), id)
	if err != nil {
		if businessflow.IsEventNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Event not found", "EVENT_NOT_FOUND", nil)
		}

		log.Println("Event export failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to build iCalendar export", "EVENT_EXPORT_FAILED", nil)
	}

	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="event.ics"`)
	return c.Status(fiber.StatusOK).SendString(payload)
}
