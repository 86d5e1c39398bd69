package handlers

import (
	"log"
	"strconv"
	"strings"

	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/dto"
	businessflow "github.com/Git-peanutsuu/OdekakeEventCalendar-app/business_flow"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/utils"
	"github.com/gofiber/fiber/v3"
)

// CalendarHandlerInterface defines the contract for calendar handlers
type CalendarHandlerInterface interface {
	MonthView(c fiber.Ctx) error
	LastUpdated(c fiber.Ctx) error
}

// CalendarHandler handles month grid and metadata HTTP requests
type CalendarHandler struct {
	calendarFlow businessflow.CalendarFlow
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(calendarFlow businessflow.CalendarFlow) *CalendarHandler {
	return &CalendarHandler{
		calendarFlow: calendarFlow,
	}
}

func (h *CalendarHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *CalendarHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// MonthView renders the month grid. Query params: year, month (both default
// to the current UTC month), locations (comma-separated tag selection
// defaulting to "all") and selected (a YYYY-MM-DD date to mark selected).
func (h *CalendarHandler) MonthView(c fiber.Ctx) error {
	now := utils.UTCNow()
	year := now.Year()
	month := int(now.Month())

	if raw := c.Query("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid year", "INVALID_YEAR", nil)
		}
		year = v
	}
	if raw := c.Query("month"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid month", "INVALID_MONTH", nil)
		}
		month = v
	}

	selection := []string{businessflow.AllLocations}
	if raw := c.Query("locations"); raw != "" {
		selection = strings.Split(raw, ",")
	}

	selectedDate := c.Query("selected")
	if selectedDate != "" {
		if _, err := utils.ParseCalendarDate(selectedDate); err != nil {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid selected date", "INVALID_CALENDAR_DATE", nil)
		}
	}

	view, err := h.calendarFlow.MonthView(createRequestContext(c, "/api/calendar/month"),
		year, month, selection, utils.TodayCalendarDate(), selectedDate)
	if err != nil {
		if businessflow.IsInvalidMonth(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Month must be between 1 and 12", "INVALID_MONTH", nil)
		}
		if businessflow.IsInvalidYear(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Year is out of range", "INVALID_YEAR", nil)
		}

		log.Println("Month view failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to render month view", "MONTH_VIEW_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Month view rendered", view)
}

// LastUpdated returns the calendar-wide last content change timestamp
func (h *CalendarHandler) LastUpdated(c fiber.Ctx) error {
	resp, err := h.calendarFlow.LastUpdated(createRequestContext(c, "/api/calendar/last-updated"))
	if err != nil {
		log.Println("Last updated lookup failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to read last updated timestamp", "LAST_UPDATED_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Last updated retrieved", resp)
}
