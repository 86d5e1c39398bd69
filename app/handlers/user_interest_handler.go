package handlers

import (
	"log"

	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/dto"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/middleware"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/session"
	businessflow "github.com/Git-peanutsuu/OdekakeEventCalendar-app/business_flow"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// UserInterestHandlerInterface defines the contract for user interest handlers
type UserInterestHandlerInterface interface {
	List(c fiber.Ctx) error
	Toggle(c fiber.Ctx) error
}

// UserInterestHandler handles per-session bookmark HTTP requests
type UserInterestHandler struct {
	interestFlow businessflow.UserInterestFlow
	sessionStore session.Store
	validator    *validator.Validate
	cookieSecure bool
	sameSite     string
}

// NewUserInterestHandler creates a new user interest handler
func NewUserInterestHandler(interestFlow businessflow.UserInterestFlow, sessionStore session.Store, cookieSecure bool, sameSite string) *UserInterestHandler {
	return &UserInterestHandler{
		interestFlow: interestFlow,
		sessionStore: sessionStore,
		validator:    newValidator(),
		cookieSecure: cookieSecure,
		sameSite:     sameSite,
	}
}

func (h *UserInterestHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *UserInterestHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// List returns the event IDs the caller's session marked as interesting.
// Callers without a session get an empty list.
func (h *UserInterestHandler) List(c fiber.Ctx) error {
	sid := middleware.SessionIDFromCtx(c)
	if sid == "" {
		return h.SuccessResponse(c, fiber.StatusOK, "Interests retrieved", dto.UserInterestsResponse{EventIDs: []string{}})
	}

	interests, err := h.interestFlow.List(createRequestContext(c, "/api/user-interests"), sid)
	if err != nil {
		log.Println("User interest list failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list interests", "USER_INTEREST_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Interests retrieved", interests)
}

// Toggle flips the interest mark for one event on the caller's session.
// Callers without a session get one minted on the spot so bookmarks survive
// the rest of the visit.
func (h *UserInterestHandler) Toggle(c fiber.Ctx) error {
	sid := middleware.SessionIDFromCtx(c)
	if sid == "" {
		var err error
		sid, err = h.ensureSession(c)
		if err != nil {
			log.Println("Anonymous session mint failed", err)
			return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to establish session", "SESSION_STORE_UNAVAILABLE", nil)
		}
	}

	var req dto.ToggleInterestRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrorList(err))
	}

	result, err := h.interestFlow.Toggle(createRequestContext(c, "/api/user-interests/toggle"), sid, &req)
	if err != nil {
		if businessflow.IsEventNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Event not found", "EVENT_NOT_FOUND", nil)
		}

		log.Println("User interest toggle failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to toggle interest", "USER_INTEREST_TOGGLE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Interest toggled", result)
}

// ensureSession mints a non-admin session and sets its cookie
func (h *UserInterestHandler) ensureSession(c fiber.Ctx) (string, error) {
	sid, err := session.NewSessionID()
	if err != nil {
		return "", err
	}

	sess := &session.Session{
		ID:        sid,
		IsAdmin:   false,
		CreatedAt: utils.UTCNow(),
		ExpiresAt: utils.UTCNowAdd(utils.AnonymousSessionTTL),
	}
	if err := h.sessionStore.Save(c.Context(), sess); err != nil {
		return "", err
	}

	c.Cookie(&fiber.Cookie{
		Name:     utils.SessionCookieName,
		Value:    sid,
		Expires:  sess.ExpiresAt,
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: h.sameSite,
		Path:     "/",
	})

	return sid, nil
}
