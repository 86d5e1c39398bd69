package handlers

import (
	"log"
	"time"

	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/dto"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/middleware"
	businessflow "github.com/Git-peanutsuu/OdekakeEventCalendar-app/business_flow"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// AdminAuthHandlerInterface defines the contract for admin authentication handlers
type AdminAuthHandlerInterface interface {
	Login(c fiber.Ctx) error
	Logout(c fiber.Ctx) error
	Status(c fiber.Ctx) error
}

// AdminAuthHandler handles admin authentication HTTP requests
type AdminAuthHandler struct {
	authFlow     businessflow.AdminAuthFlow
	validator    *validator.Validate
	cookieSecure bool
	sameSite     string
}

// NewAdminAuthHandler creates a new admin authentication handler
func NewAdminAuthHandler(authFlow businessflow.AdminAuthFlow, cookieSecure bool, sameSite string) *AdminAuthHandler {
	return &AdminAuthHandler{
		authFlow:     authFlow,
		validator:    newValidator(),
		cookieSecure: cookieSecure,
		sameSite:     sameSite,
	}
}

func (h *AdminAuthHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *AdminAuthHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Login verifies the admin password and establishes an admin session cookie
func (h *AdminAuthHandler) Login(c fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrorList(err))
	}

	currentSID := middleware.SessionIDFromCtx(c)

	sess, err := h.authFlow.Login(createRequestContext(c, "/api/admin/login"), &req, currentSID)
	if err != nil {
		if businessflow.IsInvalidAdminPassword(err) {
			return h.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid admin password", "INVALID_ADMIN_PASSWORD", nil)
		}
		if businessflow.IsAdminSecretMissing(err) {
			log.Println("Admin login failed: password not configured")
			return h.ErrorResponse(c, fiber.StatusInternalServerError, "Admin login is not available", "ADMIN_SECRET_MISSING", nil)
		}

		log.Println("Admin login failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Login failed", "LOGIN_FAILED", nil)
	}

	c.Cookie(&fiber.Cookie{
		Name:     utils.SessionCookieName,
		Value:    sess.ID,
		Expires:  sess.ExpiresAt,
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: h.sameSite,
		Path:     "/",
	})

	return h.SuccessResponse(c, fiber.StatusOK, "Login successful", dto.AdminStatusResponse{IsAdmin: true})
}

// Logout destroys the admin session and clears the cookie. Logging out
// without a session succeeds.
func (h *AdminAuthHandler) Logout(c fiber.Ctx) error {
	sid := middleware.SessionIDFromCtx(c)

	if err := h.authFlow.Logout(createRequestContext(c, "/api/admin/logout"), sid); err != nil {
		log.Println("Admin logout failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Logout failed", "LOGOUT_FAILED", nil)
	}

	c.Cookie(&fiber.Cookie{
		Name:     utils.SessionCookieName,
		Value:    "",
		Expires:  utils.UTCNowAdd(-24 * time.Hour),
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: h.sameSite,
		Path:     "/",
	})

	return h.SuccessResponse(c, fiber.StatusOK, "Logout successful", dto.AdminStatusResponse{IsAdmin: false})
}

// Status reports whether the caller's session holds admin rights. It always
// answers 200; failures read as not-admin.
func (h *AdminAuthHandler) Status(c fiber.Ctx) error {
	sid := middleware.SessionIDFromCtx(c)

	status := h.authFlow.Status(createRequestContext(c, "/api/admin/status"), sid)
	return h.SuccessResponse(c, fiber.StatusOK, "Admin status", status)
}
