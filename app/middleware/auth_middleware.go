// Package middleware contains HTTP middleware functions for request processing
package middleware

import (
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/dto"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/session"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/utils"
	"github.com/gofiber/fiber/v3"
)

// Locals keys set by the session middleware
const (
	LocalsSessionID = "session_id"
	LocalsSession   = "session"
)

// SessionMiddleware resolves the session cookie into server-side state
type SessionMiddleware struct {
	store session.Store
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(store session.Store) *SessionMiddleware {
	return &SessionMiddleware{
		store: store,
	}
}

// Load resolves the session cookie and stores the session in request locals.
// Requests without a cookie, or with a cookie naming a missing or expired
// session, proceed unauthenticated.
func (m *SessionMiddleware) Load() fiber.Handler {
	return func(c fiber.Ctx) error {
		sid := c.Cookies(utils.SessionCookieName)
		if sid == "" {
			return c.Next()
		}

		c.Locals(LocalsSessionID, sid)

		sess, err := m.store.Get(c.Context(), sid)
		if err != nil || sess == nil {
			return c.Next()
		}

		c.Locals(LocalsSession, sess)
		return c.Next()
	}
}

// RequireAdmin rejects requests whose session does not hold admin rights
func (m *SessionMiddleware) RequireAdmin() fiber.Handler {
	return func(c fiber.Ctx) error {
		sess, ok := c.Locals(LocalsSession).(*session.Session)
		if !ok || sess == nil || !sess.IsAdmin {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.APIResponse{
				Success: false,
				Message: "Admin authentication required",
				Error: dto.ErrorDetail{
					Code: "ADMIN_AUTHENTICATION_REQUIRED",
				},
			})
		}

		return c.Next()
	}
}

// SessionFromCtx returns the resolved session, nil when unauthenticated
func SessionFromCtx(c fiber.Ctx) *session.Session {
	if sess, ok := c.Locals(LocalsSession).(*session.Session); ok {
		return sess
	}
	return nil
}

// SessionIDFromCtx returns the raw cookie session ID, empty when absent
func SessionIDFromCtx(c fiber.Ctx) string {
	if sid, ok := c.Locals(LocalsSessionID).(string); ok {
		return sid
	}
	return ""
}
