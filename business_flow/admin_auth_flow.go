package businessflow

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/dto"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/session"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/utils"
	"golang.org/x/crypto/bcrypt"
)

// AdminAuthFlow handles the single-credential admin gate
type AdminAuthFlow interface {
	Login(ctx context.Context, request *dto.AdminLoginRequest, currentSessionID string) (*session.Session, error)
	Logout(ctx context.Context, sessionID string) error
	Status(ctx context.Context, sessionID string) *dto.AdminStatusResponse
}

// AdminAuthFlowImpl implements the admin authentication business flow
type AdminAuthFlowImpl struct {
	store        session.Store
	password     string
	passwordHash string
	sessionTTL   time.Duration
}

// NewAdminAuthFlow creates a new admin auth flow instance. passwordHash is a
// bcrypt hash and takes precedence over the plaintext password when both are
// set; when neither is set every login fails with ErrAdminSecretMissing.
func NewAdminAuthFlow(store session.Store, password, passwordHash string, sessionTTL time.Duration) AdminAuthFlow {
	if sessionTTL <= 0 {
		sessionTTL = utils.AdminSessionTTL
	}
	return &AdminAuthFlowImpl{
		store:        store,
		password:     password,
		passwordHash: passwordHash,
		sessionTTL:   sessionTTL,
	}
}

func (af *AdminAuthFlowImpl) verifyPassword(candidate string) error {
	if af.passwordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(af.passwordHash), []byte(candidate)); err != nil {
			return ErrInvalidAdminPassword
		}
		return nil
	}

	if af.password != "" {
		if subtle.ConstantTimeCompare([]byte(af.password), []byte(candidate)) != 1 {
			return ErrInvalidAdminPassword
		}
		return nil
	}

	return ErrAdminSecretMissing
}

// Login verifies the admin password and establishes an admin session. The
// caller's previous session, if any, is destroyed and a fresh ID is minted
// so an attacker-supplied cookie never becomes an admin session. The new
// session is durably saved before it is returned.
func (af *AdminAuthFlowImpl) Login(ctx context.Context, request *dto.AdminLoginRequest, currentSessionID string) (*session.Session, error) {
	if err := af.verifyPassword(request.Password); err != nil {
		if IsAdminSecretMissing(err) {
			return nil, NewBusinessError("ADMIN_SECRET_MISSING", "Admin password is not configured", err)
		}
		return nil, NewBusinessError("INVALID_ADMIN_PASSWORD", "Invalid admin password", err)
	}

	if currentSessionID != "" {
		if err := af.store.Destroy(ctx, currentSessionID); err != nil {
			return nil, NewBusinessError("SESSION_STORE_UNAVAILABLE", "Failed to rotate session", ErrSessionStoreUnavailable)
		}
	}

	id, err := session.NewSessionID()
	if err != nil {
		return nil, NewBusinessError("SESSION_ID_FAILED", "Failed to mint session ID", err)
	}

	now := utils.UTCNow()
	sess := &session.Session{
		ID:        id,
		IsAdmin:   true,
		CreatedAt: now,
		ExpiresAt: now.Add(af.sessionTTL),
	}
	if err := af.store.Save(ctx, sess); err != nil {
		return nil, NewBusinessError("SESSION_STORE_UNAVAILABLE", "Failed to save session", ErrSessionStoreUnavailable)
	}

	return sess, nil
}

// Logout destroys the caller's session. Logging out without a session, or
// twice, succeeds.
func (af *AdminAuthFlowImpl) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := af.store.Destroy(ctx, sessionID); err != nil {
		return NewBusinessError("SESSION_STORE_UNAVAILABLE", "Failed to destroy session", ErrSessionStoreUnavailable)
	}
	return nil
}

// Status reports whether the given session holds admin rights. Any failure
// to resolve the session reads as not-admin; Status never errors.
func (af *AdminAuthFlowImpl) Status(ctx context.Context, sessionID string) *dto.AdminStatusResponse {
	if sessionID == "" {
		return &dto.AdminStatusResponse{IsAdmin: false}
	}

	sess, err := af.store.Get(ctx, sessionID)
	if err != nil || sess == nil {
		return &dto.AdminStatusResponse{IsAdmin: false}
	}

	return &dto.AdminStatusResponse{IsAdmin: sess.IsAdmin}
}
