package businessflow

import (
	"context"

	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/dto"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/repository"
)

// UserInterestFlow handles per-session event bookmarks
type UserInterestFlow interface {
	List(ctx context.Context, sessionID string) (*dto.UserInterestsResponse, error)
	Toggle(ctx context.Context, sessionID string, request *dto.ToggleInterestRequest) (*dto.ToggleInterestResponse, error)
}

// UserInterestFlowImpl implements the user interest business flow
type UserInterestFlowImpl struct {
	interestRepo repository.UserInterestRepository
	eventRepo    repository.EventRepository
}

// NewUserInterestFlow creates a new user interest flow instance
func NewUserInterestFlow(
	interestRepo repository.UserInterestRepository,
	eventRepo repository.EventRepository,
) UserInterestFlow {
	return &UserInterestFlowImpl{
		interestRepo: interestRepo,
		eventRepo:    eventRepo,
	}
}

// List returns the event IDs the given session marked as interesting
func (uf *UserInterestFlowImpl) List(ctx context.Context, sessionID string) (*dto.UserInterestsResponse, error) {
	if sessionID == "" {
		return nil, NewBusinessError("SESSION_ID_REQUIRED", "Session ID is required", ErrSessionIDRequired)
	}

	ids, err := uf.interestRepo.EventIDsBySession(ctx, sessionID)
	if err != nil {
		return nil, NewBusinessError("USER_INTEREST_LIST_FAILED", "Failed to list interests", err)
	}

	return &dto.UserInterestsResponse{EventIDs: ids}, nil
}

// Toggle flips the interest mark for one event on the given session
func (uf *UserInterestFlowImpl) Toggle(ctx context.Context, sessionID string, request *dto.ToggleInterestRequest) (*dto.ToggleInterestResponse, error) {
	if sessionID == "" {
		return nil, NewBusinessError("SESSION_ID_REQUIRED", "Session ID is required", ErrSessionIDRequired)
	}

	ev, err := uf.eventRepo.ByID(ctx, request.EventID)
	if err != nil {
		return nil, NewBusinessError("EVENT_LOOKUP_FAILED", "Failed to look up event", err)
	}
	if ev == nil {
		return nil, NewBusinessError("EVENT_NOT_FOUND", "Event not found", ErrEventNotFound)
	}

	interested, err := uf.interestRepo.Toggle(ctx, sessionID, request.EventID)
	if err != nil {
		return nil, NewBusinessError("USER_INTEREST_TOGGLE_FAILED", "Failed to toggle interest", err)
	}

	return &dto.ToggleInterestResponse{
		EventID:    request.EventID,
		Interested: interested,
	}, nil
}
