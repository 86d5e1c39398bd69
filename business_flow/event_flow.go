package businessflow

import (
	"context"

	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/dto"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/services"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/models"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventFlow handles event CRUD plus the day-detail handoffs
type EventFlow interface {
	List(ctx context.Context) ([]*dto.EventResponse, error)
	Get(ctx context.Context, id string) (*dto.EventResponse, error)
	ByDate(ctx context.Context, date string) ([]*dto.EventResponse, error)
	Create(ctx context.Context, request *dto.CreateEventRequest) (*dto.EventResponse, error)
	Update(ctx context.Context, id string, request *dto.UpdateEventRequest) (*dto.EventResponse, error)
	Delete(ctx context.Context, id string) error
	Share(ctx context.Context, id string) (*dto.ShareTextResponse, error)
	GoogleCalendarURL(ctx context.Context, id string) (string, error)
	ExportICS(ctx context.Context, id string) (string, error)
}

// EventFlowImpl implements the event business flow
type EventFlowImpl struct {
	eventRepo    repository.EventRepository
	metadataRepo repository.CalendarMetadataRepository
	shareSvc     services.ShareService
	exportSvc    services.CalendarExportService
	db           *gorm.DB
}

// NewEventFlow creates a new event flow instance
func NewEventFlow(
	eventRepo repository.EventRepository,
	metadataRepo repository.CalendarMetadataRepository,
	shareSvc services.ShareService,
	exportSvc services.CalendarExportService,
	db *gorm.DB,
) EventFlow {
	return &EventFlowImpl{
		eventRepo:    eventRepo,
		metadataRepo: metadataRepo,
		shareSvc:     shareSvc,
		exportSvc:    exportSvc,
		db:           db,
	}
}

// List returns all events in insertion order
func (ef *EventFlowImpl) List(ctx context.Context) ([]*dto.EventResponse, error) {
	events, err := ef.eventRepo.List(ctx)
	if err != nil {
		return nil, NewBusinessError("EVENT_LIST_FAILED", "Failed to list events", err)
	}

	out := make([]*dto.EventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, ToEventResponse(ev))
	}
	return out, nil
}

// Get returns one event by ID
func (ef *EventFlowImpl) Get(ctx context.Context, id string) (*dto.EventResponse, error) {
	ev, err := ef.findEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToEventResponse(ev), nil
}

// ByDate returns the events on one calendar date in insertion order
func (ef *EventFlowImpl) ByDate(ctx context.Context, date string) ([]*dto.EventResponse, error) {
	events, err := ef.eventRepo.ByDate(ctx, date)
	if err != nil {
		return nil, NewBusinessError("EVENT_LIST_FAILED", "Failed to list events", err)
	}

	out := make([]*dto.EventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, ToEventResponse(ev))
	}
	return out, nil
}

// Create stores a new event and bumps the calendar last-updated timestamp
// in the same transaction
func (ef *EventFlowImpl) Create(ctx context.Context, request *dto.CreateEventRequest) (*dto.EventResponse, error) {
	event := &models.Event{
		ID:            uuid.NewString(),
		Title:         request.Title,
		Date:          request.Date,
		Description:   request.Description,
		ExternalLink:  request.ExternalLink,
		LocationTagID: request.LocationTagID,
	}

	err := repository.WithTransaction(ctx, ef.db, func(txCtx context.Context) error {
		if err := ef.eventRepo.Save(txCtx, event); err != nil {
			return err
		}
		return ef.metadataRepo.Touch(txCtx)
	})
	if err != nil {
		return nil, NewBusinessError("EVENT_CREATE_FAILED", "Failed to create event", err)
	}

	return ToEventResponse(event), nil
}

// Update applies a partial update to an existing event and bumps the
// calendar last-updated timestamp in the same transaction
func (ef *EventFlowImpl) Update(ctx context.Context, id string, request *dto.UpdateEventRequest) (*dto.EventResponse, error) {
	event, err := ef.findEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	if request.Title != nil {
		event.Title = *request.Title
	}
	if request.Date != nil {
		event.Date = *request.Date
	}
	if request.Description != nil {
		event.Description = request.Description
	}
	if request.ExternalLink != nil {
		event.ExternalLink = request.ExternalLink
	}
	if request.LocationTagID != nil {
		event.LocationTagID = request.LocationTagID
	}

	err = repository.WithTransaction(ctx, ef.db, func(txCtx context.Context) error {
		if err := ef.eventRepo.Update(txCtx, event); err != nil {
			return err
		}
		return ef.metadataRepo.Touch(txCtx)
	})
	if err != nil {
		return nil, NewBusinessError("EVENT_UPDATE_FAILED", "Failed to update event", err)
	}

	return ToEventResponse(event), nil
}

// Delete removes an event and bumps the calendar last-updated timestamp in
// the same transaction
func (ef *EventFlowImpl) Delete(ctx context.Context, id string) error {
	if id == "" {
		return NewBusinessError("EVENT_ID_REQUIRED", "Event ID is required", ErrEventIDRequired)
	}

	err := repository.WithTransaction(ctx, ef.db, func(txCtx context.Context) error {
		deleted, err := ef.eventRepo.DeleteByID(txCtx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrEventNotFound
		}
		return ef.metadataRepo.Touch(txCtx)
	})
	if err != nil {
		if IsEventNotFound(err) {
			return NewBusinessError("EVENT_NOT_FOUND", "Event not found", err)
		}
		return NewBusinessError("EVENT_DELETE_FAILED", "Failed to delete event", err)
	}

	return nil
}

// Share returns the formatted share text for one event
func (ef *EventFlowImpl) Share(ctx context.Context, id string) (*dto.ShareTextResponse, error) {
	ev, err := ef.findEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.ShareTextResponse{
		EventID: ev.ID,
		Text:    ef.shareSvc.ShareText(ev),
	}, nil
}

// GoogleCalendarURL returns the Google Calendar deep link for one event
func (ef *EventFlowImpl) GoogleCalendarURL(ctx context.Context, id string) (string, error) {
	ev, err := ef.findEvent(ctx, id)
	if err != nil {
		return "", err
	}

	link, err := ef.exportSvc.GoogleCalendarURL(ev)
	if err != nil {
		return "", NewBusinessError("EVENT_EXPORT_FAILED", "Failed to build calendar link", err)
	}
	return link, nil
}

// ExportICS returns the iCalendar serialization of one event
func (ef *EventFlowImpl) ExportICS(ctx context.Context, id string) (string, error) {
	ev, err := ef.findEvent(ctx, id)
	if err != nil {
		return "", err
	}

	payload, err := ef.exportSvc.BuildICS(ev)
	if err != nil {
		return "", NewBusinessError("EVENT_EXPORT_FAILED", "Failed to build iCalendar export", err)
	}
	return payload, nil
}

func (ef *EventFlowImpl) findEvent(ctx context.Context, id string) (*models.Event, error) {
	if id == "" {
		return nil, NewBusinessError("EVENT_ID_REQUIRED", "Event ID is required", ErrEventIDRequired)
	}

	ev, err := ef.eventRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("EVENT_LOOKUP_FAILED", "Failed to look up event", err)
	}
	if ev == nil {
		return nil, NewBusinessError("EVENT_NOT_FOUND", "Event not found", ErrEventNotFound)
	}
	return ev, nil
}

// ToEventResponse converts an event model to its API representation
func ToEventResponse(ev *models.Event) *dto.EventResponse {
	return &dto.EventResponse{
		ID:            ev.ID,
		Title:         ev.Title,
		Date:          ev.Date,
		Description:   ev.Description,
		ExternalLink:  ev.ExternalLink,
		LocationTagID: ev.LocationTagID,
	}
}
