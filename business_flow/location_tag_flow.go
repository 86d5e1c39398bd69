package businessflow

import (
	"context"

	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/dto"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/models"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LocationTagFlow handles location tag CRUD
type LocationTagFlow interface {
	List(ctx context.Context) ([]*dto.LocationTagResponse, error)
	Create(ctx context.Context, request *dto.CreateLocationTagRequest) (*dto.LocationTagResponse, error)
	Update(ctx context.Context, id string, request *dto.UpdateLocationTagRequest) (*dto.LocationTagResponse, error)
	Delete(ctx context.Context, id string) error
}

// LocationTagFlowImpl implements the location tag business flow
type LocationTagFlowImpl struct {
	tagRepo      repository.LocationTagRepository
	metadataRepo repository.CalendarMetadataRepository
	db           *gorm.DB
}

// NewLocationTagFlow creates a new location tag flow instance
func NewLocationTagFlow(
	tagRepo repository.LocationTagRepository,
	metadataRepo repository.CalendarMetadataRepository,
	db *gorm.DB,
) LocationTagFlow {
	return &LocationTagFlowImpl{
		tagRepo:      tagRepo,
		metadataRepo: metadataRepo,
		db:           db,
	}
}

// List returns all location tags in insertion order
func (lf *LocationTagFlowImpl) List(ctx context.Context) ([]*dto.LocationTagResponse, error) {
	tags, err := lf.tagRepo.List(ctx)
	if err != nil {
		return nil, NewBusinessError("LOCATION_TAG_LIST_FAILED", "Failed to list location tags", err)
	}

	out := make([]*dto.LocationTagResponse, 0, len(tags))
	for _, tag := range tags {
		out = append(out, ToLocationTagResponse(tag))
	}
	return out, nil
}

// Create stores a new location tag and bumps the calendar last-updated
// timestamp in the same transaction
func (lf *LocationTagFlowImpl) Create(ctx context.Context, request *dto.CreateLocationTagRequest) (*dto.LocationTagResponse, error) {
	tag := &models.LocationTag{
		ID:    uuid.NewString(),
		Name:  request.Name,
		Color: request.Color,
	}

	err := repository.WithTransaction(ctx, lf.db, func(txCtx context.Context) error {
		if err := lf.tagRepo.Save(txCtx, tag); err != nil {
			return err
		}
		return lf.metadataRepo.Touch(txCtx)
	})
	if err != nil {
		return nil, NewBusinessError("LOCATION_TAG_CREATE_FAILED", "Failed to create location tag", err)
	}

	return ToLocationTagResponse(tag), nil
}

// Update applies a partial update to an existing location tag
func (lf *LocationTagFlowImpl) Update(ctx context.Context, id string, request *dto.UpdateLocationTagRequest) (*dto.LocationTagResponse, error) {
	if id == "" {
		return nil, NewBusinessError("LOCATION_TAG_ID_REQUIRED", "Location tag ID is required", ErrLocationTagIDRequired)
	}

	tag, err := lf.tagRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("LOCATION_TAG_LOOKUP_FAILED", "Failed to look up location tag", err)
	}
	if tag == nil {
		return nil, NewBusinessError("LOCATION_TAG_NOT_FOUND", "Location tag not found", ErrLocationTagNotFound)
	}

	if request.Name != nil {
		tag.Name = *request.Name
	}
	if request.Color != nil {
		tag.Color = *request.Color
	}

	err = repository.WithTransaction(ctx, lf.db, func(txCtx context.Context) error {
		if err := lf.tagRepo.Update(txCtx, tag); err != nil {
			return err
		}
		return lf.metadataRepo.Touch(txCtx)
	})
	if err != nil {
		return nil, NewBusinessError("LOCATION_TAG_UPDATE_FAILED", "Failed to update location tag", err)
	}

	return ToLocationTagResponse(tag), nil
}

// Delete removes a location tag. Events referencing it keep their dangling
// tag ID and render untagged.
func (lf *LocationTagFlowImpl) Delete(ctx context.Context, id string) error {
	if id == "" {
		return NewBusinessError("LOCATION_TAG_ID_REQUIRED", "Location tag ID is required", ErrLocationTagIDRequired)
	}

	err := repository.WithTransaction(ctx, lf.db, func(txCtx context.Context) error {
		deleted, err := lf.tagRepo.DeleteByID(txCtx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrLocationTagNotFound
		}
		return lf.metadataRepo.Touch(txCtx)
	})
	if err != nil {
		if IsLocationTagNotFound(err) {
			return NewBusinessError("LOCATION_TAG_NOT_FOUND", "Location tag not found", err)
		}
		return NewBusinessError("LOCATION_TAG_DELETE_FAILED", "Failed to delete location tag", err)
	}

	return nil
}

// ToLocationTagResponse converts a location tag model to its API representation
func ToLocationTagResponse(tag *models.LocationTag) *dto.LocationTagResponse {
	return &dto.LocationTagResponse{
		ID:    tag.ID,
		Name:  tag.Name,
		Color: tag.Color,
	}
}
