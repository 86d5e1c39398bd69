package businessflow

import (
	"context"

	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/dto"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/models"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReferenceWebsiteFlow handles reference website CRUD
type ReferenceWebsiteFlow interface {
	List(ctx context.Context) ([]*dto.ReferenceWebsiteResponse, error)
	Create(ctx context.Context, request *dto.CreateReferenceWebsiteRequest) (*dto.ReferenceWebsiteResponse, error)
	Update(ctx context.Context, id string, request *dto.UpdateReferenceWebsiteRequest) (*dto.ReferenceWebsiteResponse, error)
	Delete(ctx context.Context, id string) error
}

// ReferenceWebsiteFlowImpl implements the reference website business flow
type ReferenceWebsiteFlowImpl struct {
	websiteRepo  repository.ReferenceWebsiteRepository
	metadataRepo repository.CalendarMetadataRepository
	db           *gorm.DB
}

// NewReferenceWebsiteFlow creates a new reference website flow instance
func NewReferenceWebsiteFlow(
	websiteRepo repository.ReferenceWebsiteRepository,
	metadataRepo repository.CalendarMetadataRepository,
	db *gorm.DB,
) ReferenceWebsiteFlow {
	return &ReferenceWebsiteFlowImpl{
		websiteRepo:  websiteRepo,
		metadataRepo: metadataRepo,
		db:           db,
	}
}

// List returns all reference websites in insertion order
func (rf *ReferenceWebsiteFlowImpl) List(ctx context.Context) ([]*dto.ReferenceWebsiteResponse, error) {
	sites, err := rf.websiteRepo.List(ctx)
	if err != nil {
		return nil, NewBusinessError("REFERENCE_WEBSITE_LIST_FAILED", "Failed to list reference websites", err)
	}

	out := make([]*dto.ReferenceWebsiteResponse, 0, len(sites))
	for _, site := range sites {
		out = append(out, ToReferenceWebsiteResponse(site))
	}
	return out, nil
}

// Create stores a new reference website and bumps the calendar last-updated
// timestamp in the same transaction
func (rf *ReferenceWebsiteFlowImpl) Create(ctx context.Context, request *dto.CreateReferenceWebsiteRequest) (*dto.ReferenceWebsiteResponse, error) {
	site := &models.ReferenceWebsite{
		ID:    uuid.NewString(),
		Title: request.Title,
		URL:   request.URL,
	}

	err := repository.WithTransaction(ctx, rf.db, func(txCtx context.Context) error {
		if err := rf.websiteRepo.Save(txCtx, site); err != nil {
			return err
		}
		return rf.metadataRepo.Touch(txCtx)
	})
	if err != nil {
		return nil, NewBusinessError("REFERENCE_WEBSITE_CREATE_FAILED", "Failed to create reference website", err)
	}

	return ToReferenceWebsiteResponse(site), nil
}

// Update applies a partial update to an existing reference website
func (rf *ReferenceWebsiteFlowImpl) Update(ctx context.Context, id string, request *dto.UpdateReferenceWebsiteRequest) (*dto.ReferenceWebsiteResponse, error) {
	if id == "" {
		return nil, NewBusinessError("REFERENCE_WEBSITE_ID_REQUIRED", "Reference website ID is required", ErrReferenceWebsiteIDRequired)
	}

	site, err := rf.websiteRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("REFERENCE_WEBSITE_LOOKUP_FAILED", "Failed to look up reference website", err)
	}
	if site == nil {
		return nil, NewBusinessError("REFERENCE_WEBSITE_NOT_FOUND", "Reference website not found", ErrReferenceWebsiteNotFound)
	}

	if request.Title != nil {
		site.Title = *request.Title
	}
	if request.URL != nil {
		site.URL = *request.URL
	}

	err = repository.WithTransaction(ctx, rf.db, func(txCtx context.Context) error {
		if err := rf.websiteRepo.Update(txCtx, site); err != nil {
			return err
		}
		return rf.metadataRepo.Touch(txCtx)
	})
	if err != nil {
		return nil, NewBusinessError("REFERENCE_WEBSITE_UPDATE_FAILED", "Failed to update reference website", err)
	}

	return ToReferenceWebsiteResponse(site), nil
}

// Delete removes a reference website
func (rf *ReferenceWebsiteFlowImpl) Delete(ctx context.Context, id string) error {
	if id == "" {
		return NewBusinessError("REFERENCE_WEBSITE_ID_REQUIRED", "Reference website ID is required", ErrReferenceWebsiteIDRequired)
	}

	err := repository.WithTransaction(ctx, rf.db, func(txCtx context.Context) error {
		deleted, err := rf.websiteRepo.DeleteByID(txCtx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrReferenceWebsiteNotFound
		}
		return rf.metadataRepo.Touch(txCtx)
	})
	if err != nil {
		if IsReferenceWebsiteNotFound(err) {
			return NewBusinessError("REFERENCE_WEBSITE_NOT_FOUND", "Reference website not found", err)
		}
		return NewBusinessError("REFERENCE_WEBSITE_DELETE_FAILED", "Failed to delete reference website", err)
	}

	return nil
}

// ToReferenceWebsiteResponse converts a reference website model to its API representation
func ToReferenceWebsiteResponse(site *models.ReferenceWebsite) *dto.ReferenceWebsiteResponse {
	return &dto.ReferenceWebsiteResponse{
		ID:    site.ID,
		Title: site.Title,
		URL:   site.URL,
	}
}
