package businessflow

import (
	"context"
	"time"

	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/models"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/utils"
)

// In-memory repository fakes for flow tests.

type fakeEventRepo struct {
	events []*models.Event
}

func (f *fakeEventRepo) ByID(ctx context.Context, id string) (*models.Event, error) {
	for _, ev := range f.events {
		if ev.ID == id {
			return ev, nil
		}
	}
	return nil, nil
}

func (f *fakeEventRepo) ByFilter(ctx context.Context, filter models.EventFilter, orderBy string, limit, offset int) ([]*models.Event, error) {
	var out []*models.Event
	for _, ev := range f.events {
		if filter.Date != nil && ev.Date != *filter.Date {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

func (f *fakeEventRepo) Save(ctx context.Context, entity *models.Event) error {
	f.events = append(f.events, entity)
	return nil
}

func (f *fakeEventRepo) Update(ctx context.Context, entity *models.Event) error {
	for i, ev := range f.events {
		if ev.ID == entity.ID {
			f.events[i] = entity
			return nil
		}
	}
	f.events = append(f.events, entity)
	return nil
}

func (f *fakeEventRepo) DeleteByID(ctx context.Context, id string) (bool, error) {
	for i, ev := range f.events {
		if ev.ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEventRepo) Count(ctx context.Context, filter models.EventFilter) (int64, error) {
	rows, _ := f.ByFilter(ctx, filter, "", 0, 0)
	return int64(len(rows)), nil
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*models.Event, error) {
	return f.events, nil
}

func (f *fakeEventRepo) ByDate(ctx context.Context, date string) ([]*models.Event, error) {
	return f.ByFilter(ctx, models.EventFilter{Date: &date}, "", 0, 0)
}

type fakeTagRepo struct {
	tags []*models.LocationTag
}

func (f *fakeTagRepo) ByID(ctx context.Context, id string) (*models.LocationTag, error) {
	for _, tag := range f.tags {
		if tag.ID == id {
			return tag, nil
		}
	}
	return nil, nil
}

func (f *fakeTagRepo) ByFilter(ctx context.Context, filter models.LocationTagFilter, orderBy string, limit, offset int) ([]*models.LocationTag, error) {
	return f.tags, nil
}

func (f *fakeTagRepo) Save(ctx context.Context, entity *models.LocationTag) error {
	f.tags = append(f.tags, entity)
	return nil
}

func (f *fakeTagRepo) Update(ctx context.Context, entity *models.LocationTag) error {
	for i, tag := range f.tags {
		if tag.ID == entity.ID {
			f.tags[i] = entity
			return nil
		}
	}
	return nil
}

func (f *fakeTagRepo) DeleteByID(ctx context.Context, id string) (bool, error) {
	for i, tag := range f.tags {
		if tag.ID == id {
			f.tags = append(f.tags[:i], f.tags[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTagRepo) Count(ctx context.Context, filter models.LocationTagFilter) (int64, error) {
	return int64(len(f.tags)), nil
}

func (f *fakeTagRepo) List(ctx context.Context) ([]*models.LocationTag, error) {
	return f.tags, nil
}

type fakeMetadataRepo struct {
	ts      *time.Time
	touches int
}

func (f *fakeMetadataRepo) LastUpdated(ctx context.Context) (*time.Time, error) {
	return f.ts, nil
}

func (f *fakeMetadataRepo) Touch(ctx context.Context) error {
	f.ts = utils.UTCNowPtr()
	f.touches++
	return nil
}
