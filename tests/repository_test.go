// Package tests contains test cases for models and repository packages to avoid circular imports
package tests

import (
	"context"
	"testing"
	"time"

	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/models"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/repository"
	testingutil "github.com/Git-peanutsuu/OdekakeEventCalendar-app/testing"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withTestDB runs fn against a fresh database, skipping when no PostgreSQL
// server is reachable (TEST_DB_* env vars configure the connection).
func withTestDB(t *testing.T, fn func(t *testing.T, tdb *testingutil.TestDB)) {
	t.Helper()

	err := testingutil.TestWithDB(func(tdb *testingutil.TestDB) error {
		fn(t, tdb)
		return nil
	})
	if err != nil {
		t.Skipf("Skipping database test: %v", err)
	}
}

func TestEventRepository(t *testing.T) {
	withTestDB(t, func(t *testing.T, tdb *testingutil.TestDB) {
		ctx := testingutil.CreateTestContext()
		repo := repository.NewEventRepository(tdb.DB)

		base := utils.UTCNow().Add(-time.Hour)
		newEvent := func(title, date string, offset time.Duration) *models.Event {
			return &models.Event{
				ID:        uuid.NewString(),
				Title:     title,
				Date:      date,
				CreatedAt: base.Add(offset),
				UpdatedAt: base.Add(offset),
			}
		}

		second := newEvent("Second", "2025-08-15", 2*time.Minute)
		first := newEvent("First", "2025-08-15", 1*time.Minute)
		other := newEvent("Other day", "2025-08-16", 3*time.Minute)

		// Insert out of creation order to prove ordering comes from created_at
		require.NoError(t, repo.Save(ctx, second))
		require.NoError(t, repo.Save(ctx, first))
		require.NoError(t, repo.Save(ctx, other))

		t.Run("ListOrderedByCreatedAt", func(t *testing.T) {
			events, err := repo.List(ctx)
			require.NoError(t, err)
			require.Len(t, events, 3)
			assert.Equal(t, "First", events[0].Title)
			assert.Equal(t, "Second", events[1].Title)
			assert.Equal(t, "Other day", events[2].Title)
		})

		t.Run("ByDate", func(t *testing.T) {
			events, err := repo.ByDate(ctx, "2025-08-15")
			require.NoError(t, err)
			require.Len(t, events, 2)
			assert.Equal(t, "First", events[0].Title)

			empty, err := repo.ByDate(ctx, "2025-08-17")
			require.NoError(t, err)
			assert.Empty(t, empty)
		})

		t.Run("ByIDMissingIsNilNil", func(t *testing.T) {
			event, err := repo.ByID(ctx, uuid.NewString())
			require.NoError(t, err)
			assert.Nil(t, event)
		})

		t.Run("Update", func(t *testing.T) {
			first.Title = "First (renamed)"
			first.Description = utils.ToPtr("now with details")
			require.NoError(t, repo.Update(ctx, first))

			reloaded, err := repo.ByID(ctx, first.ID)
			require.NoError(t, err)
			require.NotNil(t, reloaded)
			assert.Equal(t, "First (renamed)", reloaded.Title)
			require.NotNil(t, reloaded.Description)
			assert.Equal(t, "now with details", *reloaded.Description)
		})

		t.Run("CountByFilter", func(t *testing.T) {
			count, err := repo.Count(ctx, models.EventFilter{Date: utils.ToPtr("2025-08-15")})
			require.NoError(t, err)
			assert.Equal(t, int64(2), count)
		})

		t.Run("DeleteByID", func(t *testing.T) {
			deleted, err := repo.DeleteByID(ctx, other.ID)
			require.NoError(t, err)
			assert.True(t, deleted)

			again, err := repo.DeleteByID(ctx, other.ID)
			require.NoError(t, err)
			assert.False(t, again)
		})
	})
}

func TestCalendarMetadataRepository(t *testing.T) {
	withTestDB(t, func(t *testing.T, tdb *testingutil.TestDB) {
		ctx := testingutil.CreateTestContext()
		repo := repository.NewCalendarMetadataRepository(tdb.DB)

		t.Run("EmptyReadsNil", func(t *testing.T) {
			ts, err := repo.LastUpdated(ctx)
			require.NoError(t, err)
			assert.Nil(t, ts)
		})

		t.Run("TouchKeepsSingleRow", func(t *testing.T) {
			require.NoError(t, repo.Touch(ctx))
			firstTS, err := repo.LastUpdated(ctx)
			require.NoError(t, err)
			require.NotNil(t, firstTS)

			require.NoError(t, repo.Touch(ctx))
			secondTS, err := repo.LastUpdated(ctx)
			require.NoError(t, err)
			require.NotNil(t, secondTS)
			assert.False(t, secondTS.Before(*firstTS))

			var count int64
			require.NoError(t, tdb.DB.Model(&models.CalendarMetadata{}).Count(&count).Error)
			assert.Equal(t, int64(1), count)
		})
	})
}

func TestUserInterestRepository(t *testing.T) {
	withTestDB(t, func(t *testing.T, tdb *testingutil.TestDB) {
		ctx := testingutil.CreateTestContext()
		fixtures := testingutil.NewTestFixtures(tdb)
		repo := repository.NewUserInterestRepository(tdb.DB)

		event, err := fixtures.CreateTestEvent("Fireworks", "2025-08-15", nil)
		require.NoError(t, err)
		other, err := fixtures.CreateTestEvent("Market", "2025-08-16", nil)
		require.NoError(t, err)

		sessionID := "session-a"

		t.Run("ToggleOn", func(t *testing.T) {
			interested, err := repo.Toggle(ctx, sessionID, event.ID)
			require.NoError(t, err)
			assert.True(t, interested)

			ids, err := repo.EventIDsBySession(ctx, sessionID)
			require.NoError(t, err)
			assert.Equal(t, []string{event.ID}, ids)
		})

		t.Run("ToggleOff", func(t *testing.T) {
			interested, err := repo.Toggle(ctx, sessionID, event.ID)
			require.NoError(t, err)
			assert.False(t, interested)

			ids, err := repo.EventIDsBySession(ctx, sessionID)
			require.NoError(t, err)
			assert.Empty(t, ids)
		})

		t.Run("SessionsAreIsolated", func(t *testing.T) {
			_, err := repo.Toggle(ctx, "session-b", event.ID)
			require.NoError(t, err)
			_, err = repo.Toggle(ctx, "session-b", other.ID)
			require.NoError(t, err)

			ids, err := repo.EventIDsBySession(ctx, sessionID)
			require.NoError(t, err)
			assert.Empty(t, ids)

			ids, err = repo.EventIDsBySession(ctx, "session-b")
			require.NoError(t, err)
			assert.Len(t, ids, 2)
		})
	})
}

func TestLocationTagRepository(t *testing.T) {
	withTestDB(t, func(t *testing.T, tdb *testingutil.TestDB) {
		ctx := testingutil.CreateTestContext()
		fixtures := testingutil.NewTestFixtures(tdb)
		tagRepo := repository.NewLocationTagRepository(tdb.DB)
		eventRepo := repository.NewEventRepository(tdb.DB)

		tag, err := fixtures.CreateTestLocationTag("海岸", "#3B82F6")
		require.NoError(t, err)
		event, err := fixtures.CreateTestEvent("Beach cleanup", "2025-08-15", &tag.ID)
		require.NoError(t, err)

		t.Run("List", func(t *testing.T) {
			tags, err := tagRepo.List(ctx)
			require.NoError(t, err)
			require.Len(t, tags, 1)
			assert.Equal(t, "海岸", tags[0].Name)
			assert.Equal(t, "#3B82F6", tags[0].Color)
		})

		t.Run("DeleteLeavesReferencingEvents", func(t *testing.T) {
			deleted, err := tagRepo.DeleteByID(ctx, tag.ID)
			require.NoError(t, err)
			assert.True(t, deleted)

			reloaded, err := eventRepo.ByID(ctx, event.ID)
			require.NoError(t, err)
			require.NotNil(t, reloaded)
			require.NotNil(t, reloaded.LocationTagID)
			assert.Equal(t, tag.ID, *reloaded.LocationTagID)
		})
	})
}

func TestReferenceWebsiteRepository(t *testing.T) {
	withTestDB(t, func(t *testing.T, tdb *testingutil.TestDB) {
		ctx := testingutil.CreateTestContext()
		fixtures := testingutil.NewTestFixtures(tdb)
		repo := repository.NewReferenceWebsiteRepository(tdb.DB)

		site, err := fixtures.CreateTestReferenceWebsite("市の観光サイト", "https://example.jp/kanko")
		require.NoError(t, err)

		sites, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, sites, 1)
		assert.Equal(t, site.ID, sites[0].ID)

		site.Title = "市の観光サイト (新)"
		require.NoError(t, repo.Update(ctx, site))

		reloaded, err := repo.ByID(ctx, site.ID)
		require.NoError(t, err)
		require.NotNil(t, reloaded)
		assert.Equal(t, "市の観光サイト (新)", reloaded.Title)
	})
}

func TestWithTransactionRollsBackOnError(t *testing.T) {
	withTestDB(t, func(t *testing.T, tdb *testingutil.TestDB) {
		ctx := testingutil.CreateTestContext()
		repo := repository.NewEventRepository(tdb.DB)
		metadataRepo := repository.NewCalendarMetadataRepository(tdb.DB)

		event := &models.Event{ID: uuid.NewString(), Title: "Doomed", Date: "2025-08-15"}

		err := repository.WithTransaction(ctx, tdb.DB, func(txCtx context.Context) error {
			if err := repo.Save(txCtx, event); err != nil {
				return err
			}
			if err := metadataRepo.Touch(txCtx); err != nil {
				return err
			}
			return assert.AnError
		})
		require.ErrorIs(t, err, assert.AnError)

		reloaded, err := repo.ByID(ctx, event.ID)
		require.NoError(t, err)
		assert.Nil(t, reloaded)

		ts, err := metadataRepo.LastUpdated(ctx)
		require.NoError(t, err)
		assert.Nil(t, ts)
	})
}
