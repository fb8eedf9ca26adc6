package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volhub/backend/internal/domain/listing"
	"github.com/volhub/backend/internal/domain/shared"
	"gorm.io/gorm"
)

func opportunityDetailColumns() []string {
	return []string{
		"id", "created_at", "updated_at", "version", "organization_id",
		"title", "description", "location", "event_date", "event_time",
		"required_skills", "status", "organization_name", "organization_email",
		"organization_location",
	}
}

func TestGormOpportunityRepository_FindByID(t *testing.T) {
	t.Run("returns opportunity joined with organization fields", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOpportunityRepository(gormDB)

		opportunityID := uuid.New()
		orgID := uuid.New()
		now := time.Now()

		rows := sqlmock.NewRows(opportunityDetailColumns()).
			AddRow(opportunityID, now, now, 1, orgID,
				"Beach Cleanup", "Help clean the shoreline", "Shoreline Park", "2026-10-12", "09:30",
				"lifting, teamwork", "open", "Helping Hands", "contact@helpinghands.org", "Springfield")

		mock.ExpectQuery(`SELECT .* FROM "opportunities" JOIN organizations ON organizations\.id = opportunities\.organization_id WHERE opportunities\.id = \$1`).
			WithArgs(opportunityID, 1).
			WillReturnRows(rows)

		detail, err := repo.FindByID(context.Background(), opportunityID)

		require.NoError(t, err)
		assert.Equal(t, "Beach Cleanup", detail.Title)
		assert.Equal(t, orgID, detail.OrganizationID)
		assert.Equal(t, "Helping Hands", detail.OrganizationName)
		assert.Equal(t, "contact@helpinghands.org", detail.OrganizationEmail)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent opportunity maps to not found", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOpportunityRepository(gormDB)

		opportunityID := uuid.New()

		mock.ExpectQuery(`SELECT .* FROM "opportunities" JOIN organizations`).
			WithArgs(opportunityID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		detail, err := repo.FindByID(context.Background(), opportunityID)

		assert.Nil(t, detail)
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestGormOpportunityRepository_FindAll(t *testing.T) {
	t.Run("applies status and substring filters", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOpportunityRepository(gormDB)

		now := time.Now()
		rows := sqlmock.NewRows(opportunityDetailColumns()).
			AddRow(uuid.New(), now, now, 1, uuid.New(),
				"Beach Cleanup", "desc", "Austin", "", "", "lifting", "open",
				"Helping Hands", "", "")

		mock.ExpectQuery(`SELECT .* FROM "opportunities" JOIN organizations .* WHERE opportunities\.status = \$1 AND opportunities\.location ILIKE \$2 AND opportunities\.required_skills ILIKE \$3 ORDER BY opportunities\.created_at DESC`).
			WithArgs("open", "%Austin%", "%lifting%").
			WillReturnRows(rows)

		details, err := repo.FindAll(context.Background(), listing.Filter{
			Status:   "open",
			Location: "Austin",
			Skill:    "lifting",
		})

		require.NoError(t, err)
		require.Len(t, details, 1)
		assert.Equal(t, "Austin", details[0].Location)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("status only filter", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOpportunityRepository(gormDB)

		mock.ExpectQuery(`SELECT .* FROM "opportunities" JOIN organizations .* WHERE opportunities\.status = \$1 ORDER BY opportunities\.created_at DESC`).
			WithArgs("closed").
			WillReturnRows(sqlmock.NewRows(opportunityDetailColumns()))

		details, err := repo.FindAll(context.Background(), listing.Filter{Status: "closed"})

		require.NoError(t, err)
		assert.Empty(t, details)
	})
}

func TestGormOpportunityRepository_Search(t *testing.T) {
	t.Run("matches substring across fields, open only", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOpportunityRepository(gormDB)

		now := time.Now()
		rows := sqlmock.NewRows(opportunityDetailColumns()).
			AddRow(uuid.New(), now, now, 1, uuid.New(),
				"Beach Cleanup", "desc", "Austin", "", "", "", "open",
				"Helping Hands", "", "")

		mock.ExpectQuery(`SELECT .* FROM "opportunities" JOIN organizations .* WHERE \(opportunities\.title ILIKE .* AND opportunities\.status = \$5 ORDER BY opportunities\.created_at DESC`).
			WithArgs("%cleanup%", "%cleanup%", "%cleanup%", "%cleanup%", "open").
			WillReturnRows(rows)

		details, err := repo.Search(context.Background(), "cleanup")

		require.NoError(t, err)
		assert.Len(t, details, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOpportunityRepository_Delete(t *testing.T) {
	t.Run("deletes existing opportunity", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOpportunityRepository(gormDB)

		opportunityID := uuid.New()
		mock.ExpectExec(`DELETE FROM "opportunities" WHERE id = \$1`).
			WithArgs(opportunityID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), opportunityID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deleting absent opportunity maps to not found", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOpportunityRepository(gormDB)

		opportunityID := uuid.New()
		mock.ExpectExec(`DELETE FROM "opportunities" WHERE id = \$1`).
			WithArgs(opportunityID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.Equal(t, shared.ErrNotFound, repo.Delete(context.Background(), opportunityID))
	})
}

func TestGormOpportunityRepository_Update(t *testing.T) {
	t.Run("updating absent opportunity maps to not found", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOpportunityRepository(gormDB)

		opportunity, err := listing.NewOpportunity(uuid.New(), "Beach Cleanup", "desc")
		require.NoError(t, err)

		mock.ExpectExec(`UPDATE "opportunities" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.Equal(t, shared.ErrNotFound, repo.Update(context.Background(), opportunity))
	})
}
