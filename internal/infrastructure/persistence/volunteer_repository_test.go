package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volhub/backend/internal/domain/identity"
	"github.com/volhub/backend/internal/domain/shared"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB creates a GORM DB backed by sqlmock
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestGormVolunteerRepository_Create(t *testing.T) {
	t.Run("inserts volunteer and skill links in one transaction", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormVolunteerRepository(gormDB)

		volunteer, err := identity.NewVolunteer("Jane Doe", "jane@example.com", "secret123")
		require.NoError(t, err)
		skillID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "volunteers"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO "volunteer_skills"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err = repo.Create(context.Background(), volunteer, []uuid.UUID{skillID})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("skips link insert when no skills resolved", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormVolunteerRepository(gormDB)

		volunteer, err := identity.NewVolunteer("Jane Doe", "jane@example.com", "secret123")
		require.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "volunteers"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err = repo.Create(context.Background(), volunteer, nil)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email rolls back and maps to already exists", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormVolunteerRepository(gormDB)

		volunteer, err := identity.NewVolunteer("Jane Doe", "jane@example.com", "secret123")
		require.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "volunteers"`).
			WillReturnError(gorm.ErrDuplicatedKey)
		mock.ExpectRollback()

		err = repo.Create(context.Background(), volunteer, []uuid.UUID{uuid.New()})

		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormVolunteerRepository_FindByEmail(t *testing.T) {
	t.Run("lowercases the lookup email", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormVolunteerRepository(gormDB)

		volunteerID := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "version", "name", "email", "password_hash"}).
			AddRow(volunteerID, 1, "Jane Doe", "jane@example.com", "hash")

		mock.ExpectQuery(`SELECT \* FROM "volunteers" WHERE email = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("jane@example.com", 1).
			WillReturnRows(rows)

		volunteer, err := repo.FindByEmail(context.Background(), "  Jane@Example.COM ")

		require.NoError(t, err)
		assert.Equal(t, volunteerID, volunteer.ID)
		assert.Equal(t, "jane@example.com", volunteer.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent email maps to not found", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormVolunteerRepository(gormDB)

		mock.ExpectQuery(`SELECT \* FROM "volunteers" WHERE email = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("ghost@example.com", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		volunteer, err := repo.FindByEmail(context.Background(), "ghost@example.com")

		assert.Nil(t, volunteer)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormVolunteerRepository_LoadSkillNames(t *testing.T) {
	t.Run("loads ordered skill names", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormVolunteerRepository(gormDB)

		volunteer, err := identity.NewVolunteer("Jane Doe", "jane@example.com", "secret123")
		require.NoError(t, err)

		rows := sqlmock.NewRows([]string{"skill_name"}).
			AddRow("First Aid").
			AddRow("Teaching")

		mock.ExpectQuery(`SELECT .* FROM "skills" JOIN volunteer_skills .* ORDER BY skills\.skill_name`).
			WithArgs(volunteer.ID).
			WillReturnRows(rows)

		err = repo.LoadSkillNames(context.Background(), volunteer)

		require.NoError(t, err)
		assert.Equal(t, []string{"First Aid", "Teaching"}, volunteer.SkillNames)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no skills yields empty slice", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormVolunteerRepository(gormDB)

		volunteer, err := identity.NewVolunteer("Jane Doe", "jane@example.com", "secret123")
		require.NoError(t, err)

		mock.ExpectQuery(`SELECT .* FROM "skills" JOIN volunteer_skills`).
			WithArgs(volunteer.ID).
			WillReturnRows(sqlmock.NewRows([]string{"skill_name"}))

		err = repo.LoadSkillNames(context.Background(), volunteer)

		require.NoError(t, err)
		assert.NotNil(t, volunteer.SkillNames)
		assert.Empty(t, volunteer.SkillNames)
	})
}
