package dronerepo_test

import (
	"context"
	"regexp"
	"testing"

	"drones/internal/adapters/out/postgres/dronerepo"
	"drones/internal/core/domain/model/drone"
	"drones/internal/pkg/errs"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestGetForUpdate_UsesRowLock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := dronerepo.NewGormDroneRepository(db, noopTracker{})

	rows := sqlmock.NewRows([]string{"number", "model_type", "state", "battery_capacity"}).
		AddRow("Drone-1", "Lightweight", "IDLE", 100)
	mock.ExpectQuery(`SELECT \* FROM "drones" WHERE number = \$1 ORDER BY "drones"\."number" LIMIT .+ FOR UPDATE`).
		WillReturnRows(rows)

	d, err := repo.GetForUpdate(context.Background(), "Drone-1")

	require.NoError(t, err)
	assert.Equal(t, drone.Idle, d.State())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_NoRowsIsObjectNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := dronerepo.NewGormDroneRepository(db, noopTracker{})

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "drones" WHERE number = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"number", "model_type", "state", "battery_capacity"}))

	_, err := repo.Get(context.Background(), "Drone-9")

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdd_UniqueViolationIsObjectAlreadyExists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := dronerepo.NewGormDroneRepository(db, noopTracker{})

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "drones"`)).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
	mock.ExpectRollback()

	d, err := drone.NewDrone("Drone-4", drone.Cruiserweight)
	require.NoError(t, err)

	err = repo.Add(context.Background(), d)

	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NoRowsAffectedIsObjectNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := dronerepo.NewGormDroneRepository(db, noopTracker{})

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "drones" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	d, err := drone.NewDrone("Drone-9", drone.Lightweight)
	require.NoError(t, err)

	err = repo.Update(context.Background(), d)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRestoreRejectsUnknownState(t *testing.T) {
	db, mock := newMockDB(t)
	repo := dronerepo.NewGormDroneRepository(db, noopTracker{})

	rows := sqlmock.NewRows([]string{"number", "model_type", "state", "battery_capacity"}).
		AddRow("Drone-1", "Lightweight", "CRASHED", 100)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "drones" WHERE number = $1`)).WillReturnRows(rows)

	_, err := repo.Get(context.Background(), "Drone-1")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
