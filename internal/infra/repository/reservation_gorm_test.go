package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domain "github.com/agenasports/pitch-scheduler/internal/domain/schedule"
	"github.com/agenasports/pitch-scheduler/internal/models"
)

// openTestDB conecta no Postgres de teste; sem TEST_DATABASE_URL os testes
// de integração são pulados.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Reservation{}))
	require.NoError(t, db.Exec("DELETE FROM reservations").Error)
	return db
}

func testReservation(id, pitchID, date, start, end, matchType string) *models.Reservation {
	return &models.Reservation{
		ID:        id,
		PitchID:   pitchID,
		PitchName: "Quadra 1",
		Date:      date,
		StartTime: start,
		EndTime:   end,
		MatchType: matchType,
		FirstName: "Ayşe",
		Phone:     "5551112233",
	}
}

func TestCreateCheckedRejectsOverlapWithStoredRow(t *testing.T) {
	db := openTestDB(t)
	repo := NewReservationGormRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateChecked(ctx,
		testReservation("r1", "p1", "2024-01-03", "18:00", "19:00", models.MatchTypeSingle)))

	err := repo.CreateChecked(ctx,
		testReservation("r2", "p1", "2024-01-03", "18:30", "19:30", models.MatchTypeSingle))
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateCheckedRejectsOverlapWithVirtualOccurrence(t *testing.T) {
	db := openTestDB(t)
	repo := NewReservationGormRepository(db)
	ctx := context.Background()

	// assinatura de quarta-feira
	sub := testReservation("sub1", "p1", "2024-01-03", "18:00", "19:00", models.MatchTypeSubscription)
	sub.RecurrenceExceptions = []string{}
	require.NoError(t, repo.CreateChecked(ctx, sub))

	// duas semanas depois, mesma quadra, mesmo horário: a ocorrência é
	// virtual — não existe linha para a data — mas o check a enxerga
	err := repo.CreateChecked(ctx,
		testReservation("r2", "p1", "2024-01-17", "18:00", "19:00", models.MatchTypeSingle))
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// Two transactions racing for the same empty slot: row locks see nothing
// to lock, so only the per-pitch advisory lock keeps them mutually
// exclusive. Exactly one insert must land, the other must get ErrConflict.
func TestCreateCheckedSerializesConcurrentCreates(t *testing.T) {
	db := openTestDB(t)
	repo := NewReservationGormRepository(db)
	ctx := context.Background()

	const attempts = 8
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.CreateChecked(ctx, testReservation(
				fmt.Sprintf("race-%d", i),
				"p1", "2024-01-03", "18:00", "19:00",
				models.MatchTypeSingle,
			))
		}(i)
	}
	wg.Wait()

	created := 0
	for _, err := range errs {
		if err == nil {
			created++
		} else {
			assert.True(t, errors.Is(err, domain.ErrConflict), "unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, created, "exactly one create may win the slot")

	var count int64
	require.NoError(t, db.Model(&models.Reservation{}).
		Where("pitch_id = ? AND date = ?", "p1", "2024-01-03").
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
