package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/Dosada05/scouting-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryF1RaceRepository_ListUpcomingOrdersByDate(t *testing.T) {
	repo := NewMemoryF1RaceRepository()
	ctx := context.Background()

	may := time.Date(2025, time.May, 24, 0, 0, 0, 0, time.UTC)
	march := time.Date(2025, time.March, 23, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &models.F1Race{Name: "Monaco", Date: &may, Status: models.RaceStatusUpcoming}))
	require.NoError(t, repo.Create(ctx, &models.F1Race{Name: "Undated", Status: models.RaceStatusUpcoming}))
	require.NoError(t, repo.Create(ctx, &models.F1Race{Name: "Australia", Date: &march, Status: models.RaceStatusUpcoming}))
	require.NoError(t, repo.Create(ctx, &models.F1Race{Name: "Done", Date: &march, Status: models.RaceStatusCompleted}))

	races, err := repo.ListUpcoming(ctx)
	require.NoError(t, err)
	require.Len(t, races, 3)

	assert.Equal(t, "Australia", races[0].Name)
	assert.Equal(t, "Monaco", races[1].Name)
	assert.Equal(t, "Undated", races[2].Name, "races without a date sort last")
}

func TestMemoryF1PredictionRepository_JoinOrdersByPosition(t *testing.T) {
	drivers := NewMemoryF1DriverRepository()
	repo := NewMemoryF1PredictionRepository(drivers)
	ctx := context.Background()

	verstappen := &models.F1Driver{Name: "Max Verstappen", Team: "Red Bull Racing"}
	hamilton := &models.F1Driver{Name: "Lewis Hamilton", Team: "Mercedes"}
	require.NoError(t, drivers.Create(ctx, verstappen))
	require.NoError(t, drivers.Create(ctx, hamilton))

	require.NoError(t, repo.Create(ctx, &models.F1Prediction{RaceID: 1, DriverID: hamilton.ID, Position: ptrOf(2)}))
	require.NoError(t, repo.Create(ctx, &models.F1Prediction{RaceID: 1, DriverID: verstappen.ID, Position: ptrOf(1)}))
	require.NoError(t, repo.Create(ctx, &models.F1Prediction{RaceID: 2, DriverID: verstappen.ID, Position: ptrOf(1)}))

	predictions, err := repo.ListByRaceWithDrivers(ctx, 1)
	require.NoError(t, err)
	require.Len(t, predictions, 2)

	assert.Equal(t, "Max Verstappen", predictions[0].Driver.Name)
	assert.Equal(t, "Lewis Hamilton", predictions[1].Driver.Name)
}

func TestMemoryF1PredictionRepository_SkipsDanglingDriver(t *testing.T) {
	drivers := NewMemoryF1DriverRepository()
	repo := NewMemoryF1PredictionRepository(drivers)
	ctx := context.Background()

	driver := &models.F1Driver{Name: "Charles Leclerc", Team: "Ferrari"}
	require.NoError(t, drivers.Create(ctx, driver))

	require.NoError(t, repo.Create(ctx, &models.F1Prediction{RaceID: 1, DriverID: driver.ID, Position: ptrOf(1)}))
	require.NoError(t, repo.Create(ctx, &models.F1Prediction{RaceID: 1, DriverID: 99, Position: ptrOf(2)}))

	predictions, err := repo.ListByRaceWithDrivers(ctx, 1)
	require.NoError(t, err)
	require.Len(t, predictions, 1)
	assert.Equal(t, driver.ID, predictions[0].DriverID)
}

func TestMemoryF1PredictionRepository_NilPositionSortsLast(t *testing.T) {
	drivers := NewMemoryF1DriverRepository()
	repo := NewMemoryF1PredictionRepository(drivers)
	ctx := context.Background()

	driver := &models.F1Driver{Name: "Driver", Team: "Team"}
	require.NoError(t, drivers.Create(ctx, driver))

	require.NoError(t, repo.Create(ctx, &models.F1Prediction{RaceID: 1, DriverID: driver.ID}))
	require.NoError(t, repo.Create(ctx, &models.F1Prediction{RaceID: 1, DriverID: driver.ID, Position: ptrOf(3)}))

	predictions, err := repo.ListByRaceWithDrivers(ctx, 1)
	require.NoError(t, err)
	require.Len(t, predictions, 2)
	require.NotNil(t, predictions[0].Position)
	assert.Equal(t, 3, *predictions[0].Position)
	assert.Nil(t, predictions[1].Position)
}
