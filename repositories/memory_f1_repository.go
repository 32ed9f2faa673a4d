package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Dosada05/scouting-system/models"
)

type MemoryF1DriverRepository struct {
	mu      sync.RWMutex
	drivers map[int]models.F1Driver
	nextID  int
}

func NewMemoryF1DriverRepository() *MemoryF1DriverRepository {
	return &MemoryF1DriverRepository{
		drivers: make(map[int]models.F1Driver),
		nextID:  1,
	}
}

func cloneF1Driver(d models.F1Driver) models.F1Driver {
	d.Number = clonePtr(d.Number)
	d.AvatarURL = clonePtr(d.AvatarURL)
	return d
}

func (r *MemoryF1DriverRepository) Create(_ context.Context, driver *models.F1Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	driver.ID = r.nextID
	r.nextID++
	r.drivers[driver.ID] = cloneF1Driver(*driver)
	return nil
}

func (r *MemoryF1DriverRepository) GetByID(_ context.Context, id int) (*models.F1Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	driver, ok := r.drivers[id]
	if !ok {
		return nil, ErrF1DriverNotFound
	}
	driver = cloneF1Driver(driver)
	return &driver, nil
}

func (r *MemoryF1DriverRepository) GetAll(_ context.Context) ([]models.F1Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	drivers := make([]models.F1Driver, 0, len(r.drivers))
	for _, driver := range r.drivers {
		drivers = append(drivers, cloneF1Driver(driver))
	}
	sort.Slice(drivers, func(i, j int) bool { return drivers[i].ID < drivers[j].ID })
	return drivers, nil
}

type MemoryF1RaceRepository struct {
	mu     sync.RWMutex
	races  map[int]models.F1Race
	nextID int
}

func NewMemoryF1RaceRepository() *MemoryF1RaceRepository {
	return &MemoryF1RaceRepository{
		races:  make(map[int]models.F1Race),
		nextID: 1,
	}
}

func cloneF1Race(race models.F1Race) models.F1Race {
	race.Location = clonePtr(race.Location)
	race.Date = clonePtr(race.Date)
	return race
}

func (r *MemoryF1RaceRepository) Create(_ context.Context, race *models.F1Race) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	race.ID = r.nextID
	r.nextID++
	r.races[race.ID] = cloneF1Race(*race)
	return nil
}

func (r *MemoryF1RaceRepository) GetByID(_ context.Context, id int) (*models.F1Race, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	race, ok := r.races[id]
	if !ok {
		return nil, ErrF1RaceNotFound
	}
	race = cloneF1Race(race)
	return &race, nil
}

func (r *MemoryF1RaceRepository) ListUpcoming(_ context.Context) ([]models.F1Race, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	races := make([]models.F1Race, 0)
	for _, race := range r.races {
		if race.Status == models.RaceStatusUpcoming {
			races = append(races, cloneF1Race(race))
		}
	}
	sort.Slice(races, func(i, j int) bool {
		return dateBefore(races[i].Date, races[j].Date, races[i].ID, races[j].ID)
	})
	return races, nil
}

// dateBefore orders by date ascending with nil dates last, ties by id.
func dateBefore(di, dj *time.Time, idI, idJ int) bool {
	switch {
	case di == nil && dj == nil:
		return idI < idJ
	case di == nil:
		return false
	case dj == nil:
		return true
	case !di.Equal(*dj):
		return di.Before(*dj)
	default:
		return idI < idJ
	}
}

type MemoryF1PredictionRepository struct {
	mu          sync.RWMutex
	predictions map[int]models.F1Prediction
	nextID      int
	drivers     *MemoryF1DriverRepository
}

func NewMemoryF1PredictionRepository(drivers *MemoryF1DriverRepository) *MemoryF1PredictionRepository {
	return &MemoryF1PredictionRepository{
		predictions: make(map[int]models.F1Prediction),
		nextID:      1,
		drivers:     drivers,
	}
}

func cloneF1Prediction(p models.F1Prediction) models.F1Prediction {
	p.Position = clonePtr(p.Position)
	p.WinProbability = clonePtr(p.WinProbability)
	p.Factors = cloneDoc(p.Factors)
	return p
}

func (r *MemoryF1PredictionRepository) Create(_ context.Context, prediction *models.F1Prediction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prediction.ID = r.nextID
	r.nextID++
	prediction.CreatedAt = time.Now().UTC()
	r.predictions[prediction.ID] = cloneF1Prediction(*prediction)
	return nil
}

func (r *MemoryF1PredictionRepository) ListByRaceWithDrivers(ctx context.Context, raceID int) ([]models.F1PredictionWithDriver, error) {
	r.mu.RLock()
	predictions := make([]models.F1Prediction, 0)
	for _, prediction := range r.predictions {
		if prediction.RaceID == raceID {
			predictions = append(predictions, cloneF1Prediction(prediction))
		}
	}
	r.mu.RUnlock()

	sort.Slice(predictions, func(i, j int) bool {
		pi, pj := predictions[i].Position, predictions[j].Position
		switch {
		case pi == nil && pj == nil:
			return predictions[i].ID < predictions[j].ID
		case pi == nil:
			return false
		case pj == nil:
			return true
		case *pi != *pj:
			return *pi < *pj
		default:
			return predictions[i].ID < predictions[j].ID
		}
	})

	result := make([]models.F1PredictionWithDriver, 0, len(predictions))
	for _, prediction := range predictions {
		driver, err := r.drivers.GetByID(ctx, prediction.DriverID)
		if err != nil {
			// Predictions pointing at a missing driver are dropped from
			// the joined view.
			continue
		}
		result = append(result, models.F1PredictionWithDriver{
			F1Prediction: prediction,
			Driver:       *driver,
		})
	}
	return result, nil
}
