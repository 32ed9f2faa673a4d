package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Dosada05/scouting-system/models"
)

type MemoryPlayerRepository struct {
	mu      sync.RWMutex
	players map[int]models.Player
	nextID  int
	metrics *MemoryPlayerMetricsRepository
}

func NewMemoryPlayerRepository(metrics *MemoryPlayerMetricsRepository) *MemoryPlayerRepository {
	return &MemoryPlayerRepository{
		players: make(map[int]models.Player),
		nextID:  1,
		metrics: metrics,
	}
}

func clonePlayer(p models.Player) models.Player {
	p.Age = clonePtr(p.Age)
	p.Team = clonePtr(p.Team)
	p.Position = clonePtr(p.Position)
	p.Description = clonePtr(p.Description)
	p.AvatarURL = clonePtr(p.AvatarURL)
	p.RecruitmentMatch = clonePtr(p.RecruitmentMatch)
	return p
}

func (r *MemoryPlayerRepository) Create(_ context.Context, player *models.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	player.ID = r.nextID
	r.nextID++
	player.CreatedAt = time.Now().UTC()
	r.players[player.ID] = clonePlayer(*player)
	return nil
}

func (r *MemoryPlayerRepository) GetByID(_ context.Context, id int) (*models.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	player, ok := r.players[id]
	if !ok {
		return nil, ErrPlayerNotFound
	}
	player = clonePlayer(player)
	return &player, nil
}

func (r *MemoryPlayerRepository) GetAll(_ context.Context) ([]models.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	players := make([]models.Player, 0, len(r.players))
	for _, player := range r.players {
		players = append(players, clonePlayer(player))
	}
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
	return players, nil
}

func (r *MemoryPlayerRepository) GetTop(ctx context.Context, limit int) ([]models.PlayerWithMetrics, error) {
	r.mu.RLock()
	players := make([]models.Player, 0, len(r.players))
	for _, player := range r.players {
		players = append(players, clonePlayer(player))
	}
	r.mu.RUnlock()

	sort.Slice(players, func(i, j int) bool {
		ri, rj := recruitmentMatchOrZero(players[i]), recruitmentMatchOrZero(players[j])
		if ri != rj {
			return ri > rj
		}
		return players[i].ID < players[j].ID
	})
	if limit >= 0 && limit < len(players) {
		players = players[:limit]
	}

	result := make([]models.PlayerWithMetrics, 0, len(players))
	for _, player := range players {
		entry := models.PlayerWithMetrics{Player: player}
		metrics, err := r.metrics.GetByPlayerID(ctx, player.ID)
		if err == nil {
			entry.Metrics = metrics
		}
		result = append(result, entry)
	}
	return result, nil
}

func recruitmentMatchOrZero(p models.Player) int {
	if p.RecruitmentMatch == nil {
		return 0
	}
	return *p.RecruitmentMatch
}

func (r *MemoryPlayerRepository) Update(_ context.Context, id int, patch models.PlayerPatch) (*models.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	player, ok := r.players[id]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	if patch.Name.Set && patch.Name.Value != nil {
		player.Name = *patch.Name.Value
	}
	applyOptional(&player.Age, patch.Age)
	applyOptional(&player.Team, patch.Team)
	applyOptional(&player.Position, patch.Position)
	applyOptional(&player.Description, patch.Description)
	applyOptional(&player.AvatarURL, patch.AvatarURL)
	applyOptional(&player.RecruitmentMatch, patch.RecruitmentMatch)

	r.players[id] = clonePlayer(player)
	player = clonePlayer(player)
	return &player, nil
}

type MemoryPlayerMetricsRepository struct {
	mu      sync.RWMutex
	metrics map[int]models.PlayerMetrics
	nextID  int
}

func NewMemoryPlayerMetricsRepository() *MemoryPlayerMetricsRepository {
	return &MemoryPlayerMetricsRepository{
		metrics: make(map[int]models.PlayerMetrics),
		nextID:  1,
	}
}

func cloneMetrics(m models.PlayerMetrics) models.PlayerMetrics {
	m.Pace = clonePtr(m.Pace)
	m.Technique = clonePtr(m.Technique)
	m.Finishing = clonePtr(m.Finishing)
	m.Passing = clonePtr(m.Passing)
	m.Vision = clonePtr(m.Vision)
	m.Stamina = clonePtr(m.Stamina)
	m.Tackling = clonePtr(m.Tackling)
	m.Strength = clonePtr(m.Strength)
	m.Positioning = clonePtr(m.Positioning)
	m.Agility = clonePtr(m.Agility)
	m.BallControl = clonePtr(m.BallControl)
	m.Speed = clonePtr(m.Speed)
	return m
}

func (r *MemoryPlayerMetricsRepository) Create(_ context.Context, metrics *models.PlayerMetrics) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.metrics {
		if existing.PlayerID == metrics.PlayerID {
			return ErrPlayerMetricsConflict
		}
	}

	metrics.ID = r.nextID
	r.nextID++
	metrics.CreatedAt = time.Now().UTC()
	r.metrics[metrics.ID] = cloneMetrics(*metrics)
	return nil
}

func (r *MemoryPlayerMetricsRepository) GetByPlayerID(_ context.Context, playerID int) (*models.PlayerMetrics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := false
	var best models.PlayerMetrics
	for _, metrics := range r.metrics {
		if metrics.PlayerID != playerID {
			continue
		}
		if !found || metrics.ID < best.ID {
			best = metrics
			found = true
		}
	}
	if !found {
		return nil, ErrPlayerMetricsNotFound
	}
	best = cloneMetrics(best)
	return &best, nil
}

func (r *MemoryPlayerMetricsRepository) Update(_ context.Context, id int, patch models.PlayerMetricsPatch) (*models.PlayerMetrics, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	metrics, ok := r.metrics[id]
	if !ok {
		return nil, ErrPlayerMetricsNotFound
	}

	if patch.PlayerID.Set && patch.PlayerID.Value != nil {
		metrics.PlayerID = *patch.PlayerID.Value
	}
	applyOptional(&metrics.Pace, patch.Pace)
	applyOptional(&metrics.Technique, patch.Technique)
	applyOptional(&metrics.Finishing, patch.Finishing)
	applyOptional(&metrics.Passing, patch.Passing)
	applyOptional(&metrics.Vision, patch.Vision)
	applyOptional(&metrics.Stamina, patch.Stamina)
	applyOptional(&metrics.Tackling, patch.Tackling)
	applyOptional(&metrics.Strength, patch.Strength)
	applyOptional(&metrics.Positioning, patch.Positioning)
	applyOptional(&metrics.Agility, patch.Agility)
	applyOptional(&metrics.BallControl, patch.BallControl)
	applyOptional(&metrics.Speed, patch.Speed)

	r.metrics[id] = cloneMetrics(metrics)
	metrics = cloneMetrics(metrics)
	return &metrics, nil
}
