package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Dosada05/scouting-system/models"
)

type MemoryFootballTeamRepository struct {
	mu     sync.RWMutex
	teams  map[int]models.FootballTeam
	nextID int
}

func NewMemoryFootballTeamRepository() *MemoryFootballTeamRepository {
	return &MemoryFootballTeamRepository{
		teams:  make(map[int]models.FootballTeam),
		nextID: 1,
	}
}

func cloneFootballTeam(t models.FootballTeam) models.FootballTeam {
	t.League = clonePtr(t.League)
	t.LogoURL = clonePtr(t.LogoURL)
	return t
}

func (r *MemoryFootballTeamRepository) Create(_ context.Context, team *models.FootballTeam) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	team.ID = r.nextID
	r.nextID++
	r.teams[team.ID] = cloneFootballTeam(*team)
	return nil
}

func (r *MemoryFootballTeamRepository) GetByID(_ context.Context, id int) (*models.FootballTeam, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	team, ok := r.teams[id]
	if !ok {
		return nil, ErrFootballTeamNotFound
	}
	team = cloneFootballTeam(team)
	return &team, nil
}

func (r *MemoryFootballTeamRepository) GetAll(_ context.Context) ([]models.FootballTeam, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teams := make([]models.FootballTeam, 0, len(r.teams))
	for _, team := range r.teams {
		teams = append(teams, cloneFootballTeam(team))
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].ID < teams[j].ID })
	return teams, nil
}

type MemoryFootballMatchRepository struct {
	mu      sync.RWMutex
	matches map[int]models.FootballMatch
	nextID  int
}

func NewMemoryFootballMatchRepository() *MemoryFootballMatchRepository {
	return &MemoryFootballMatchRepository{
		matches: make(map[int]models.FootballMatch),
		nextID:  1,
	}
}

func cloneFootballMatch(m models.FootballMatch) models.FootballMatch {
	m.Date = clonePtr(m.Date)
	m.HomeScore = clonePtr(m.HomeScore)
	m.AwayScore = clonePtr(m.AwayScore)
	return m
}

func (r *MemoryFootballMatchRepository) Create(_ context.Context, match *models.FootballMatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	match.ID = r.nextID
	r.nextID++
	r.matches[match.ID] = cloneFootballMatch(*match)
	return nil
}

func (r *MemoryFootballMatchRepository) GetByID(_ context.Context, id int) (*models.FootballMatch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	match, ok := r.matches[id]
	if !ok {
		return nil, ErrFootballMatchNotFound
	}
	match = cloneFootballMatch(match)
	return &match, nil
}

func (r *MemoryFootballMatchRepository) ListUpcoming(_ context.Context) ([]models.FootballMatch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]models.FootballMatch, 0)
	for _, match := range r.matches {
		if match.Status == models.MatchStatusUpcoming {
			matches = append(matches, cloneFootballMatch(match))
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return dateBefore(matches[i].Date, matches[j].Date, matches[i].ID, matches[j].ID)
	})
	return matches, nil
}

type MemoryFootballPredictionRepository struct {
	mu          sync.RWMutex
	predictions map[int]models.FootballPrediction
	nextID      int
}

func NewMemoryFootballPredictionRepository() *MemoryFootballPredictionRepository {
	return &MemoryFootballPredictionRepository{
		predictions: make(map[int]models.FootballPrediction),
		nextID:      1,
	}
}

func cloneFootballPrediction(p models.FootballPrediction) models.FootballPrediction {
	p.PredictedHomeScore = clonePtr(p.PredictedHomeScore)
	p.PredictedAwayScore = clonePtr(p.PredictedAwayScore)
	p.WinProbability = clonePtr(p.WinProbability)
	p.DrawProbability = clonePtr(p.DrawProbability)
	p.LossProbability = clonePtr(p.LossProbability)
	p.Confidence = clonePtr(p.Confidence)
	p.Stats = cloneDoc(p.Stats)
	return p
}

func (r *MemoryFootballPredictionRepository) Create(_ context.Context, prediction *models.FootballPrediction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.predictions {
		if existing.MatchID == prediction.MatchID {
			return ErrFootballPredictionConflict
		}
	}

	prediction.ID = r.nextID
	r.nextID++
	prediction.CreatedAt = time.Now().UTC()
	r.predictions[prediction.ID] = cloneFootballPrediction(*prediction)
	return nil
}

func (r *MemoryFootballPredictionRepository) GetByMatchID(_ context.Context, matchID int) (*models.FootballPrediction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := false
	var best models.FootballPrediction
	for _, prediction := range r.predictions {
		if prediction.MatchID != matchID {
			continue
		}
		if !found || prediction.ID < best.ID {
			best = prediction
			found = true
		}
	}
	if !found {
		return nil, ErrFootballPredictionNotFound
	}
	best = cloneFootballPrediction(best)
	return &best, nil
}

type MemoryFootballTeamStatRepository struct {
	mu     sync.RWMutex
	stats  map[int]models.FootballTeamStat
	nextID int
	teams  *MemoryFootballTeamRepository
}

func NewMemoryFootballTeamStatRepository(teams *MemoryFootballTeamRepository) *MemoryFootballTeamStatRepository {
	return &MemoryFootballTeamStatRepository{
		stats:  make(map[int]models.FootballTeamStat),
		nextID: 1,
		teams:  teams,
	}
}

func cloneFootballTeamStat(s models.FootballTeamStat) models.FootballTeamStat {
	s.LeaguePosition = clonePtr(s.LeaguePosition)
	s.WinProbability = clonePtr(s.WinProbability)
	s.Form = clonePtr(s.Form)
	s.GoalDifference = clonePtr(s.GoalDifference)
	s.Points = clonePtr(s.Points)
	s.RecentResults = cloneDoc(s.RecentResults)
	return s
}

func (r *MemoryFootballTeamStatRepository) Create(_ context.Context, stat *models.FootballTeamStat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.stats {
		if existing.TeamID == stat.TeamID {
			return ErrFootballTeamStatConflict
		}
	}

	stat.ID = r.nextID
	r.nextID++
	stat.CreatedAt = time.Now().UTC()
	r.stats[stat.ID] = cloneFootballTeamStat(*stat)
	return nil
}

func (r *MemoryFootballTeamStatRepository) GetByTeamID(_ context.Context, teamID int) (*models.FootballTeamStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := false
	var best models.FootballTeamStat
	for _, stat := range r.stats {
		if stat.TeamID != teamID {
			continue
		}
		if !found || stat.ID < best.ID {
			best = stat
			found = true
		}
	}
	if !found {
		return nil, ErrFootballTeamStatNotFound
	}
	best = cloneFootballTeamStat(best)
	return &best, nil
}

func (r *MemoryFootballTeamStatRepository) List(ctx context.Context, league string) ([]models.FootballTeamStat, error) {
	r.mu.RLock()
	stats := make([]models.FootballTeamStat, 0, len(r.stats))
	for _, stat := range r.stats {
		stats = append(stats, cloneFootballTeamStat(stat))
	}
	r.mu.RUnlock()

	if league != "" {
		filtered := stats[:0]
		for _, stat := range stats {
			team, err := r.teams.GetByID(ctx, stat.TeamID)
			if err != nil {
				continue
			}
			if team.League != nil && *team.League == league {
				filtered = append(filtered, stat)
			}
		}
		stats = filtered
	}

	sort.Slice(stats, func(i, j int) bool {
		pi, pj := stats[i].LeaguePosition, stats[j].LeaguePosition
		switch {
		case pi == nil && pj == nil:
			return stats[i].ID < stats[j].ID
		case pi == nil:
			return false
		case pj == nil:
			return true
		case *pi != *pj:
			return *pi < *pj
		default:
			return stats[i].ID < stats[j].ID
		}
	})
	return stats, nil
}
