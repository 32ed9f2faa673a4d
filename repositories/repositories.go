package repositories

import "database/sql"

// Repositories bundles every collection behind its interface so the rest
// of the application does not care which backend is active.
type Repositories struct {
	Users               UserRepository
	Players             PlayerRepository
	PlayerMetrics       PlayerMetricsRepository
	Videos              VideoRepository
	F1Drivers           F1DriverRepository
	F1Races             F1RaceRepository
	F1Predictions       F1PredictionRepository
	FootballTeams       FootballTeamRepository
	FootballMatches     FootballMatchRepository
	FootballPredictions FootballPredictionRepository
	FootballTeamStats   FootballTeamStatRepository
}

func NewPostgresRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Users:               NewPostgresUserRepository(db),
		Players:             NewPostgresPlayerRepository(db),
		PlayerMetrics:       NewPostgresPlayerMetricsRepository(db),
		Videos:              NewPostgresVideoRepository(db),
		F1Drivers:           NewPostgresF1DriverRepository(db),
		F1Races:             NewPostgresF1RaceRepository(db),
		F1Predictions:       NewPostgresF1PredictionRepository(db),
		FootballTeams:       NewPostgresFootballTeamRepository(db),
		FootballMatches:     NewPostgresFootballMatchRepository(db),
		FootballPredictions: NewPostgresFootballPredictionRepository(db),
		FootballTeamStats:   NewPostgresFootballTeamStatRepository(db),
	}
}

func NewMemoryRepositories() *Repositories {
	metrics := NewMemoryPlayerMetricsRepository()
	drivers := NewMemoryF1DriverRepository()
	teams := NewMemoryFootballTeamRepository()

	return &Repositories{
		Users:               NewMemoryUserRepository(),
		Players:             NewMemoryPlayerRepository(metrics),
		PlayerMetrics:       metrics,
		Videos:              NewMemoryVideoRepository(),
		F1Drivers:           drivers,
		F1Races:             NewMemoryF1RaceRepository(),
		F1Predictions:       NewMemoryF1PredictionRepository(drivers),
		FootballTeams:       teams,
		FootballMatches:     NewMemoryFootballMatchRepository(),
		FootballPredictions: NewMemoryFootballPredictionRepository(),
		FootballTeamStats:   NewMemoryFootballTeamStatRepository(teams),
	}
}
