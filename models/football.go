package models

import "time"

type FootballTeam struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	League  *string `json:"league,omitempty"`
	LogoURL *string `json:"logoUrl,omitempty"`
}

type MatchStatus string

const (
	MatchStatusUpcoming  MatchStatus = "upcoming"
	MatchStatusCompleted MatchStatus = "completed"
)

type FootballMatch struct {
	ID         int         `json:"id"`
	HomeTeamID int         `json:"homeTeamId"`
	AwayTeamID int         `json:"awayTeamId"`
	Date       *time.Time  `json:"date,omitempty"`
	Status     MatchStatus `json:"status"`
	HomeScore  *int        `json:"homeScore,omitempty"`
	AwayScore  *int        `json:"awayScore,omitempty"`
}

type FootballPrediction struct {
	ID                 int       `json:"id"`
	MatchID            int       `json:"matchId"`
	PredictedHomeScore *int      `json:"predictedHomeScore,omitempty"`
	PredictedAwayScore *int      `json:"predictedAwayScore,omitempty"`
	WinProbability     *float64  `json:"winProbability,omitempty"`
	DrawProbability    *float64  `json:"drawProbability,omitempty"`
	LossProbability    *float64  `json:"lossProbability,omitempty"`
	Confidence         *int      `json:"confidence,omitempty"`
	Stats              Document  `json:"stats"`
	CreatedAt          time.Time `json:"createdAt"`
}

type FootballTeamStat struct {
	ID              int       `json:"id"`
	TeamID          int       `json:"teamId"`
	LeaguePosition  *int      `json:"leaguePosition,omitempty"`
	WinProbability  *float64  `json:"winProbability,omitempty"`
	Form            *string   `json:"form,omitempty"`
	GoalDifference  *int      `json:"goalDifference,omitempty"`
	Points          *int      `json:"points,omitempty"`
	RecentResults   Document  `json:"recentResults"`
	CreatedAt       time.Time `json:"createdAt"`
}
