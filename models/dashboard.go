package models

// DashboardSummary aggregates the landing-page queries into one payload.
type DashboardSummary struct {
	TopPlayers      []PlayerWithMetrics `json:"topPlayers"`
	RecentVideos    []Video             `json:"recentVideos"`
	UpcomingRaces   []F1Race            `json:"upcomingRaces"`
	UpcomingMatches []FootballMatch     `json:"upcomingMatches"`
}
