package models

import "time"

type F1Driver struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Team      string  `json:"team"`
	Number    *int    `json:"number,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

type RaceStatus string

const (
	RaceStatusUpcoming  RaceStatus = "upcoming"
	RaceStatusCompleted RaceStatus = "completed"
)

type F1Race struct {
	ID       int        `json:"id"`
	Name     string     `json:"name"`
	Location *string    `json:"location,omitempty"`
	Date     *time.Time `json:"date,omitempty"`
	Status   RaceStatus `json:"status"`
}

type F1Prediction struct {
	ID             int       `json:"id"`
	RaceID         int       `json:"raceId"`
	DriverID       int       `json:"driverId"`
	Position       *int      `json:"position,omitempty"`
	WinProbability *float64  `json:"winProbability,omitempty"`
	Factors        Document  `json:"factors"`
	CreatedAt      time.Time `json:"createdAt"`
}

// F1PredictionWithDriver is the read model for race prediction queries,
// each prediction joined with its driver.
type F1PredictionWithDriver struct {
	F1Prediction
	Driver F1Driver `json:"driver"`
}
