package models

import "time"

type Player struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Age              *int      `json:"age,omitempty"`
	Team             *string   `json:"team,omitempty"`
	Position         *string   `json:"position,omitempty"`
	Description      *string   `json:"description,omitempty"`
	AvatarURL        *string   `json:"avatarUrl,omitempty"`
	RecruitmentMatch *int      `json:"recruitmentMatch,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// PlayerWithMetrics is the read model for joined player queries.
// Metrics is null when the player has no metrics record.
type PlayerWithMetrics struct {
	Player
	Metrics *PlayerMetrics `json:"metrics"`
}

// PlayerPatch carries a partial update. Unset fields keep their prior
// value, fields set to JSON null clear the stored value.
type PlayerPatch struct {
	Name             Optional[string] `json:"name"`
	Age              Optional[int]    `json:"age"`
	Team             Optional[string] `json:"team"`
	Position         Optional[string] `json:"position"`
	Description      Optional[string] `json:"description"`
	AvatarURL        Optional[string] `json:"avatarUrl"`
	RecruitmentMatch Optional[int]    `json:"recruitmentMatch"`
}

type PlayerMetrics struct {
	ID          int       `json:"id"`
	PlayerID    int       `json:"playerId"`
	Pace        *float64  `json:"pace,omitempty"`
	Technique   *float64  `json:"technique,omitempty"`
	Finishing   *float64  `json:"finishing,omitempty"`
	Passing     *float64  `json:"passing,omitempty"`
	Vision      *float64  `json:"vision,omitempty"`
	Stamina     *float64  `json:"stamina,omitempty"`
	Tackling    *float64  `json:"tackling,omitempty"`
	Strength    *float64  `json:"strength,omitempty"`
	Positioning *float64  `json:"positioning,omitempty"`
	Agility     *float64  `json:"agility,omitempty"`
	BallControl *float64  `json:"ballControl,omitempty"`
	Speed       *float64  `json:"speed,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type PlayerMetricsPatch struct {
	PlayerID    Optional[int]     `json:"playerId"`
	Pace        Optional[float64] `json:"pace"`
	Technique   Optional[float64] `json:"technique"`
	Finishing   Optional[float64] `json:"finishing"`
	Passing     Optional[float64] `json:"passing"`
	Vision      Optional[float64] `json:"vision"`
	Stamina     Optional[float64] `json:"stamina"`
	Tackling    Optional[float64] `json:"tackling"`
	Strength    Optional[float64] `json:"strength"`
	Positioning Optional[float64] `json:"positioning"`
	Agility     Optional[float64] `json:"agility"`
	BallControl Optional[float64] `json:"ballControl"`
	Speed       Optional[float64] `json:"speed"`
}
