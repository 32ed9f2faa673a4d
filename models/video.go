package models

import "time"

type VideoStatus string

const (
	VideoStatusPending   VideoStatus = "pending"
	VideoStatusAnalyzing VideoStatus = "analyzing"
	VideoStatusCompleted VideoStatus = "completed"
)

type Video struct {
	ID              int         `json:"id"`
	Title           string      `json:"title"`
	FileName        string      `json:"fileName"`
	FileSize        *int64      `json:"fileSize,omitempty"`
	Duration        *int        `json:"duration,omitempty"`
	PlayerID        *int        `json:"playerId,omitempty"`
	UploadedByID    *int        `json:"uploadedById,omitempty"`
	Status          VideoStatus `json:"status"`
	AnalysisResults Document    `json:"analysisResults"`
	CreatedAt       time.Time   `json:"createdAt"`
}

type VideoPatch struct {
	Title           Optional[string]      `json:"title"`
	FileName        Optional[string]      `json:"fileName"`
	FileSize        Optional[int64]       `json:"fileSize"`
	Duration        Optional[int]         `json:"duration"`
	PlayerID        Optional[int]         `json:"playerId"`
	UploadedByID    Optional[int]         `json:"uploadedById"`
	Status          Optional[VideoStatus] `json:"status"`
	AnalysisResults Optional[Document]    `json:"analysisResults"`
}
