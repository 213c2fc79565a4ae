package models

import "time"

// Mentions breaks an exam result down by honors tier. JSON keys match the
// public API.
type Mentions struct {
	TresBien  int `json:"tresBien" validate:"gte=0"`
	Bien      int `json:"bien" validate:"gte=0"`
	AssezBien int `json:"assezBien" validate:"gte=0"`
}

// Result is a yearly exam result entry.
type Result struct {
	ID          string    `json:"id"`
	SuccessRate float64   `json:"successRate"`
	Date        time.Time `json:"date"`
	Mentions    Mentions  `json:"mentions"`
}

// ResultRequest is the payload for recording a new result.
type ResultRequest struct {
	SuccessRate float64   `json:"successRate" validate:"gte=0,lte=100"`
	Date        time.Time `json:"date" binding:"required"`
	Mentions    Mentions  `json:"mentions"`
}
