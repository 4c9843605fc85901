package models

import (
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/exercises"
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/memory"
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/mood"
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/resources"
)

// MessageRequest is an incoming user message
type MessageRequest struct {
	Text string `json:"text"`
}

// Classification is the emotion surface of a processed message
type Classification struct {
	Emotion       string  `json:"emotion"`
	Confidence    float64 `json:"confidence"`
	DescriptionAR string  `json:"description_ar"`
	Source        string  `json:"source"`
}

// MessageResponse is returned after processing a message
type MessageResponse struct {
	SessionID      string         `json:"session_id"`
	Classification Classification `json:"classification"`
	Reply          string         `json:"reply"`
	MoodScore      int            `json:"mood_score"`
	Followup       string         `json:"followup,omitempty"`
}

// TrendsResponse wraps window statistics; Stats is null when the window
// holds no entries
type TrendsResponse struct {
	Days  int         `json:"days"`
	Stats *mood.Stats `json:"stats"`
}

// InsightsResponse carries the generated insight strings
type InsightsResponse struct {
	Days     int      `json:"days"`
	Insights []string `json:"insights"`
}

// ClearHistoryResponse is returned after wiping the mood history
type ClearHistoryResponse struct {
	Cleared bool `json:"cleared"`
}

// TipResponse is the daily tip endpoint payload
type TipResponse struct {
	Date string        `json:"date"`
	Tip  resources.Tip `json:"tip"`
}

// ResourcesResponse is an advice sheet plus the emergency contacts
type ResourcesResponse struct {
	Sheet     resources.Sheet                `json:"sheet"`
	Emergency map[string][]resources.Contact `json:"emergency"`
}

// ExercisesResponse is the full catalog
type ExercisesResponse struct {
	Categories []exercises.Category `json:"categories"`
}

// RecommendResponse pairs a recommendation with the resolved exercise
type RecommendResponse struct {
	Emotion        string                   `json:"emotion"`
	Recommendation exercises.Recommendation `json:"recommendation"`
	Exercise       exercises.Exercise       `json:"exercise"`
}

// CompleteExerciseRequest records a finished exercise
type CompleteExerciseRequest struct {
	Category string `json:"category"`
	Exercise string `json:"exercise"`
	Rating   int    `json:"rating,omitempty"`
}

// CompleteExerciseResponse acknowledges the recording
type CompleteExerciseResponse struct {
	Recorded bool `json:"recorded"`
}

// ChallengeResponse is the daily challenge payload
type ChallengeResponse struct {
	Date      string              `json:"date"`
	Challenge exercises.Challenge `json:"challenge"`
}

// MemoryResponse exposes the session's retained conversation turns
type MemoryResponse struct {
	SessionID string        `json:"session_id"`
	Turns     []memory.Turn `json:"turns"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status    string `json:"status"`
	Responder string `json:"responder"`
	Version   string `json:"version"`
}

// ErrorResponse is the uniform error payload
type ErrorResponse struct {
	Error string `json:"error"`
}
