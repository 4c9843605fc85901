package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/config"
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/db"
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/emotion"
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/exercises"
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/models"
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/mood"
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/resources"
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/responder"
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/session"
)

// defaultWindowDays is the trends/insights window when none is requested.
const defaultWindowDays = 7

func writeError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type Handlers struct {
	cfg     *config.Config
	db      *db.DB
	manager *session.Manager
	resp    *responder.Responder
	now     func() time.Time
}

func NewHandlers(cfg *config.Config, database *db.DB, manager *session.Manager, resp *responder.Responder) *Handlers {
	return &Handlers{
		cfg:     cfg,
		db:      database,
		manager: manager,
		resp:    resp,
		now:     time.Now,
	}
}

// Health handles GET /health
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:    "ok",
		Responder: h.checkResponder(),
		Version:   "1.0.0",
	})
}

func (h *Handlers) checkResponder() string {
	if h.resp.FallbackOnly() {
		return "fallback-only"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.resp.HealthCheck(ctx); err != nil {
		return "error: " + err.Error()
	}
	return "connected"
}

// Message handles POST /api/v1/message
func (h *Handlers) Message(w http.ResponseWriter, r *http.Request) {
	var req models.MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	s := GetSession(r)
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	res, err := h.manager.HandleMessage(ctx, s, req.Text)
	if err != nil {
		log.Error().Err(err).Str("session", s.ID).Msg("message pipeline failed")
		writeError(w, http.StatusInternalServerError, "failed to process message")
		return
	}

	writeJSON(w, http.StatusOK, models.MessageResponse{
		SessionID: res.SessionID,
		Classification: models.Classification{
			Emotion:       string(res.Classification.Emotion),
			Confidence:    res.Classification.RoundedConfidence(),
			DescriptionAR: res.Classification.DescriptionAR,
			Source:        res.Classification.Source,
		},
		Reply:     res.Reply,
		MoodScore: res.MoodScore,
		Followup:  res.Followup,
	})
}

func windowDays(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return defaultWindowDays, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 0 {
		return 0, strconv.ErrSyntax
	}
	return days, nil
}

// Trends handles GET /api/v1/trends
func (h *Handlers) Trends(w http.ResponseWriter, r *http.Request) {
	days, err := windowDays(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "days must be a non-negative integer")
		return
	}

	stats := mood.Statistics(h.manager.Store().Window(days))
	writeJSON(w, http.StatusOK, models.TrendsResponse{Days: days, Stats: stats})
}

// Insights handles GET /api/v1/insights
func (h *Handlers) Insights(w http.ResponseWriter, r *http.Request) {
	days, err := windowDays(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "days must be a non-negative integer")
		return
	}

	stats := mood.Statistics(h.manager.Store().Window(days))
	insights := mood.Insights(stats)
	if insights == nil {
		insights = []string{}
	}
	writeJSON(w, http.StatusOK, models.InsightsResponse{Days: days, Insights: insights})
}

// ExportHistory handles GET /api/v1/history/export
func (h *Handlers) ExportHistory(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

	switch format {
	case "json":
		data, err := h.manager.Store().ExportJSON()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "export failed")
			return
		}
		w.Header().Set("Content-Disposition", `attachment; filename="mood_history.json"`)
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	case "csv":
		data, err := h.manager.Store().ExportCSV()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "export failed")
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="mood_history.csv"`)
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	default:
		writeError(w, http.StatusBadRequest, "format must be json or csv")
	}
}

// ClearHistory handles DELETE /api/v1/history. The confirm query parameter
// must be "true"; the wipe is irreversible.
func (h *Handlers) ClearHistory(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		writeError(w, http.StatusBadRequest, "confirm=true is required to clear history")
		return
	}

	if err := h.manager.Store().ClearAll(); err != nil {
		log.Error().Err(err).Msg("failed to clear mood history")
		writeError(w, http.StatusInternalServerError, "failed to clear history")
		return
	}
	writeJSON(w, http.StatusOK, models.ClearHistoryResponse{Cleared: true})
}

// DailyTip handles GET /api/v1/tip
func (h *Handlers) DailyTip(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	writeJSON(w, http.StatusOK, models.TipResponse{
		Date: now.Format("2006-01-02"),
		Tip:  resources.DailyTip(now),
	})
}

// Resources handles GET /api/v1/resources/{emotion}
func (h *Handlers) Resources(w http.ResponseWriter, r *http.Request) {
	label := emotion.Label(chi.URLParam(r, "emotion"))
	writeJSON(w, http.StatusOK, models.ResourcesResponse{
		Sheet:     resources.ForEmotion(label),
		Emergency: resources.EmergencyContacts(),
	})
}

// Exercises handles GET /api/v1/exercises
func (h *Handlers) Exercises(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.ExercisesResponse{Categories: exercises.Catalog()})
}

// RecommendExercise handles GET /api/v1/exercises/recommend
func (h *Handlers) RecommendExercise(w http.ResponseWriter, r *http.Request) {
	label := emotion.Label(r.URL.Query().Get("emotion"))
	rec := exercises.Recommend(label)

	ex, err := exercises.Lookup(rec.Category, rec.Exercise)
	if err != nil {
		log.Error().Err(err).Msg("recommendation points at missing exercise")
		writeError(w, http.StatusInternalServerError, "recommendation unavailable")
		return
	}

	writeJSON(w, http.StatusOK, models.RecommendResponse{
		Emotion:        string(label),
		Recommendation: rec,
		Exercise:       ex,
	})
}

// CompleteExercise handles POST /api/v1/exercises/complete
func (h *Handlers) CompleteExercise(w http.ResponseWriter, r *http.Request) {
	var req models.CompleteExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !exercises.ValidCategory(req.Category) {
		writeError(w, http.StatusBadRequest, "unknown exercise category")
		return
	}
	if _, err := exercises.Lookup(req.Category, req.Exercise); err != nil {
		writeError(w, http.StatusBadRequest, "unknown exercise")
		return
	}
	if req.Rating < 0 || req.Rating > 5 {
		writeError(w, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}

	s := GetSession(r)
	if h.db != nil {
		if err := h.db.RecordExerciseCompletion(s.ID, req.Category, req.Exercise, req.Rating); err != nil {
			log.Error().Err(err).Str("session", s.ID).Msg("failed to record exercise completion")
			writeError(w, http.StatusInternalServerError, "failed to record completion")
			return
		}
	}
	writeJSON(w, http.StatusOK, models.CompleteExerciseResponse{Recorded: true})
}

// DailyChallenge handles GET /api/v1/exercises/challenge
func (h *Handlers) DailyChallenge(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	writeJSON(w, http.StatusOK, models.ChallengeResponse{
		Date:      now.Format("2006-01-02"),
		Challenge: exercises.DailyChallenge(now),
	})
}

// Memory handles GET /api/v1/memory
func (h *Handlers) Memory(w http.ResponseWriter, r *http.Request) {
	s := GetSession(r)
	writeJSON(w, http.StatusOK, models.MemoryResponse{
		SessionID: s.ID,
		Turns:     s.Turns(),
	})
}

// ClearMemory handles DELETE /api/v1/memory. Only the conversation memory is
// wiped; the mood history stays intact.
func (h *Handlers) ClearMemory(w http.ResponseWriter, r *http.Request) {
	s := GetSession(r)
	s.ClearMemory()
	writeJSON(w, http.StatusOK, models.MemoryResponse{
		SessionID: s.ID,
		Turns:     s.Turns(),
	})
}
