package coach

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/nutridiary/internal/diary"
	"github.com/2beens/nutridiary/internal/scoring"
	"github.com/2beens/nutridiary/internal/telemetry/tracing"
	"github.com/2beens/nutridiary/internal/trends"
	"github.com/2beens/nutridiary/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=coach_test

type analysisService interface {
	Score(ctx context.Context, userID string, day time.Time) (*scoring.Report, error)
	Trends(ctx context.Context, userID string, day time.Time, days int) (*trends.Insights, error)
	Analysis(ctx context.Context, userID string, day time.Time, days int) (*Analysis, error)
}

type Handler struct {
	service analysisService
}

func NewHandler(service analysisService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/users/{userID}/score/{date}", h.HandleScore).Methods("GET", "OPTIONS").Name("score")
	r.HandleFunc("/users/{userID}/trends/{date}", h.HandleTrends).Methods("GET", "OPTIONS").Name("trends")
	r.HandleFunc("/users/{userID}/analysis/{date}", h.HandleAnalysis).Methods("GET", "OPTIONS").Name("analysis")
}

func (h *Handler) HandleScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.score")
	defer span.End()

	userID, day, ok := userAndDay(w, r)
	if !ok {
		return
	}

	report, err := h.service.Score(ctx, userID, day)
	if err != nil {
		log.Errorf("score %s on %s: %s", userID, day.Format(diary.DateLayout), err)
		http.Error(w, "score failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, report)
}

func (h *Handler) HandleTrends(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.trends")
	defer span.End()

	userID, day, ok := userAndDay(w, r)
	if !ok {
		return
	}
	days, ok := windowDays(w, r)
	if !ok {
		return
	}

	insights, err := h.service.Trends(ctx, userID, day, days)
	if err != nil {
		writeServiceError(w, "trends", userID, err)
		return
	}
	writeJSON(w, insights)
}

func (h *Handler) HandleAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.analysis")
	defer span.End()

	userID, day, ok := userAndDay(w, r)
	if !ok {
		return
	}
	days, ok := windowDays(w, r)
	if !ok {
		return
	}

	analysis, err := h.service.Analysis(ctx, userID, day, days)
	if err != nil {
		writeServiceError(w, "analysis", userID, err)
		return
	}
	writeJSON(w, analysis)
}

func userAndDay(w http.ResponseWriter, r *http.Request) (string, time.Time, bool) {
	vars := mux.Vars(r)
	day, err := diary.ParseDate(vars["date"])
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return "", time.Time{}, false
	}
	return vars["userID"], day, true
}

// windowDays reads the optional days query param; 0 means the service default.
func windowDays(w http.ResponseWriter, r *http.Request) (int, bool) {
	daysParam := r.URL.Query().Get("days")
	if daysParam == "" {
		return 0, true
	}
	days, err := strconv.Atoi(daysParam)
	if err != nil || days <= 0 {
		http.Error(w, "invalid days", http.StatusBadRequest)
		return 0, false
	}
	return days, true
}

func writeServiceError(w http.ResponseWriter, op, userID string, err error) {
	if errors.Is(err, ErrInvalidWindow) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Errorf("%s for %s: %s", op, userID, err)
	http.Error(w, op+" failed", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v any) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal response: %s", err)
		http.Error(w, "marshal response failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
