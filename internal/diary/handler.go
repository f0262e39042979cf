package diary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/nutridiary/internal/telemetry/metrics"
	"github.com/2beens/nutridiary/internal/telemetry/tracing"
	"github.com/2beens/nutridiary/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=diary_mocks_test.go -package=diary_test

type recordsRepo interface {
	Save(ctx context.Context, userID string, day time.Time, record *DailyRecord) error
	Get(ctx context.Context, userID string, day time.Time) (*DailyRecord, error)
	ListDates(ctx context.Context, userID string, from, to time.Time) ([]time.Time, error)
}

// maxListRange bounds the from/to range of a dates listing.
const maxListRange = 366 * 24 * time.Hour

type ListDatesResponse struct {
	Dates []string `json:"dates"`
}

type Handler struct {
	repo           recordsRepo
	metricsManager *metrics.Manager
	// onSaved is called after a record of the user has been superseded.
	onSaved func(userID string)
}

func NewHandler(repo recordsRepo, metricsManager *metrics.Manager, onSaved func(userID string)) *Handler {
	if onSaved == nil {
		onSaved = func(string) {}
	}
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
		onSaved:        onSaved,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/users/{userID}/diary/{date}", h.HandleSave).Methods("PUT", "OPTIONS").Name("save-record")
	r.HandleFunc("/users/{userID}/diary/{date}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-record")
	r.HandleFunc("/users/{userID}/diary", h.HandleListDates).Methods("GET", "OPTIONS").Name("list-record-dates")
}

func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diary.save")
	defer span.End()

	if !pkg.IsJSONContentType(r.Header.Get("Content-Type")) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	userID := vars["userID"]
	day, err := ParseDate(vars["date"])
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("user", userID), attribute.String("day", vars["date"]))

	var record DailyRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Errorf("save record, unmarshal json: %s", err)
		http.Error(w, "invalid record", http.StatusBadRequest)
		return
	}

	if err := h.repo.Save(ctx, userID, day, &record); err != nil {
		log.Errorf("save record for %s on %s: %s", userID, vars["date"], err)
		http.Error(w, "save record failed", http.StatusInternalServerError)
		return
	}
	h.metricsManager.CounterRecordsSaved.Inc()
	h.onSaved(userID)

	recordJson, err := json.Marshal(record)
	if err != nil {
		log.Errorf("marshal saved record: %s", err)
		http.Error(w, "marshal record failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, recordJson, http.StatusCreated)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diary.get")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["userID"]
	day, err := ParseDate(vars["date"])
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	record, err := h.repo.Get(ctx, userID, day)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}
		log.Errorf("get record for %s on %s: %s", userID, vars["date"], err)
		http.Error(w, "get record failed", http.StatusInternalServerError)
		return
	}

	recordJson, err := json.Marshal(record)
	if err != nil {
		log.Errorf("marshal record: %s", err)
		http.Error(w, "marshal record failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, recordJson)
}

func (h *Handler) HandleListDates(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diary.listdates")
	defer span.End()

	userID := mux.Vars(r)["userID"]
	from, err := ParseDate(r.URL.Query().Get("from"))
	if err != nil {
		http.Error(w, "invalid from date", http.StatusBadRequest)
		return
	}
	to, err := ParseDate(r.URL.Query().Get("to"))
	if err != nil {
		http.Error(w, "invalid to date", http.StatusBadRequest)
		return
	}
	if to.Before(from) || to.Sub(from) > maxListRange {
		http.Error(w, "invalid date range", http.StatusBadRequest)
		return
	}

	days, err := h.repo.ListDates(ctx, userID, from, to)
	if err != nil {
		log.Errorf("list record dates for %s: %s", userID, err)
		http.Error(w, "list dates failed", http.StatusInternalServerError)
		return
	}

	resp := ListDatesResponse{Dates: make([]string, 0, len(days))}
	for _, day := range days {
		resp.Dates = append(resp.Dates, day.Format(DateLayout))
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal dates response: %s", err)
		http.Error(w, "marshal dates failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
