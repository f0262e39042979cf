package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/nutridiary/internal/telemetry/tracing"
	"github.com/2beens/nutridiary/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=profile_mocks_test.go -package=profile_test

type profileStore interface {
	Get(ctx context.Context, userID string) (*UserProfile, error)
	Save(ctx context.Context, userID string, p *UserProfile) error
}

type Handler struct {
	store   profileStore
	onSaved func(userID string)
}

func NewHandler(store profileStore, onSaved func(userID string)) *Handler {
	if onSaved == nil {
		onSaved = func(string) {}
	}
	return &Handler{
		store:   store,
		onSaved: onSaved,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/users/{userID}/profile", h.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/users/{userID}/profile", h.HandleSave).Methods("PUT", "OPTIONS").Name("save-profile")
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	userID := mux.Vars(r)["userID"]
	p, err := h.store.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("get profile %s: %s", userID, err)
		http.Error(w, "get profile failed", http.StatusInternalServerError)
		return
	}

	profileJson, err := json.Marshal(p)
	if err != nil {
		log.Errorf("marshal profile: %s", err)
		http.Error(w, "marshal profile failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, profileJson)
}

func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.save")
	defer span.End()

	if !pkg.IsJSONContentType(r.Header.Get("Content-Type")) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID := mux.Vars(r)["userID"]
	var p UserProfile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		log.Errorf("save profile, unmarshal json: %s", err)
		http.Error(w, "invalid profile", http.StatusBadRequest)
		return
	}
	if p.Weight < 0 || p.LeanBodyMass < 0 {
		http.Error(w, "invalid profile", http.StatusBadRequest)
		return
	}

	if err := h.store.Save(ctx, userID, &p); err != nil {
		log.Errorf("save profile %s: %s", userID, err)
		http.Error(w, "save profile failed", http.StatusInternalServerError)
		return
	}
	h.onSaved(userID)

	pkg.WriteResponse(w, pkg.ContentType.Text, "saved", http.StatusCreated)
}
