package roadmap

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/dsa-sprint/backend/internal/models"
	"github.com/gorilla/mux"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateProfile handles POST /api/v1/profile.
func (h *Handler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req models.ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.service.UpsertProfile(req)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: verr.Error()})
			return
		}
		log.Printf("[roadmap] profile upsert failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to save profile"})
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// GetUser handles GET /api/v1/user?email=.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.UserByEmail(r.URL.Query().Get("email"))
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: verr.Error()})
			return
		}
		if errors.Is(err, sql.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "User not found"})
			return
		}
		log.Printf("[roadmap] user lookup failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load user"})
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// CurrentPlan handles GET /api/v1/plan/current?user_id=.
func (h *Handler) CurrentPlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	plan, err := h.service.CurrentPlan(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "No plan found"})
			return
		}
		log.Printf("[roadmap] plan fetch failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load plan"})
		return
	}

	writeJSON(w, http.StatusOK, plan)
}

// GeneratePlan handles POST /api/v1/plan/generate.
func (h *Handler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req models.GeneratePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.UserID <= 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "user_id is required"})
		return
	}

	plan, err := h.service.GeneratePlan(r.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "User not found"})
			return
		}
		log.Printf("[roadmap] plan generation failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to generate plan: " + err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, plan)
}

// DailyTask handles GET /api/v1/daily/{date}?user_id=.
func (h *Handler) DailyTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	task, err := h.service.DailyTask(userID, mux.Vars(r)["date"])
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "date must be YYYY-MM-DD"})
			return
		}
		var noTask *ErrNoTask
		if errors.As(err, &noTask) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: noTask.Error()})
			return
		}
		if errors.Is(err, sql.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "No plan found"})
			return
		}
		log.Printf("[roadmap] daily task failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load daily task"})
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func userIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "user_id is required"})
		return 0, false
	}
	return userID, true
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
