package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rmoreira/quizcraft/pkg/models"
	"github.com/rmoreira/quizcraft/pkg/repository"
)

type ActivitiesHandler struct {
	activityRepo repository.ActivityRepo
}

func NewActivitiesHandler(ar repository.ActivityRepo) *ActivitiesHandler {
	return &ActivitiesHandler{activityRepo: ar}
}

type questionPayload struct {
	Text string `json:"text"`
}

type activityRequest struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	AccessCode  string            `json:"access_code"`
	UserID      int64             `json:"user_id"`
	Questions   []questionPayload `json:"questions"`
}

func questionTexts(qs []questionPayload) []string {
	out := make([]string, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.Text)
	}
	return out
}

func (h *ActivitiesHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req activityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.AccessCode = strings.TrimSpace(req.AccessCode)
	if req.Name == "" || req.Description == "" || req.AccessCode == "" || req.UserID <= 0 {
		writeError(w, "name, description, access_code and user_id are required", http.StatusBadRequest)
		return
	}

	a := &models.Activity{
		Name:        req.Name,
		Description: req.Description,
		AccessCode:  req.AccessCode,
		OwnerID:     req.UserID,
	}

	created, err := h.activityRepo.CreateActivity(r.Context(), a, questionTexts(req.Questions))
	if err != nil {
		writeRepoError(w, err, "error creating activity")
		return
	}

	writeJSON(w, map[string]any{"message": "activity created", "activity": created}, http.StatusCreated)
}

func (h *ActivitiesHandler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		writeError(w, "invalid activity id", http.StatusBadRequest)
		return
	}

	var req activityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.AccessCode = strings.TrimSpace(req.AccessCode)
	if req.Name == "" || req.Description == "" || req.AccessCode == "" || req.UserID <= 0 {
		writeError(w, "name, description, access_code and user_id are required", http.StatusBadRequest)
		return
	}

	a := &models.Activity{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		AccessCode:  req.AccessCode,
	}

	updated, err := h.activityRepo.UpdateActivity(r.Context(), a, questionTexts(req.Questions), req.UserID)
	if err != nil {
		writeRepoError(w, err, "error updating activity")
		return
	}

	writeJSON(w, updated, http.StatusOK)
}

type deleteActivityRequest struct {
	UserID int64 `json:"user_id"`
}

func (h *ActivitiesHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		writeError(w, "invalid activity id", http.StatusBadRequest)
		return
	}

	var req deleteActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.UserID <= 0 {
		writeError(w, "user_id is required", http.StatusBadRequest)
		return
	}

	if err := h.activityRepo.DeleteActivity(r.Context(), id, req.UserID); err != nil {
		writeRepoError(w, err, "error deleting activity")
		return
	}

	writeJSON(w, map[string]string{"message": "activity deleted"}, http.StatusOK)
}

// ListActivities requires an owner id: an unauthenticated caller must not
// enumerate arbitrary activities.
func (h *ActivitiesHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	ownerStr := r.URL.Query().Get("userId")
	if ownerStr == "" {
		writeError(w, "userId is required", http.StatusBadRequest)
		return
	}
	ownerID, err := strconv.ParseInt(ownerStr, 10, 64)
	if err != nil || ownerID <= 0 {
		writeError(w, "invalid userId", http.StatusBadRequest)
		return
	}

	acts, err := h.activityRepo.ListActivitiesByOwner(r.Context(), ownerID)
	if err != nil {
		writeRepoError(w, err, "error listing activities")
		return
	}
	if acts == nil {
		acts = []models.Activity{}
	}

	writeJSON(w, acts, http.StatusOK)
}

func (h *ActivitiesHandler) GetActivityByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		writeError(w, "invalid activity id", http.StatusBadRequest)
		return
	}

	a, err := h.activityRepo.GetActivityByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, err, "activity not found")
		return
	}

	writeJSON(w, a, http.StatusOK)
}

func (h *ActivitiesHandler) GetActivityByAccessCode(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["access_code"]
	if code == "" {
		writeError(w, "access code is required", http.StatusBadRequest)
		return
	}

	a, err := h.activityRepo.GetActivityByAccessCode(r.Context(), code)
	if err != nil {
		writeRepoError(w, err, "activity not found")
		return
	}

	writeJSON(w, a, http.StatusOK)
}
