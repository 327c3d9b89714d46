package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rmoreira/quizcraft/pkg/apperr"
	"github.com/rmoreira/quizcraft/pkg/repository"
)

type ResponsesHandler struct {
	responseRepo repository.ResponseRepo
	userRepo     repository.UserRepo
}

func NewResponsesHandler(rr repository.ResponseRepo, ur repository.UserRepo) *ResponsesHandler {
	return &ResponsesHandler{responseRepo: rr, userRepo: ur}
}

type answerPayload struct {
	Text string `json:"text"`
}

type submitResponseRequest struct {
	ActivityID int64           `json:"activityId"`
	User       int64           `json:"user"`
	Answers    []answerPayload `json:"answers"`
}

type submitResponseResult struct {
	Message    string `json:"message"`
	ResponseID int64  `json:"responseId"`
}

func (h *ResponsesHandler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	var req submitResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.User <= 0 {
		writeError(w, "invalid user id", http.StatusBadRequest)
		return
	}
	if req.ActivityID <= 0 {
		writeError(w, "invalid activity id", http.StatusBadRequest)
		return
	}

	// Identity lookup: the submitter must exist.
	if _, err := h.userRepo.GetUserByID(r.Context(), req.User); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeError(w, "user not found", http.StatusNotFound)
			return
		}
		writeRepoError(w, err, "error submitting response")
		return
	}

	answers := make([]string, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, a.Text)
	}

	id, err := h.responseRepo.SubmitResponse(r.Context(), req.ActivityID, req.User, answers)
	if err != nil {
		writeRepoError(w, err, "error submitting response")
		return
	}

	writeJSON(w, submitResponseResult{Message: "response submitted", ResponseID: id}, http.StatusCreated)
}

func (h *ResponsesHandler) ListResponses(w http.ResponseWriter, r *http.Request) {
	activityID, err := strconv.ParseInt(mux.Vars(r)["activity_id"], 10, 64)
	if err != nil || activityID <= 0 {
		writeError(w, "invalid activity id", http.StatusBadRequest)
		return
	}

	out, err := h.responseRepo.ListResponsesByActivity(r.Context(), activityID)
	if err != nil {
		writeRepoError(w, err, "error listing responses")
		return
	}

	writeJSON(w, out, http.StatusOK)
}
