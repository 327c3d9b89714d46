package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rmoreira/quizcraft/pkg/apperr"
	"github.com/rmoreira/quizcraft/pkg/models"
	"github.com/rmoreira/quizcraft/pkg/repository"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler verifies credentials on each login call. The service is
// stateless: no session or token is issued, callers resubmit credentials.
type AuthHandler struct {
	userRepo repository.UserRepo
}

func NewAuthHandler(ur repository.UserRepo) *AuthHandler {
	return &AuthHandler{userRepo: ur}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string       `json:"message"`
	Type    string       `json:"type"`
	Data    *models.User `json:"data"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, "email and password are required", http.StatusBadRequest)
		return
	}

	u, err := h.userRepo.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeError(w, "incorrect email or password", http.StatusUnauthorized)
			return
		}
		writeRepoError(w, err, "error during login")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		writeError(w, "incorrect email or password", http.StatusUnauthorized)
		return
	}

	writeJSON(w, loginResponse{Message: "login successful", Type: "success", Data: u}, http.StatusOK)
}
