package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rmoreira/quizcraft/pkg/models"
	"github.com/rmoreira/quizcraft/pkg/repository"
	"golang.org/x/crypto/bcrypt"
)

const defaultProfileImage = "/defaultProfile.png"

type UsersHandler struct {
	userRepo repository.UserRepo
}

func NewUsersHandler(ur repository.UserRepo) *UsersHandler {
	return &UsersHandler{userRepo: ur}
}

type createUserRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	ProfileImage string `json:"profile_image"`
}

func (h *UsersHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeError(w, "name, email and password are required", http.StatusBadRequest)
		return
	}
	if req.ProfileImage == "" {
		req.ProfileImage = defaultProfileImage
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, "error hashing password", http.StatusInternalServerError)
		return
	}

	u := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		ProfileImage: req.ProfileImage,
	}

	id, err := h.userRepo.CreateUser(r.Context(), u)
	if err != nil {
		writeRepoError(w, err, "error creating user")
		return
	}
	u.ID = id

	writeJSON(w, u, http.StatusCreated)
}

func (h *UsersHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userRepo.ListUsers(r.Context())
	if err != nil {
		writeRepoError(w, err, "error listing users")
		return
	}
	if users == nil {
		users = []models.User{}
	}

	writeJSON(w, users, http.StatusOK)
}

func (h *UsersHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		writeError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	u, err := h.userRepo.GetUserByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, err, "user not found")
		return
	}

	writeJSON(w, u, http.StatusOK)
}
