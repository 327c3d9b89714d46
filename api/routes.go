package api

import (
	"github.com/gorilla/mux"
	"github.com/rmoreira/quizcraft/internal/db"
	"github.com/rmoreira/quizcraft/internal/repository/sqlite"

	"log/slog"
)

func SetupRoutes(version, buildTime string, db *db.DB, logger *slog.Logger) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository
	repo := sqlite.New(db, logger)

	// Create handlers
	systemHandler := &SystemHandler{}
	usersHandler := NewUsersHandler(repo)
	authHandler := NewAuthHandler(repo)
	activitiesHandler := NewActivitiesHandler(repo)
	responsesHandler := NewResponsesHandler(repo, repo)

	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")

	// Users
	r.HandleFunc("/users", usersHandler.CreateUser).Methods("POST")
	r.HandleFunc("/users", usersHandler.ListUsers).Methods("GET")
	r.HandleFunc("/users/{id:[0-9]+}", usersHandler.GetUser).Methods("GET")
	r.HandleFunc("/login", authHandler.Login).Methods("POST")

	// Activities
	r.HandleFunc("/activities", activitiesHandler.CreateActivity).Methods("POST")
	r.HandleFunc("/activities", activitiesHandler.ListActivities).Methods("GET")
	r.HandleFunc("/activities/{id:[0-9]+}", activitiesHandler.UpdateActivity).Methods("PUT")
	r.HandleFunc("/activities/{id:[0-9]+}", activitiesHandler.DeleteActivity).Methods("DELETE")
	r.HandleFunc("/activities/id/{id:[0-9]+}", activitiesHandler.GetActivityByID).Methods("GET")
	r.HandleFunc("/activities/access/{access_code}", activitiesHandler.GetActivityByAccessCode).Methods("GET")

	// Responses
	r.HandleFunc("/responses", responsesHandler.SubmitResponse).Methods("POST")
	r.HandleFunc("/responses/activity/{activity_id:[0-9]+}", responsesHandler.ListResponses).Methods("GET")

	return r
}
