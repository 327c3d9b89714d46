package models

// Domain models matching the database schema in db/migrations/0001_init.sql

type User struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name" validate:"required"`
	Email        string `json:"email" db:"email" validate:"required,email"`
	PasswordHash string `json:"-" db:"password_hash"`
	ProfileImage string `json:"profile_image" db:"profile_image"`
	Created      int64  `json:"created_at" db:"created"`
}

type Activity struct {
	ID          int64      `json:"id" db:"id"`
	Name        string     `json:"name" db:"name" validate:"required"`
	Description string     `json:"description" db:"description" validate:"required"`
	AccessCode  string     `json:"access_code" db:"access_code" validate:"required"`
	OwnerID     int64      `json:"user_id" db:"user_id"`
	Created     int64      `json:"created_at" db:"created"`
	Questions   []Question `json:"questions,omitempty"`
}

type Question struct {
	ID         int64  `json:"id" db:"id"`
	ActivityID int64  `json:"activity_id" db:"activity_id"`
	Position   int    `json:"position" db:"position"`
	Text       string `json:"text" db:"text"`
}

type Response struct {
	ID         int64 `json:"id" db:"id"`
	ActivityID int64 `json:"activity_id" db:"activity_id"`
	UserID     int64 `json:"user_id" db:"user_id"`
	Created    int64 `json:"created_at" db:"created"`
}

type Answer struct {
	ID         int64  `json:"id" db:"id"`
	ResponseID int64  `json:"response_id" db:"response_id"`
	Position   int    `json:"position" db:"position"`
	Text       string `json:"text" db:"text"`
}

// ResponseSummary is the denormalized row returned when listing the
// responses of an activity: the response joined to the submitter's display
// name plus the ordered answer texts.
type ResponseSummary struct {
	ID         int64    `json:"id"`
	ActivityID int64    `json:"activity_id"`
	UserID     int64    `json:"user_id"`
	UserName   string   `json:"user_name"`
	Date       int64    `json:"date"`
	Answers    []string `json:"answers"`
}
