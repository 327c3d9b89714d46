package mock

import (
	"context"
	"fmt"

	"github.com/rmoreira/quizcraft/pkg/apperr"
	"github.com/rmoreira/quizcraft/pkg/models"
	"github.com/rmoreira/quizcraft/pkg/repository"
)

// Ensure the mocks satisfy the public contracts.
var _ repository.UserRepo = (*UserRepo)(nil)
var _ repository.ActivityRepo = (*ActivityRepo)(nil)
var _ repository.ResponseRepo = (*ResponseRepo)(nil)

// Test helpers and mocks
type Mocks struct {
	UserRepo     *UserRepo
	ActivityRepo *ActivityRepo
	ResponseRepo *ResponseRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		UserRepo:     &UserRepo{},
		ActivityRepo: &ActivityRepo{},
		ResponseRepo: &ResponseRepo{},
	}
}

type UserRepo struct {
	Stored    *models.User
	CreateErr error
	GetErr    error
}

func (m *UserRepo) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.Stored = &models.User{ID: 1, Name: u.Name, Email: u.Email, PasswordHash: u.PasswordHash, ProfileImage: u.ProfileImage}
	return 1, nil
}

func (m *UserRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Stored != nil && m.Stored.ID == id {
		return m.Stored, nil
	}
	return nil, fmt.Errorf("user: %w", apperr.ErrNotFound)
}

func (m *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Stored != nil && m.Stored.Email == email {
		return m.Stored, nil
	}
	return nil, fmt.Errorf("user: %w", apperr.ErrNotFound)
}

func (m *UserRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Stored == nil {
		return nil, nil
	}
	return []models.User{*m.Stored}, nil
}

type ActivityRepo struct {
	Stored    *models.Activity
	CreateErr error
	UpdateErr error
	DeleteErr error
	GetErr    error
}

func (m *ActivityRepo) CreateActivity(ctx context.Context, a *models.Activity, questions []string) (*models.Activity, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	out := *a
	out.ID = 1
	for i, text := range questions {
		out.Questions = append(out.Questions, models.Question{ID: int64(i + 1), ActivityID: out.ID, Position: i, Text: text})
	}
	m.Stored = &out
	return &out, nil
}

func (m *ActivityRepo) UpdateActivity(ctx context.Context, a *models.Activity, questions []string, requesterID int64) (*models.Activity, error) {
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	if m.Stored == nil || m.Stored.ID != a.ID {
		return nil, fmt.Errorf("activity: %w", apperr.ErrNotFound)
	}
	if m.Stored.OwnerID != requesterID {
		return nil, fmt.Errorf("activity: %w", apperr.ErrForbidden)
	}
	out := *a
	out.OwnerID = requesterID
	for i, text := range questions {
		out.Questions = append(out.Questions, models.Question{ID: int64(i + 1), ActivityID: out.ID, Position: i, Text: text})
	}
	m.Stored = &out
	return &out, nil
}

func (m *ActivityRepo) DeleteActivity(ctx context.Context, id, requesterID int64) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	if m.Stored == nil || m.Stored.ID != id {
		return fmt.Errorf("activity: %w", apperr.ErrNotFound)
	}
	if m.Stored.OwnerID != requesterID {
		return fmt.Errorf("activity: %w", apperr.ErrForbidden)
	}
	m.Stored = nil
	return nil
}

func (m *ActivityRepo) GetActivityByID(ctx context.Context, id int64) (*models.Activity, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Stored != nil && m.Stored.ID == id {
		return m.Stored, nil
	}
	return nil, fmt.Errorf("activity: %w", apperr.ErrNotFound)
}

func (m *ActivityRepo) GetActivityByAccessCode(ctx context.Context, code string) (*models.Activity, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Stored != nil && m.Stored.AccessCode == code {
		return m.Stored, nil
	}
	return nil, fmt.Errorf("activity: %w", apperr.ErrNotFound)
}

func (m *ActivityRepo) ListActivitiesByOwner(ctx context.Context, ownerID int64) ([]models.Activity, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Stored == nil || m.Stored.OwnerID != ownerID {
		return nil, nil
	}
	return []models.Activity{*m.Stored}, nil
}

type ResponseRepo struct {
	Submitted []models.ResponseSummary
	SubmitErr error
	ListErr   error
}

func (m *ResponseRepo) SubmitResponse(ctx context.Context, activityID, userID int64, answers []string) (int64, error) {
	if m.SubmitErr != nil {
		return 0, m.SubmitErr
	}
	id := int64(len(m.Submitted) + 1)
	m.Submitted = append(m.Submitted, models.ResponseSummary{ID: id, ActivityID: activityID, UserID: userID, Answers: answers})
	return id, nil
}

func (m *ResponseRepo) ListResponsesByActivity(ctx context.Context, activityID int64) ([]models.ResponseSummary, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := []models.ResponseSummary{}
	for _, s := range m.Submitted {
		if s.ActivityID == activityID {
			out = append(out, s)
		}
	}
	return out, nil
}
