package repository

import (
	"context"

	"github.com/rmoreira/quizcraft/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

type UserRepo interface {
	CreateUser(ctx context.Context, u *models.User) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// ActivityRepo owns the activity→questions aggregate. Questions are always
// written as a full ordered set; every mutation is a single transaction.
type ActivityRepo interface {
	CreateActivity(ctx context.Context, a *models.Activity, questions []string) (*models.Activity, error)
	UpdateActivity(ctx context.Context, a *models.Activity, questions []string, requesterID int64) (*models.Activity, error)
	DeleteActivity(ctx context.Context, id, requesterID int64) error
	GetActivityByID(ctx context.Context, id int64) (*models.Activity, error)
	GetActivityByAccessCode(ctx context.Context, code string) (*models.Activity, error)
	ListActivitiesByOwner(ctx context.Context, ownerID int64) ([]models.Activity, error)
}

// ResponseRepo owns the response→answers aggregate.
type ResponseRepo interface {
	SubmitResponse(ctx context.Context, activityID, userID int64, answers []string) (int64, error)
	ListResponsesByActivity(ctx context.Context, activityID int64) ([]models.ResponseSummary, error)
}
