package sqlite

import (
	"io"
	"time"

	"log/slog"

	"github.com/rmoreira/quizcraft/internal/db"
	"github.com/rmoreira/quizcraft/pkg/repository"
)

// SQLiteRepo implements the repository interfaces using the internal DB
// wrapper. Aggregate writes (activity+questions, response+answers) run in a
// single transaction so a partially written aggregate is never visible.
type SQLiteRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.UserRepo = (*SQLiteRepo)(nil)
var _ repository.ActivityRepo = (*SQLiteRepo)(nil)
var _ repository.ResponseRepo = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLiteRepo {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &SQLiteRepo{conn: conn, logger: logger}
}

func now() int64 {
	return time.Now().UTC().UnixMilli()
}
