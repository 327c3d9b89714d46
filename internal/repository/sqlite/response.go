package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rmoreira/quizcraft/pkg/apperr"
	"github.com/rmoreira/quizcraft/pkg/models"
)

// SubmitResponse inserts the response row and its full ordered answer set in
// one transaction and returns the generated response id. The target activity
// must exist; the submitter is resolved by the caller via the user repo.
// Answer count is deliberately not checked against the activity's question
// count, partial submissions are accepted.
func (r *SQLiteRepo) SubmitResponse(ctx context.Context, activityID, userID int64, answers []string) (int64, error) {
	ctx, cancel := r.conn.OpContext(ctx)
	defer cancel()

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, apperr.Storage("begin submit response", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists int64
	row := tx.QueryRowContext(ctx, `SELECT id FROM activities WHERE id = ?`, activityID)
	if err := row.Scan(&exists); err != nil {
		if err == sql.ErrNoRows {
			return 0, fmt.Errorf("activity %d: %w", activityID, apperr.ErrNotFound)
		}
		return 0, apperr.Storage("load activity", err)
	}

	res, err := tx.ExecContext(ctx, `INSERT INTO responses (activity_id, user_id, created) VALUES (?, ?, ?)`, activityID, userID, now())
	if err != nil {
		return 0, apperr.Storage("insert response", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, apperr.Storage("response id", err)
	}

	for i, text := range answers {
		if _, err := tx.ExecContext(ctx, `INSERT INTO answers (response_id, position, text) VALUES (?, ?, ?)`, id, i, text); err != nil {
			return 0, apperr.Storage("insert answer", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, apperr.Storage("commit submit response", err)
	}

	return id, nil
}

// ListResponsesByActivity returns every response for the activity annotated
// with the submitter's display name. The join to users is best-effort: a
// response whose submitter no longer exists is still listed, with a sentinel
// name. An activity without responses yields an empty slice.
func (r *SQLiteRepo) ListResponsesByActivity(ctx context.Context, activityID int64) ([]models.ResponseSummary, error) {
	ctx, cancel := r.conn.OpContext(ctx)
	defer cancel()

	rows, err := r.conn.QueryRows(ctx, `SELECT r.id, r.activity_id, r.user_id, COALESCE(u.name, 'Unknown user'), r.created
		FROM responses r
		LEFT JOIN users u ON u.id = r.user_id
		WHERE r.activity_id = ?
		ORDER BY r.created DESC, r.id DESC`, activityID)
	if err != nil {
		return nil, apperr.Storage("list responses", err)
	}
	defer rows.Close()

	out := []models.ResponseSummary{}
	for rows.Next() {
		var s models.ResponseSummary
		if err := rows.Scan(&s.ID, &s.ActivityID, &s.UserID, &s.UserName, &s.Date); err != nil {
			return nil, apperr.Storage("scan response", err)
		}

		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("list responses", err)
	}

	for i := range out {
		answers, err := r.listAnswerTexts(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Answers = answers
	}

	return out, nil
}

func (r *SQLiteRepo) listAnswerTexts(ctx context.Context, responseID int64) ([]string, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT text FROM answers WHERE response_id = ? ORDER BY position`, responseID)
	if err != nil {
		return nil, apperr.Storage("list answers", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, apperr.Storage("scan answer", err)
		}
		out = append(out, text)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("list answers", err)
	}

	return out, nil
}
