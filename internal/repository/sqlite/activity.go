package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/rmoreira/quizcraft/pkg/apperr"
	"github.com/rmoreira/quizcraft/pkg/models"
)

// CreateActivity inserts the activity row and its full ordered question set
// in one transaction. The returned activity carries the submitted questions
// with their generated ids.
func (r *SQLiteRepo) CreateActivity(ctx context.Context, a *models.Activity, questions []string) (*models.Activity, error) {
	if a == nil {
		return nil, fmt.Errorf("activity is nil: %w", apperr.ErrValidation)
	}

	ctx, cancel := r.conn.OpContext(ctx)
	defer cancel()

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, apperr.Storage("begin create activity", err)
	}
	defer func() { _ = tx.Rollback() }()

	created := now()
	res, err := tx.ExecContext(ctx, `INSERT INTO activities (name, description, access_code, user_id, created) VALUES (?, ?, ?, ?, ?)`,
		a.Name, a.Description, a.AccessCode, a.OwnerID, created)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: activities.access_code") {
			return nil, fmt.Errorf("access code %q: %w", a.AccessCode, apperr.ErrConflict)
		}
		return nil, apperr.Storage("insert activity", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, apperr.Storage("activity id", err)
	}

	qs, err := insertQuestions(ctx, tx, id, questions)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, apperr.Storage("commit create activity", err)
	}

	out := *a
	out.ID = id
	out.Created = created
	out.Questions = qs
	return &out, nil
}

// UpdateActivity replaces the activity metadata and its whole question set.
// The stored owner is read inside the transaction and compared to
// requesterID; both sides are int64 so the check cannot be defeated by a
// representation mismatch. Question ids are not stable across updates.
func (r *SQLiteRepo) UpdateActivity(ctx context.Context, a *models.Activity, questions []string, requesterID int64) (*models.Activity, error) {
	if a == nil {
		return nil, fmt.Errorf("activity is nil: %w", apperr.ErrValidation)
	}

	ctx, cancel := r.conn.OpContext(ctx)
	defer cancel()

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, apperr.Storage("begin update activity", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := checkOwner(ctx, tx, a.ID, requesterID); err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE activities SET name = ?, description = ?, access_code = ? WHERE id = ?`,
		a.Name, a.Description, a.AccessCode, a.ID); err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: activities.access_code") {
			return nil, fmt.Errorf("access code %q: %w", a.AccessCode, apperr.ErrConflict)
		}
		return nil, apperr.Storage("update activity", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM questions WHERE activity_id = ?`, a.ID); err != nil {
		return nil, apperr.Storage("delete questions", err)
	}
	qs, err := insertQuestions(ctx, tx, a.ID, questions)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, apperr.Storage("commit update activity", err)
	}

	out := *a
	out.OwnerID = requesterID
	out.Questions = qs
	return &out, nil
}

// DeleteActivity removes the activity together with its questions and,
// per the aggregate contract, the responses and answers referencing it.
func (r *SQLiteRepo) DeleteActivity(ctx context.Context, id, requesterID int64) error {
	ctx, cancel := r.conn.OpContext(ctx)
	defer cancel()

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		return apperr.Storage("begin delete activity", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := checkOwner(ctx, tx, id, requesterID); err != nil {
		return err
	}

	stmts := []string{
		`DELETE FROM answers WHERE response_id IN (SELECT id FROM responses WHERE activity_id = ?)`,
		`DELETE FROM responses WHERE activity_id = ?`,
		`DELETE FROM questions WHERE activity_id = ?`,
		`DELETE FROM activities WHERE id = ?`,
	}
	for _, s := range stmts {
		if _, err := tx.ExecContext(ctx, s, id); err != nil {
			return apperr.Storage("delete activity", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperr.Storage("commit delete activity", err)
	}

	return nil
}

// GetActivityByID returns the activity with its ordered question list.
func (r *SQLiteRepo) GetActivityByID(ctx context.Context, id int64) (*models.Activity, error) {
	ctx, cancel := r.conn.OpContext(ctx)
	defer cancel()

	row := r.conn.QueryRow(ctx, `SELECT id, name, description, access_code, user_id, created FROM activities WHERE id = ?`, id)
	a, err := scanActivity(row)
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryRows(ctx, `SELECT id, activity_id, position, text FROM questions WHERE activity_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, apperr.Storage("list questions", err)
	}
	defer rows.Close()

	a.Questions = []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.ActivityID, &q.Position, &q.Text); err != nil {
			return nil, apperr.Storage("scan question", err)
		}
		a.Questions = append(a.Questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("list questions", err)
	}

	return a, nil
}

// GetActivityByAccessCode is the unauthenticated participant entry path.
// The returned activity has no nested questions.
func (r *SQLiteRepo) GetActivityByAccessCode(ctx context.Context, code string) (*models.Activity, error) {
	ctx, cancel := r.conn.OpContext(ctx)
	defer cancel()

	row := r.conn.QueryRow(ctx, `SELECT id, name, description, access_code, user_id, created FROM activities WHERE access_code = ?`, code)
	return scanActivity(row)
}

func (r *SQLiteRepo) ListActivitiesByOwner(ctx context.Context, ownerID int64) ([]models.Activity, error) {
	ctx, cancel := r.conn.OpContext(ctx)
	defer cancel()

	rows, err := r.conn.QueryRows(ctx, `SELECT id, name, description, access_code, user_id, created FROM activities WHERE user_id = ? ORDER BY created DESC, id DESC`, ownerID)
	if err != nil {
		return nil, apperr.Storage("list activities", err)
	}
	defer rows.Close()

	var out []models.Activity
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.AccessCode, &a.OwnerID, &a.Created); err != nil {
			return nil, apperr.Storage("scan activity", err)
		}

		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("list activities", err)
	}

	return out, nil
}

// checkOwner loads the stored owner of the activity inside tx and enforces
// the single authorization rule shared by the mutate paths: the requester
// must equal the stored owner.
func checkOwner(ctx context.Context, tx *sql.Tx, activityID, requesterID int64) error {
	var owner int64
	row := tx.QueryRowContext(ctx, `SELECT user_id FROM activities WHERE id = ?`, activityID)
	if err := row.Scan(&owner); err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("activity %d: %w", activityID, apperr.ErrNotFound)
		}
		return apperr.Storage("load activity owner", err)
	}
	if owner != requesterID {
		return fmt.Errorf("activity %d is not owned by user %d: %w", activityID, requesterID, apperr.ErrForbidden)
	}
	return nil
}

func insertQuestions(ctx context.Context, tx *sql.Tx, activityID int64, questions []string) ([]models.Question, error) {
	out := make([]models.Question, 0, len(questions))
	for i, text := range questions {
		res, err := tx.ExecContext(ctx, `INSERT INTO questions (activity_id, position, text) VALUES (?, ?, ?)`, activityID, i, text)
		if err != nil {
			return nil, apperr.Storage("insert question", err)
		}
		qid, err := res.LastInsertId()
		if err != nil {
			return nil, apperr.Storage("question id", err)
		}
		out = append(out, models.Question{ID: qid, ActivityID: activityID, Position: i, Text: text})
	}
	return out, nil
}

func scanActivity(row *sql.Row) (*models.Activity, error) {
	var a models.Activity
	if err := row.Scan(&a.ID, &a.Name, &a.Description, &a.AccessCode, &a.OwnerID, &a.Created); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("activity: %w", apperr.ErrNotFound)
		}

		return nil, apperr.Storage("scan activity", err)
	}

	return &a, nil
}
