package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/rmoreira/quizcraft/pkg/apperr"
	"github.com/rmoreira/quizcraft/pkg/models"
)

func (r *SQLiteRepo) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	if u == nil {
		return 0, fmt.Errorf("user is nil: %w", apperr.ErrValidation)
	}

	ctx, cancel := r.conn.OpContext(ctx)
	defer cancel()

	res, err := r.conn.Exec(ctx, `INSERT INTO users (name, email, password_hash, profile_image, created) VALUES (?, ?, ?, ?, ?)`,
		u.Name, u.Email, u.PasswordHash, u.ProfileImage, now())
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.email") {
			return 0, fmt.Errorf("email %q: %w", u.Email, apperr.ErrConflict)
		}
		return 0, apperr.Storage("insert user", err)
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	ctx, cancel := r.conn.OpContext(ctx)
	defer cancel()

	row := r.conn.QueryRow(ctx, `SELECT id, name, email, password_hash, profile_image, created FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *SQLiteRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := r.conn.OpContext(ctx)
	defer cancel()

	row := r.conn.QueryRow(ctx, `SELECT id, name, email, password_hash, profile_image, created FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *SQLiteRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	ctx, cancel := r.conn.OpContext(ctx)
	defer cancel()

	rows, err := r.conn.QueryRows(ctx, `SELECT id, name, email, password_hash, profile_image, created FROM users ORDER BY id`)
	if err != nil {
		return nil, apperr.Storage("list users", err)
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.ProfileImage, &u.Created); err != nil {
			return nil, apperr.Storage("scan user", err)
		}

		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("list users", err)
	}

	return out, nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.ProfileImage, &u.Created); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user: %w", apperr.ErrNotFound)
		}

		return nil, apperr.Storage("scan user", err)
	}

	return &u, nil
}
