package sqlite

import (
	"context"
	"database/sql"

	"github.com/carbonwakeup/server/pkg/models"
)

func (r *SQLiteRepo) GetCredential(ctx context.Context, userID string) (*models.Credential, error) {
	row := r.conn.QueryRow(ctx, `SELECT user_id, password_hash, updated FROM passwords WHERE user_id = ?`, userID)
	var c models.Credential
	if err := row.Scan(&c.UserID, &c.PasswordHash, &c.Updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &c, nil
}

func (r *SQLiteRepo) UpsertCredential(ctx context.Context, userID, passwordHash string) error {
	_, err := r.conn.Exec(ctx,
		`INSERT INTO passwords (user_id, password_hash, updated) VALUES (?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET password_hash=excluded.password_hash, updated=excluded.updated`,
		userID, passwordHash, now())
	return err
}
