package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/carbonwakeup/server/internal/db"
	"github.com/carbonwakeup/server/pkg/models"
)

func (r *SQLiteRepo) CreateAccountWithCredential(ctx context.Context, a *models.Account, passwordHash string) error {
	if a == nil {
		return fmt.Errorf("account is nil")
	}

	// identity + credential land together or not at all
	return r.conn.ExecTx(ctx, func(tx *db.Tx) error {
		if _, err := tx.Exec(ctx,
			`INSERT INTO user_accounts (user_id, email, name, type, registration_date) VALUES (?, ?, ?, ?, ?)`,
			a.UserID, a.Email, a.Name, a.Type, a.RegistrationDate); err != nil {
			return err
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO passwords (user_id, password_hash, updated) VALUES (?, ?, ?)`,
			a.UserID, passwordHash, now())
		return err
	})
}

func (r *SQLiteRepo) GetByID(ctx context.Context, userID string) (*models.Account, error) {
	row := r.conn.QueryRow(ctx, `SELECT user_id, email, name, type, registration_date FROM user_accounts WHERE user_id = ?`, userID)
	var a models.Account
	if err := row.Scan(&a.UserID, &a.Email, &a.Name, &a.Type, &a.RegistrationDate); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &a, nil
}

func (r *SQLiteRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	row := r.conn.QueryRow(ctx, `SELECT user_id, email, name, type, registration_date FROM user_accounts WHERE email = ?`, email)
	var a models.Account
	if err := row.Scan(&a.UserID, &a.Email, &a.Name, &a.Type, &a.RegistrationDate); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &a, nil
}

func (r *SQLiteRepo) UpdateType(ctx context.Context, userID, accountType string) error {
	_, err := r.conn.Exec(ctx, `UPDATE user_accounts SET type = ? WHERE user_id = ?`, accountType, userID)
	return err
}

// DeleteAccount removes the identity row; the credential row goes with it
// via the ON DELETE CASCADE foreign key.
func (r *SQLiteRepo) DeleteAccount(ctx context.Context, userID string) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM user_accounts WHERE user_id = ?`, userID)
	return err
}
