package sqlite

import (
	"context"
	"fmt"

	"github.com/carbonwakeup/server/pkg/models"
)

func (r *SQLiteRepo) CreateDonation(ctx context.Context, d *models.Donation) (int64, error) {
	if d == nil {
		return 0, fmt.Errorf("donation is nil")
	}

	res, err := r.conn.Exec(ctx,
		`INSERT INTO donations (user_id, amount, organization, donation_date) VALUES (?, ?, ?, ?)`,
		d.UserID, d.Amount, d.Organization, d.DonationDate)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) ListDonationsByUser(ctx context.Context, userID string) ([]models.Donation, error) {
	rows, err := r.conn.QueryRows(ctx,
		`SELECT id, user_id, amount, organization, donation_date FROM donations WHERE user_id = ? ORDER BY donation_date DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Donation
	for rows.Next() {
		var d models.Donation
		if err := rows.Scan(&d.ID, &d.UserID, &d.Amount, &d.Organization, &d.DonationDate); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
