package sqlite

import (
	"context"
	"fmt"

	"github.com/carbonwakeup/server/pkg/models"
)

func (r *SQLiteRepo) CreateFootprint(ctx context.Context, f *models.FootprintRecord) (int64, error) {
	if f == nil {
		return 0, fmt.Errorf("footprint record is nil")
	}

	res, err := r.conn.Exec(ctx,
		`INSERT INTO carbon_footprints (user_id, footprint, measurement_date) VALUES (?, ?, ?)`,
		f.UserID, f.Footprint, f.MeasurementDate)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) ListFootprintsByUser(ctx context.Context, userID string) ([]models.FootprintRecord, error) {
	rows, err := r.conn.QueryRows(ctx,
		`SELECT id, user_id, footprint, measurement_date FROM carbon_footprints WHERE user_id = ? ORDER BY measurement_date DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.FootprintRecord
	for rows.Next() {
		var f models.FootprintRecord
		if err := rows.Scan(&f.ID, &f.UserID, &f.Footprint, &f.MeasurementDate); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
