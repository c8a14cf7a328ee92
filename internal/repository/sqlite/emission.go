package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/carbonwakeup/server/internal/db"
	"github.com/carbonwakeup/server/pkg/models"
)

const emissionCols = `id, country, year, co2_kt`

func (r *SQLiteRepo) ListEmissions(ctx context.Context) ([]models.EmissionRecord, error) {
	return r.listEmissions(ctx, `SELECT `+emissionCols+` FROM emissions_data ORDER BY country, year`)
}

func (r *SQLiteRepo) ListByYear(ctx context.Context, year int) ([]models.EmissionRecord, error) {
	return r.listEmissions(ctx, `SELECT `+emissionCols+` FROM emissions_data WHERE year = ? ORDER BY country`, year)
}

func (r *SQLiteRepo) ListByCountry(ctx context.Context, country string) ([]models.EmissionRecord, error) {
	return r.listEmissions(ctx, `SELECT `+emissionCols+` FROM emissions_data WHERE country = ? ORDER BY year`, country)
}

func (r *SQLiteRepo) ListByYears(ctx context.Context, years []int) ([]models.EmissionRecord, error) {
	if len(years) == 0 {
		return nil, nil
	}
	args := make([]any, len(years))
	for i, y := range years {
		args[i] = y
	}
	q := `SELECT ` + emissionCols + ` FROM emissions_data WHERE year IN (` + placeholders(len(years)) + `) ORDER BY country, year`
	return r.listEmissions(ctx, q, args...)
}

func (r *SQLiteRepo) ListByCountries(ctx context.Context, countries []string) ([]models.EmissionRecord, error) {
	if len(countries) == 0 {
		return nil, nil
	}
	args := make([]any, len(countries))
	for i, c := range countries {
		args[i] = c
	}
	q := `SELECT ` + emissionCols + ` FROM emissions_data WHERE country IN (` + placeholders(len(countries)) + `) ORDER BY country, year`
	return r.listEmissions(ctx, q, args...)
}

func (r *SQLiteRepo) GetByCountryAndYear(ctx context.Context, country string, year int) (*models.EmissionRecord, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+emissionCols+` FROM emissions_data WHERE country = ? AND year = ?`, country, year)
	var e models.EmissionRecord
	if err := row.Scan(&e.ID, &e.Country, &e.Year, &e.CO2Kt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &e, nil
}

// ImportRecords upserts the batch inside one transaction so a failed import
// never leaves a half-written dataset.
func (r *SQLiteRepo) ImportRecords(ctx context.Context, recs []models.EmissionRecord) error {
	if len(recs) == 0 {
		return nil
	}
	return r.conn.ExecTx(ctx, func(tx *db.Tx) error {
		for _, rec := range recs {
			if _, err := tx.Exec(ctx,
				`INSERT INTO emissions_data (country, year, co2_kt) VALUES (?, ?, ?)
				 ON CONFLICT(country, year) DO UPDATE SET co2_kt=excluded.co2_kt`,
				rec.Country, rec.Year, rec.CO2Kt); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SQLiteRepo) listEmissions(ctx context.Context, query string, args ...any) ([]models.EmissionRecord, error) {
	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.EmissionRecord
	for rows.Next() {
		var e models.EmissionRecord
		if err := rows.Scan(&e.ID, &e.Country, &e.Year, &e.CO2Kt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
