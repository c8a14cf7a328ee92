package sqlite

import (
	"io"
	"time"

	"log/slog"

	"github.com/carbonwakeup/server/internal/db"
	"github.com/carbonwakeup/server/pkg/repository"
)

// SQLiteRepo implements repository interfaces using the internal DB wrapper.
type SQLiteRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.AccountRepo = (*SQLiteRepo)(nil)
var _ repository.CredentialRepo = (*SQLiteRepo)(nil)
var _ repository.EmissionRepo = (*SQLiteRepo)(nil)
var _ repository.DonationRepo = (*SQLiteRepo)(nil)
var _ repository.FootprintRepo = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLiteRepo {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &SQLiteRepo{conn: conn, logger: logger}
}

func now() int64 {
	return time.Now().UTC().UnixMilli()
}
