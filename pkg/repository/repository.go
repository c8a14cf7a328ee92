package repository

import (
	"context"

	"github.com/carbonwakeup/server/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

type AccountRepo interface {
	// CreateAccountWithCredential writes the identity row and the credential
	// row as a single atomic unit. Either both exist afterwards or neither.
	CreateAccountWithCredential(ctx context.Context, a *models.Account, passwordHash string) error
	GetByID(ctx context.Context, userID string) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	UpdateType(ctx context.Context, userID, accountType string) error
	DeleteAccount(ctx context.Context, userID string) error
}

type CredentialRepo interface {
	GetCredential(ctx context.Context, userID string) (*models.Credential, error)
	UpsertCredential(ctx context.Context, userID, passwordHash string) error
}

type EmissionRepo interface {
	ListEmissions(ctx context.Context) ([]models.EmissionRecord, error)
	ListByYear(ctx context.Context, year int) ([]models.EmissionRecord, error)
	ListByCountry(ctx context.Context, country string) ([]models.EmissionRecord, error)
	ListByYears(ctx context.Context, years []int) ([]models.EmissionRecord, error)
	ListByCountries(ctx context.Context, countries []string) ([]models.EmissionRecord, error)
	GetByCountryAndYear(ctx context.Context, country string, year int) (*models.EmissionRecord, error)
	// ImportRecords upserts the whole batch transactionally.
	ImportRecords(ctx context.Context, recs []models.EmissionRecord) error
}

type DonationRepo interface {
	CreateDonation(ctx context.Context, d *models.Donation) (int64, error)
	ListDonationsByUser(ctx context.Context, userID string) ([]models.Donation, error)
}

type FootprintRepo interface {
	CreateFootprint(ctx context.Context, f *models.FootprintRecord) (int64, error)
	ListFootprintsByUser(ctx context.Context, userID string) ([]models.FootprintRecord, error)
}
