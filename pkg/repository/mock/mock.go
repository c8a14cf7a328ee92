package mock

import (
	"context"

	"github.com/carbonwakeup/server/internal/db"
	"github.com/carbonwakeup/server/pkg/models"
)

// Test helpers and mocks
type Mocks struct {
	AccountRepo   *AccountRepo
	EmissionRepo  *EmissionRepo
	DonationRepo  *DonationRepo
	FootprintRepo *FootprintRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		AccountRepo:   &AccountRepo{Credentials: map[string]string{}},
		EmissionRepo:  &EmissionRepo{},
		DonationRepo:  &DonationRepo{},
		FootprintRepo: &FootprintRepo{},
	}
}

// AccountRepo implements both repository.AccountRepo and
// repository.CredentialRepo over a single stored account, mirroring how the
// sqlite repo backs both interfaces.
type AccountRepo struct {
	Stored      *models.Account
	Credentials map[string]string
	CreateErr   error
}

func (m *AccountRepo) CreateAccountWithCredential(ctx context.Context, a *models.Account, passwordHash string) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	if m.Stored != nil {
		if m.Stored.Email == a.Email {
			return db.DuplicateKeyStub("user_accounts.email")
		}
		if m.Stored.UserID == a.UserID {
			return db.DuplicateKeyStub("user_accounts.user_id")
		}
	}
	cp := *a
	m.Stored = &cp
	m.Credentials[a.UserID] = passwordHash
	return nil
}

func (m *AccountRepo) GetByID(ctx context.Context, userID string) (*models.Account, error) {
	if m.Stored != nil && m.Stored.UserID == userID {
		return m.Stored, nil
	}
	return nil, nil
}

func (m *AccountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	if m.Stored != nil && m.Stored.Email == email {
		return m.Stored, nil
	}
	return nil, nil
}

func (m *AccountRepo) UpdateType(ctx context.Context, userID, accountType string) error {
	if m.Stored != nil && m.Stored.UserID == userID {
		m.Stored.Type = accountType
	}
	return nil
}

func (m *AccountRepo) DeleteAccount(ctx context.Context, userID string) error {
	if m.Stored != nil && m.Stored.UserID == userID {
		m.Stored = nil
		delete(m.Credentials, userID)
	}
	return nil
}

func (m *AccountRepo) GetCredential(ctx context.Context, userID string) (*models.Credential, error) {
	hash, ok := m.Credentials[userID]
	if !ok {
		return nil, nil
	}
	return &models.Credential{UserID: userID, PasswordHash: hash}, nil
}

func (m *AccountRepo) UpsertCredential(ctx context.Context, userID, passwordHash string) error {
	m.Credentials[userID] = passwordHash
	return nil
}

type EmissionRepo struct {
	Records   []models.EmissionRecord
	Err       error
	Imported  []models.EmissionRecord
	ImportErr error
}

func (m *EmissionRepo) ListEmissions(ctx context.Context) ([]models.EmissionRecord, error) {
	return m.Records, m.Err
}

func (m *EmissionRepo) ListByYear(ctx context.Context, year int) ([]models.EmissionRecord, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []models.EmissionRecord
	for _, r := range m.Records {
		if r.Year == year {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *EmissionRepo) ListByCountry(ctx context.Context, country string) ([]models.EmissionRecord, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []models.EmissionRecord
	for _, r := range m.Records {
		if r.Country == country {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *EmissionRepo) ListByYears(ctx context.Context, years []int) ([]models.EmissionRecord, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []models.EmissionRecord
	for _, r := range m.Records {
		for _, y := range years {
			if r.Year == y {
				out = append(out, r)
				break
			}
		}
	}
	return out, nil
}

func (m *EmissionRepo) ListByCountries(ctx context.Context, countries []string) ([]models.EmissionRecord, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []models.EmissionRecord
	for _, r := range m.Records {
		for _, c := range countries {
			if r.Country == c {
				out = append(out, r)
				break
			}
		}
	}
	return out, nil
}

func (m *EmissionRepo) GetByCountryAndYear(ctx context.Context, country string, year int) (*models.EmissionRecord, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, r := range m.Records {
		if r.Country == country && r.Year == year {
			rec := r
			return &rec, nil
		}
	}
	return nil, nil
}

func (m *EmissionRepo) ImportRecords(ctx context.Context, recs []models.EmissionRecord) error {
	if m.ImportErr != nil {
		return m.ImportErr
	}
	m.Imported = append(m.Imported, recs...)
	return nil
}

type DonationRepo struct {
	Stored    []models.Donation
	CreateErr error
}

func (m *DonationRepo) CreateDonation(ctx context.Context, d *models.Donation) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	d.ID = int64(len(m.Stored) + 1)
	m.Stored = append(m.Stored, *d)
	return d.ID, nil
}

func (m *DonationRepo) ListDonationsByUser(ctx context.Context, userID string) ([]models.Donation, error) {
	var out []models.Donation
	for _, d := range m.Stored {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

type FootprintRepo struct {
	Stored    []models.FootprintRecord
	CreateErr error
}

func (m *FootprintRepo) CreateFootprint(ctx context.Context, f *models.FootprintRecord) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	f.ID = int64(len(m.Stored) + 1)
	m.Stored = append(m.Stored, *f)
	return f.ID, nil
}

func (m *FootprintRepo) ListFootprintsByUser(ctx context.Context, userID string) ([]models.FootprintRecord, error) {
	var out []models.FootprintRecord
	for _, f := range m.Stored {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}
