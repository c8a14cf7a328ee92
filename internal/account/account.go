// Package account manages user identity: registration with hashed credential
// storage, credential verification, and role lookup. The identity row and
// the credential row are stored separately; registration writes both as one
// atomic unit through the repository.
package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/carbonwakeup/server/internal/db"
	"github.com/carbonwakeup/server/pkg/models"
	"github.com/carbonwakeup/server/pkg/repository"
)

// DefaultType is the role assigned when registration does not name one.
const DefaultType = "regular"

type Service struct {
	accounts    repository.AccountRepo
	credentials repository.CredentialRepo
	bcryptCost  int
}

// NewService wires the service to its storage dependencies. bcryptCost 0
// means bcrypt's default; out-of-range costs are clamped to the valid range.
func NewService(accounts repository.AccountRepo, credentials repository.CredentialRepo, bcryptCost int) *Service {
	switch {
	case bcryptCost == 0:
		bcryptCost = bcrypt.DefaultCost
	case bcryptCost < bcrypt.MinCost:
		bcryptCost = bcrypt.MinCost
	case bcryptCost > bcrypt.MaxCost:
		bcryptCost = bcrypt.MaxCost
	}
	return &Service{accounts: accounts, credentials: credentials, bcryptCost: bcryptCost}
}

// RegisterParams carries the caller-supplied registration fields. UserID is
// optional; a UUID is generated when it is empty.
type RegisterParams struct {
	UserID   string
	Email    string
	Name     string
	Type     string
	Password string
}

// Register creates the identity row and the credential row together. If
// either write fails nothing is persisted. Duplicate identifier or email
// surface as ErrDuplicateIdentifier / ErrDuplicateEmail, including under
// concurrent registration (the unique constraints arbitrate, not a
// check-then-insert race).
func (s *Service) Register(ctx context.Context, p RegisterParams) (*models.Account, error) {
	userID := strings.TrimSpace(p.UserID)
	if userID == "" {
		userID = uuid.NewString()
	}
	accountType := p.Type
	if accountType == "" {
		accountType = DefaultType
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	a := &models.Account{
		UserID:           userID,
		Email:            p.Email,
		Name:             p.Name,
		Type:             accountType,
		RegistrationDate: time.Now().UTC().UnixMilli(),
	}

	if err := s.accounts.CreateAccountWithCredential(ctx, a, string(hash)); err != nil {
		if db.IsDuplicateKey(err) {
			if strings.HasSuffix(db.ConstraintColumn(err), ".email") {
				return nil, ErrDuplicateEmail
			}
			return nil, ErrDuplicateIdentifier
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	return a, nil
}

// Authenticate verifies email + password and returns the account's public
// profile. The stored hash never leaves this function.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.Account, error) {
	a, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup account: %w", err)
	}
	if a == nil {
		return nil, ErrUserNotFound
	}

	c, err := s.credentials.GetCredential(ctx, a.UserID)
	if err != nil {
		return nil, fmt.Errorf("lookup credential: %w", err)
	}
	if c == nil {
		return nil, ErrNoCredentialSet
	}

	if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidPassword
	}

	return a, nil
}

func (s *Service) GetRole(ctx context.Context, userID string) (string, error) {
	a, err := s.accounts.GetByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("lookup account: %w", err)
	}
	if a == nil {
		return "", ErrUserNotFound
	}
	return a.Type, nil
}

// SetPassword replaces (or creates) the credential for an existing account.
// Administrative-reset semantics: the old password is not checked. Callers
// offering self-service password change must re-authenticate first.
func (s *Service) SetPassword(ctx context.Context, userID, password string) error {
	a, err := s.accounts.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("lookup account: %w", err)
	}
	if a == nil {
		return ErrUserNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.credentials.UpsertCredential(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}
	return nil
}

// SetRole mutates the account's type field.
func (s *Service) SetRole(ctx context.Context, userID, role string) error {
	a, err := s.accounts.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("lookup account: %w", err)
	}
	if a == nil {
		return ErrUserNotFound
	}
	if err := s.accounts.UpdateType(ctx, userID, role); err != nil {
		return fmt.Errorf("update type: %w", err)
	}
	return nil
}

// Delete removes the identity row. The credential row is removed in the same
// step (cascade on the credential table's foreign key).
func (s *Service) Delete(ctx context.Context, userID string) error {
	a, err := s.accounts.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("lookup account: %w", err)
	}
	if a == nil {
		return ErrUserNotFound
	}
	if err := s.accounts.DeleteAccount(ctx, userID); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}
