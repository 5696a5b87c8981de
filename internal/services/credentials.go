package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/sy4k1/gla-it-project/internal/database"
	"github.com/sy4k1/gla-it-project/internal/logger"
	"github.com/sy4k1/gla-it-project/internal/metrics"
	"github.com/sy4k1/gla-it-project/internal/models"
	"github.com/sy4k1/gla-it-project/pkg/auth"
)

// PasscodeTTL is how long a signup passcode stays valid after creation.
const PasscodeTTL = 600 * time.Second

// CredentialService owns accounts, passcodes and access tokens: hashing,
// passcode issuance and validation, token issuance and revocation.
type CredentialService struct {
	db    *database.Database
	cache *SessionCache
}

func NewCredentialService(db *database.Database, cache *SessionCache) *CredentialService {
	return &CredentialService{db: db, cache: cache}
}

// CreateAccount registers a new account with the sha512 digest of the
// password. Fails with ErrDuplicateEmail when the email is taken.
func (s *CredentialService) CreateAccount(name, email, password string) (*models.Account, error) {
	_, err := s.db.FindAccountByEmail(email)
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	account := &models.Account{
		Name:     name,
		Email:    email,
		Password: auth.HashPassword(password),
	}
	if err := s.db.SaveAccount(account); err != nil {
		return nil, err
	}
	return account, nil
}

// GetAccount loads an account profile by id.
func (s *CredentialService) GetAccount(id uint) (*models.Account, error) {
	account, err := s.db.GetAccount(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

// Authenticate matches email and password digest as a pair. A wrong password
// reports ErrAccountNotFound, same as a missing account.
func (s *CredentialService) Authenticate(email, password string) (*models.Account, error) {
	account, err := s.db.FindAccountByCredentials(email, auth.HashPassword(password))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

// IssuePasscode stores a fresh 6-digit passcode for the email and returns it
// for delivery. Prior rows are deleted best-effort; the delete and insert
// are two unguarded steps, so concurrent calls can leave duplicate rows.
func (s *CredentialService) IssuePasscode(email string) (string, error) {
	if err := s.db.DeletePasscodesByEmail(email); err != nil {
		logger.Log.Warnw("failed to delete prior passcodes", "email", email, "error", err)
	}

	code := auth.NewPasscode()
	if err := s.db.SavePasscode(&models.Passcode{AccountEmail: email, Code: code}); err != nil {
		return "", err
	}

	metrics.IncrementPasscodeIssued()
	return code, nil
}

// ConsumePasscode validates a passcode without deleting it; the signup flow
// deletes the row itself after the account is created. An expired row is
// deleted on the spot and reported as ErrPasscodeExpired.
func (s *CredentialService) ConsumePasscode(email, code string) (*models.Passcode, error) {
	row, err := s.db.FindPasscode(email, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPasscodeNotFound
		}
		return nil, err
	}

	if time.Since(row.CreatedAt) > PasscodeTTL {
		if err := s.db.DeletePasscode(row.ID); err != nil {
			logger.Log.Warnw("failed to delete expired passcode", "email", email, "error", err)
		}
		return nil, ErrPasscodeExpired
	}

	return row, nil
}

// DiscardPasscode removes a consumed passcode row.
func (s *CredentialService) DiscardPasscode(row *models.Passcode) error {
	return s.db.DeletePasscode(row.ID)
}

// IssueToken replaces any live token for the email with a fresh one. The
// delete and insert are not atomic: concurrent logins can both succeed and
// leave two live rows, which lookups resolve first-match.
func (s *CredentialService) IssueToken(ctx context.Context, email string) (string, error) {
	if prior, err := s.db.FindAccessTokensByEmail(email); err == nil {
		for _, row := range prior {
			s.cache.Delete(ctx, row.Token)
		}
	}
	if err := s.db.DeleteAccessTokensByEmail(email); err != nil {
		logger.Log.Warnw("failed to delete prior access tokens", "email", email, "error", err)
	}

	token := auth.NewAccessToken()
	if err := s.db.SaveAccessToken(&models.AccessToken{AccountEmail: email, Token: token}); err != nil {
		return "", err
	}

	s.cache.Put(ctx, token, email)
	return token, nil
}

// RevokeToken deletes the token row, failing with ErrInvalidToken when no
// such token exists.
func (s *CredentialService) RevokeToken(ctx context.Context, token string) error {
	row, err := s.db.FindAccessToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidToken
		}
		return err
	}

	if err := s.db.DeleteAccessToken(row.ID); err != nil {
		return err
	}

	s.cache.Delete(ctx, token)
	return nil
}
