package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sy4k1/gla-it-project/internal/database"
	"github.com/sy4k1/gla-it-project/internal/models"
)

// Session is the resolved caller identity, produced once per request at the
// boundary and passed into every operation that needs it.
type Session struct {
	Account *models.Account
}

// SessionService maps an access token to an account; the single source of
// truth for who is calling.
type SessionService struct {
	db    *database.Database
	cache *SessionCache
}

func NewSessionService(db *database.Database, cache *SessionCache) *SessionService {
	return &SessionService{db: db, cache: cache}
}

// ResolveEmail validates the token and returns the email it was issued for,
// without touching the account table. Cache hits skip the token lookup.
func (s *SessionService) ResolveEmail(ctx context.Context, token string) (string, error) {
	if email := s.cache.Get(ctx, token); email != "" {
		return email, nil
	}

	row, err := s.db.FindAccessToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidToken
		}
		return "", err
	}

	s.cache.Put(ctx, token, row.AccountEmail)
	return row.AccountEmail, nil
}

// Resolve validates the token and loads the account it points at. A token
// whose account is gone fails with ErrAccountNotFound; the orphaned token
// row is left in place.
func (s *SessionService) Resolve(ctx context.Context, token string) (*Session, error) {
	email, err := s.ResolveEmail(ctx, token)
	if err != nil {
		return nil, err
	}

	account, err := s.db.FindAccountByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return &Session{Account: account}, nil
}
