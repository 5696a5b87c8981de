package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sy4k1/gla-it-project/internal/models"
	"github.com/sy4k1/gla-it-project/internal/services"
	"github.com/sy4k1/gla-it-project/pkg/auth"
)

func TestCredentialService_CreateAccount(t *testing.T) {
	db, store := newTestDB(t)
	svc := services.NewCredentialService(store, services.NewSessionCache(nil))

	account, err := svc.CreateAccount("alice", "alice@example.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, auth.HashPassword("admin123"), account.Password)

	_, err = svc.CreateAccount("alice again", "alice@example.com", "other")
	assert.ErrorIs(t, err, services.ErrDuplicateEmail)

	var n int64
	require.NoError(t, db.Model(&models.Account{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestCredentialService_Authenticate(t *testing.T) {
	db, store := newTestDB(t)
	svc := services.NewCredentialService(store, services.NewSessionCache(nil))
	seedAccount(t, db, "alice", "alice@example.com")

	account, err := svc.Authenticate("alice@example.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "alice", account.Name)

	// wrong password is reported the same way as a missing account
	_, err = svc.Authenticate("alice@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrAccountNotFound)

	_, err = svc.Authenticate("nobody@example.com", "admin123")
	assert.ErrorIs(t, err, services.ErrAccountNotFound)
}

func TestCredentialService_PasscodeLifecycle(t *testing.T) {
	db, store := newTestDB(t)
	svc := services.NewCredentialService(store, services.NewSessionCache(nil))

	code, err := svc.IssuePasscode("bob@example.com")
	require.NoError(t, err)
	assert.Len(t, code, 6)

	// issuing again replaces the previous row
	code2, err := svc.IssuePasscode("bob@example.com")
	require.NoError(t, err)

	var n int64
	require.NoError(t, db.Model(&models.Passcode{}).Where("account_email = ?", "bob@example.com").Count(&n).Error)
	assert.EqualValues(t, 1, n)

	_, err = svc.ConsumePasscode("bob@example.com", code)
	assert.ErrorIs(t, err, services.ErrPasscodeNotFound)

	// validation does not delete a fresh passcode
	row, err := svc.ConsumePasscode("bob@example.com", code2)
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.Passcode{}).Where("account_email = ?", "bob@example.com").Count(&n).Error)
	assert.EqualValues(t, 1, n)

	require.NoError(t, svc.DiscardPasscode(row))
	require.NoError(t, db.Model(&models.Passcode{}).Where("account_email = ?", "bob@example.com").Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestCredentialService_ExpiredPasscodeIsDeleted(t *testing.T) {
	db, store := newTestDB(t)
	svc := services.NewCredentialService(store, services.NewSessionCache(nil))

	code, err := svc.IssuePasscode("bob@example.com")
	require.NoError(t, err)

	stale := time.Now().Add(-601 * time.Second)
	require.NoError(t, db.Model(&models.Passcode{}).
		Where("account_email = ?", "bob@example.com").
		Update("created_at", stale).Error)

	_, err = svc.ConsumePasscode("bob@example.com", code)
	assert.ErrorIs(t, err, services.ErrPasscodeExpired)

	// the expired row is gone, not just rejected
	var n int64
	require.NoError(t, db.Model(&models.Passcode{}).Where("account_email = ?", "bob@example.com").Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestCredentialService_TokenLifecycle(t *testing.T) {
	db, store := newTestDB(t)
	svc := services.NewCredentialService(store, services.NewSessionCache(nil))
	ctx := context.Background()

	first, err := svc.IssueToken(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Len(t, first, 32)

	second, err := svc.IssueToken(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	// at most one live token per email after reissue
	var n int64
	require.NoError(t, db.Model(&models.AccessToken{}).Where("account_email = ?", "alice@example.com").Count(&n).Error)
	assert.EqualValues(t, 1, n)

	assert.ErrorIs(t, svc.RevokeToken(ctx, first), services.ErrInvalidToken)
	require.NoError(t, svc.RevokeToken(ctx, second))
	assert.ErrorIs(t, svc.RevokeToken(ctx, second), services.ErrInvalidToken)
}
