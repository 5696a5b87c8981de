package database

import (
	"github.com/sy4k1/gla-it-project/internal/models"
)

func (d *Database) SaveAccessToken(token *models.AccessToken) error {
	return d.db.Create(token).Error
}

// FindAccessToken resolves a token row. If duplicate rows exist for an email
// the token string itself still selects a single row (lowest id first).
func (d *Database) FindAccessToken(token string) (*models.AccessToken, error) {
	row := models.AccessToken{}
	if err := d.db.Where("token = ?", token).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// FindAccessTokensByEmail lists every live token row for the email.
func (d *Database) FindAccessTokensByEmail(email string) ([]models.AccessToken, error) {
	var rows []models.AccessToken
	if err := d.db.Where("account_email = ?", email).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteAccessTokensByEmail removes every token row for the email. Deleting
// nothing is not an error.
func (d *Database) DeleteAccessTokensByEmail(email string) error {
	return d.db.Delete(&models.AccessToken{}, "account_email = ?", email).Error
}

func (d *Database) DeleteAccessToken(id uint) error {
	return d.db.Delete(&models.AccessToken{}, "id = ?", id).Error
}

func (d *Database) SavePasscode(passcode *models.Passcode) error {
	return d.db.Create(passcode).Error
}

// FindPasscode returns the first matching row (lowest id) when best-effort
// cleanup has left duplicates behind.
func (d *Database) FindPasscode(email, code string) (*models.Passcode, error) {
	row := models.Passcode{}
	if err := d.db.Where("account_email = ? AND code = ?", email, code).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// DeletePasscodesByEmail removes every passcode row for the email.
func (d *Database) DeletePasscodesByEmail(email string) error {
	return d.db.Delete(&models.Passcode{}, "account_email = ?", email).Error
}

func (d *Database) DeletePasscode(id uint) error {
	return d.db.Delete(&models.Passcode{}, "id = ?", id).Error
}
