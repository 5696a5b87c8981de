package database

import (
	"github.com/sy4k1/gla-it-project/internal/models"
)

func (d *Database) SaveAccount(account *models.Account) error {
	return d.db.Create(account).Error
}

func (d *Database) GetAccount(id uint) (*models.Account, error) {
	account := models.Account{}
	if err := d.db.First(&account, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (d *Database) FindAccountByEmail(email string) (*models.Account, error) {
	account := models.Account{}
	if err := d.db.Where("email = ?", email).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// FindAccountByCredentials matches email and password digest together, so a
// wrong password is indistinguishable from a missing account.
func (d *Database) FindAccountByCredentials(email, passwordHash string) (*models.Account, error) {
	account := models.Account{}
	if err := d.db.Where("email = ? AND password = ?", email, passwordHash).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// CountFollowers counts follow edges pointing at the email.
func (d *Database) CountFollowers(email string) (int64, error) {
	var n int64
	err := d.db.Model(&models.Follower{}).Where("followed_email = ?", email).Count(&n).Error
	return n, err
}

// CountReceivedLikes counts like edges on posts owned by the email.
func (d *Database) CountReceivedLikes(email string) (int64, error) {
	var n int64
	err := d.db.Model(&models.LikedPost{}).Where("poster_email = ?", email).Count(&n).Error
	return n, err
}
