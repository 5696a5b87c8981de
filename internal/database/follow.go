package database

import (
	"github.com/sy4k1/gla-it-project/internal/models"
)

func (d *Database) SaveFollower(follower *models.Follower) error {
	return d.db.Create(follower).Error
}

// HasFollower reports whether a follow edge follower→followed exists.
func (d *Database) HasFollower(followerEmail, followedEmail string) (bool, error) {
	var n int64
	err := d.db.Model(&models.Follower{}).
		Where("follower_email = ? AND followed_email = ?", followerEmail, followedEmail).
		Count(&n).Error
	return n > 0, err
}

// DeleteFollowers removes every edge follower→followed. Duplicates, should
// best-effort cleanup have produced them, go together.
func (d *Database) DeleteFollowers(followerEmail, followedEmail string) error {
	return d.db.Delete(&models.Follower{},
		"follower_email = ? AND followed_email = ?", followerEmail, followedEmail).Error
}

func (d *Database) GetFollower(id uint) (*models.Follower, error) {
	row := models.Follower{}
	if err := d.db.First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (d *Database) UpdateFollower(follower *models.Follower) error {
	return d.db.Save(follower).Error
}

// GetUnreadFollowers returns unread follow edges for the followed account,
// newest first.
func (d *Database) GetUnreadFollowers(followedEmail string) ([]models.Follower, error) {
	var rows []models.Follower
	err := d.db.
		Where("followed_email = ? AND read = ?", followedEmail, false).
		Order("id DESC").
		Find(&rows).Error
	return rows, err
}
