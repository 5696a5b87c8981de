package database

import (
	"gorm.io/gorm"

	"github.com/sy4k1/gla-it-project/internal/models"
)

func (d *Database) SavePost(post *models.Post) error {
	return d.db.Create(post).Error
}

func (d *Database) GetPost(id uint) (*models.Post, error) {
	post := models.Post{}
	if err := d.db.First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetOwnedPost looks a post up by id and owner together; a non-owner gets
// ErrRecordNotFound rather than a permission error.
func (d *Database) GetOwnedPost(id uint, posterEmail string) (*models.Post, error) {
	post := models.Post{}
	if err := d.db.Where("id = ? AND poster_email = ?", id, posterEmail).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (d *Database) GetPostsByPoster(email string) ([]models.Post, error) {
	var posts []models.Post
	err := d.db.Where("poster_email = ?", email).Order("id DESC").Find(&posts).Error
	return posts, err
}

func (d *Database) GetPostsByIDs(ids []uint) ([]models.Post, error) {
	var posts []models.Post
	err := d.db.Where("id IN ?", ids).Order("id DESC").Find(&posts).Error
	return posts, err
}

func (d *Database) GetPostsByChannel(channel string) ([]models.Post, error) {
	var posts []models.Post
	err := d.db.Where("channel = ?", channel).Order("id DESC").Find(&posts).Error
	return posts, err
}

func (d *Database) GetAllPosts() ([]models.Post, error) {
	var posts []models.Post
	err := d.db.Order("id DESC").Find(&posts).Error
	return posts, err
}

// DeletePostCascade removes a post together with its comments and like
// edges. The three deletes run in one transaction so a failure never leaves
// a half-deleted post behind.
func (d *Database) DeletePostCascade(id uint, posterEmail string) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Comment{}, "post_id = ? AND poster_email = ?", id, posterEmail).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.LikedPost{}, "post_id = ? AND poster_email = ?", id, posterEmail).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Post{}, "id = ?", id).Error
	})
}
