package database

import (
	"gorm.io/gorm"

	"github.com/sy4k1/gla-it-project/internal/models"
)

// HasLike reports whether the account has liked the post.
func (d *Database) HasLike(postID uint, likedAccountEmail string) (bool, error) {
	var n int64
	err := d.db.Model(&models.LikedPost{}).
		Where("post_id = ? AND liked_account_email = ?", postID, likedAccountEmail).
		Count(&n).Error
	return n > 0, err
}

// SaveLikeAndIncrement inserts a like edge and bumps the post's denormalized
// likes counter in one transaction.
func (d *Database) SaveLikeAndIncrement(like *models.LikedPost) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(like).Error; err != nil {
			return err
		}

		return tx.Model(&models.Post{}).
			Where("id = ?", like.PostID).
			Update("likes", gorm.Expr("likes + 1")).Error
	})
}

// DeleteLikeAndDecrement removes the like edge and drops the counter by one
// in one transaction. The counter is not recomputed from edge rows, so it
// can drift if callers race.
func (d *Database) DeleteLikeAndDecrement(postID uint, likedAccountEmail string) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.LikedPost{},
			"post_id = ? AND liked_account_email = ?", postID, likedAccountEmail).Error; err != nil {
			return err
		}

		return tx.Model(&models.Post{}).
			Where("id = ?", postID).
			Update("likes", gorm.Expr("likes - 1")).Error
	})
}

func (d *Database) GetLike(id uint) (*models.LikedPost, error) {
	row := models.LikedPost{}
	if err := d.db.First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (d *Database) UpdateLike(like *models.LikedPost) error {
	return d.db.Save(like).Error
}

// GetLikedPostIDs returns ids of posts the account has liked.
func (d *Database) GetLikedPostIDs(likedAccountEmail string) ([]uint, error) {
	var ids []uint
	err := d.db.Model(&models.LikedPost{}).
		Where("liked_account_email = ?", likedAccountEmail).
		Pluck("post_id", &ids).Error
	return ids, err
}

// GetUnreadLikes returns unread like edges on the account's posts, newest
// first, excluding the account's own likes.
func (d *Database) GetUnreadLikes(posterEmail string) ([]models.LikedPost, error) {
	var rows []models.LikedPost
	err := d.db.
		Where("poster_email = ? AND read = ? AND liked_account_email <> ?", posterEmail, false, posterEmail).
		Order("id DESC").
		Find(&rows).Error
	return rows, err
}
