package database

import (
	"github.com/sy4k1/gla-it-project/internal/models"
)

func (d *Database) SaveComment(comment *models.Comment) error {
	return d.db.Create(comment).Error
}

func (d *Database) GetComment(id uint) (*models.Comment, error) {
	row := models.Comment{}
	if err := d.db.First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (d *Database) UpdateComment(comment *models.Comment) error {
	return d.db.Save(comment).Error
}

func (d *Database) GetCommentsByPost(postID uint) ([]models.Comment, error) {
	var rows []models.Comment
	err := d.db.Where("post_id = ?", postID).Find(&rows).Error
	return rows, err
}

// GetUnreadComments returns unread comments on the account's posts, newest
// first, excluding the account's own comments.
func (d *Database) GetUnreadComments(posterEmail string) ([]models.Comment, error) {
	var rows []models.Comment
	err := d.db.
		Where("poster_email = ? AND read = ? AND commentator_email <> ?", posterEmail, false, posterEmail).
		Order("id DESC").
		Find(&rows).Error
	return rows, err
}
