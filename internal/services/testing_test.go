package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sy4k1/gla-it-project/internal/database"
	"github.com/sy4k1/gla-it-project/internal/models"
	"github.com/sy4k1/gla-it-project/pkg/auth"
)

// newTestDB opens a per-test in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) (*gorm.DB, *database.Database) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))

	return db, database.NewDatabase(db)
}

func seedAccount(t *testing.T, db *gorm.DB, name, email string) *models.Account {
	t.Helper()

	account := &models.Account{
		Name:     name,
		Email:    email,
		Password: auth.HashPassword("admin123"),
	}
	require.NoError(t, db.Create(account).Error)
	return account
}

func seedPost(t *testing.T, db *gorm.DB, author *models.Account, title string) *models.Post {
	t.Helper()

	post := &models.Post{
		Title:       title,
		Content:     "content of " + title,
		Channel:     "Desserts",
		PosterID:    author.ID,
		PosterName:  author.Name,
		PosterEmail: author.Email,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}
