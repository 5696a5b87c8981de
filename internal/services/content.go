package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sy4k1/gla-it-project/internal/database"
	"github.com/sy4k1/gla-it-project/internal/models"
)

// Query filter tokens accepted by QueryPosts. "publish" and "like" select by
// account, "All" selects everything, the rest select by channel.
var queryTypes = map[string]bool{
	"publish":            true,
	"like":               true,
	"explore":            true,
	"All":                true,
	"Vegetarian_Cuisine": true,
	"Chinese_Cuisine":    true,
	"Western_Cuisine":    true,
	"Japanese_Cuisine":   true,
	"Desserts":           true,
	"Soups":              true,
}

// ContentService owns posts and comments, including the cascading delete.
type ContentService struct {
	db *database.Database
}

func NewContentService(db *database.Database) *ContentService {
	return &ContentService{db: db}
}

// CommentView is a comment together with the title of the post it sits on.
// A dangling post reference yields an empty title.
type CommentView struct {
	Comment   models.Comment
	PostTitle string
}

// CreatePost stores a new post with the author's identity denormalized onto
// it. The channel is free-form at write time; only read filters validate it.
func (s *ContentService) CreatePost(author *models.Account, title, content, channel string) (*models.Post, error) {
	post := &models.Post{
		Title:       title,
		Content:     content,
		Channel:     channel,
		PosterID:    author.ID,
		PosterName:  author.Name,
		PosterEmail: author.Email,
	}
	if err := s.db.SavePost(post); err != nil {
		return nil, err
	}
	return post, nil
}

// QueryPosts returns posts for a filter token, newest first. "publish" and
// "like" need the email argument; unknown tokens fail with ErrInvalidFilter.
func (s *ContentService) QueryPosts(queryType, email string) ([]models.Post, error) {
	if !queryTypes[queryType] {
		return nil, ErrInvalidFilter
	}

	switch queryType {
	case "publish":
		return s.db.GetPostsByPoster(email)

	case "like":
		ids, err := s.db.GetLikedPostIDs(email)
		if err != nil {
			return nil, err
		}
		return s.db.GetPostsByIDs(ids)

	case "All":
		return s.db.GetAllPosts()

	default:
		// remaining tokens, "explore" included, filter by channel
		return s.db.GetPostsByChannel(queryType)
	}
}

// QueryComments returns every comment on a post, in insertion order.
func (s *ContentService) QueryComments(postID uint) ([]CommentView, error) {
	comments, err := s.db.GetCommentsByPost(postID)
	if err != nil {
		return nil, err
	}
	return commentViews(s.db, comments)
}

// AddComment stores a comment on the post, denormalizing the post owner's
// email for notification filtering.
func (s *ContentService) AddComment(author *models.Account, postID uint, text string) (*CommentView, error) {
	post, err := s.db.GetPost(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		PostID:           post.ID,
		PosterEmail:      post.PosterEmail,
		CommentatorEmail: author.Email,
		CommentatorID:    author.ID,
		CommentatorName:  author.Name,
		Comment:          text,
	}
	if err := s.db.SaveComment(comment); err != nil {
		return nil, err
	}

	return &CommentView{Comment: *comment, PostTitle: post.Title}, nil
}

// DeletePost removes an owned post with its comments and like edges. A post
// that exists but belongs to someone else fails with ErrPostNotFound, same
// as a missing one.
func (s *ContentService) DeletePost(ownerEmail string, postID uint) error {
	post, err := s.db.GetOwnedPost(postID, ownerEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	return s.db.DeletePostCascade(post.ID, post.PosterEmail)
}

// commentViews resolves post titles for a batch of comments, fetching each
// referenced post once. Dangling references keep an empty title.
func commentViews(db *database.Database, comments []models.Comment) ([]CommentView, error) {
	titles := make(map[uint]string)
	views := make([]CommentView, len(comments))

	for i, c := range comments {
		title, ok := titles[c.PostID]
		if !ok {
			post, err := db.GetPost(c.PostID)
			if err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, err
				}
				title = ""
			} else {
				title = post.Title
			}
			titles[c.PostID] = title
		}
		views[i] = CommentView{Comment: c, PostTitle: title}
	}

	return views, nil
}
