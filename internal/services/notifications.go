package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sy4k1/gla-it-project/internal/database"
	"github.com/sy4k1/gla-it-project/internal/metrics"
	"github.com/sy4k1/gla-it-project/internal/models"
)

// Notification kinds accepted by MarkRead.
const (
	ReadKindComments  = "comments"
	ReadKindLikes     = "likes"
	ReadKindFollowers = "followers"
)

// NotificationService aggregates unread comments, likes and follows for an
// account and marks individual items read.
type NotificationService struct {
	db *database.Database
}

func NewNotificationService(db *database.Database) *NotificationService {
	return &NotificationService{db: db}
}

// UnreadSummary is the full unread set for one account, newest first per
// kind. No pagination.
type UnreadSummary struct {
	Comments  []CommentView
	Likes     []models.LikedPost
	Followers []models.Follower
}

// Unread runs the three independent unread queries. Self-generated comments
// and likes never notify their author.
func (s *NotificationService) Unread(accountEmail string) (*UnreadSummary, error) {
	comments, err := s.db.GetUnreadComments(accountEmail)
	if err != nil {
		return nil, err
	}

	views, err := commentViews(s.db, comments)
	if err != nil {
		return nil, err
	}

	likes, err := s.db.GetUnreadLikes(accountEmail)
	if err != nil {
		return nil, err
	}

	followers, err := s.db.GetUnreadFollowers(accountEmail)
	if err != nil {
		return nil, err
	}

	return &UnreadSummary{Comments: views, Likes: likes, Followers: followers}, nil
}

// MarkRead sets the read flag on one notification row. There is no ownership
// check against the caller: any authenticated session may mark any id read,
// and re-marking a read row succeeds.
func (s *NotificationService) MarkRead(kind string, id uint) error {
	switch kind {
	case ReadKindComments:
		row, err := s.db.GetComment(id)
		if err != nil {
			return markReadErr(err)
		}
		row.Read = true
		if err := s.db.UpdateComment(row); err != nil {
			return err
		}

	case ReadKindLikes:
		row, err := s.db.GetLike(id)
		if err != nil {
			return markReadErr(err)
		}
		row.Read = true
		if err := s.db.UpdateLike(row); err != nil {
			return err
		}

	case ReadKindFollowers:
		row, err := s.db.GetFollower(id)
		if err != nil {
			return markReadErr(err)
		}
		row.Read = true
		if err := s.db.UpdateFollower(row); err != nil {
			return err
		}

	default:
		return ErrInvalidReadKind
	}

	metrics.IncrementNotificationRead(kind)
	return nil
}

func markReadErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotificationNotFound
	}
	return err
}
