package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sy4k1/gla-it-project/internal/database"
	"github.com/sy4k1/gla-it-project/internal/models"
)

// GraphService maintains follow and like edges and their toggle semantics.
type GraphService struct {
	db *database.Database
}

func NewGraphService(db *database.Database) *GraphService {
	return &GraphService{db: db}
}

// FollowToggle flips the actor→target follow edge and returns the new state.
// This is a strict toggle, not an idempotent set: two calls in a row follow
// and then unfollow.
func (s *GraphService) FollowToggle(actor *models.Account, targetEmail string) (bool, error) {
	target, err := s.db.FindAccountByEmail(targetEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrAccountNotFound
		}
		return false, err
	}

	following, err := s.db.HasFollower(actor.Email, target.Email)
	if err != nil {
		return false, err
	}

	if following {
		if err := s.db.DeleteFollowers(actor.Email, target.Email); err != nil {
			return false, err
		}
		return false, nil
	}

	edge := &models.Follower{
		FollowerEmail: actor.Email,
		FollowerName:  actor.Name,
		FollowerID:    actor.ID,
		FollowedEmail: target.Email,
	}
	if err := s.db.SaveFollower(edge); err != nil {
		return false, err
	}
	return true, nil
}

// FollowStatus reports whether actor follows target. No side effects, and no
// check that the target account exists.
func (s *GraphService) FollowStatus(actorEmail, targetEmail string) (bool, error) {
	return s.db.HasFollower(actorEmail, targetEmail)
}

// LikeToggle flips the actor's like on the post and moves the denormalized
// likes counter with it. Fails with ErrPostNotFound when the post is gone.
func (s *GraphService) LikeToggle(actor *models.Account, postID uint) (bool, error) {
	post, err := s.db.GetPost(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrPostNotFound
		}
		return false, err
	}

	liked, err := s.db.HasLike(postID, actor.Email)
	if err != nil {
		return false, err
	}

	if liked {
		if err := s.db.DeleteLikeAndDecrement(postID, actor.Email); err != nil {
			return false, err
		}
		return false, nil
	}

	edge := &models.LikedPost{
		LikedAccountEmail: actor.Email,
		LikedAccountName:  actor.Name,
		PostID:            post.ID,
		PosterEmail:       post.PosterEmail,
	}
	if err := s.db.SaveLikeAndIncrement(edge); err != nil {
		return false, err
	}
	return true, nil
}

// LikeStatus reports whether the account has liked the post.
func (s *GraphService) LikeStatus(actorEmail string, postID uint) (bool, error) {
	return s.db.HasLike(postID, actorEmail)
}

// ProfileCounts returns the follower count and received-like count shown on
// an account profile.
func (s *GraphService) ProfileCounts(email string) (followers, likes int64, err error) {
	followers, err = s.db.CountFollowers(email)
	if err != nil {
		return 0, 0, err
	}
	likes, err = s.db.CountReceivedLikes(email)
	if err != nil {
		return 0, 0, err
	}
	return followers, likes, nil
}
