package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sy4k1/gla-it-project/internal/models"
	"github.com/sy4k1/gla-it-project/internal/services"
)

// Every endpoint answers HTTP 200 with the same envelope; code 1 is success,
// code 0 is any logical failure.

func respondSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"code": 1,
		"data": data,
	})
}

func respondFailed(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": message,
		"data":    nil,
	})
}

// respondUnexpected surfaces the underlying error text in data.
func respondUnexpected(c *gin.Context, err error) {
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "An unexpected error occurred.",
		"data":    err.Error(),
	})
}

func respondMissingFields(c *gin.Context, fields []string) {
	respondFailed(c, "Missing fields: "+strings.Join(fields, ", ")+"!")
}

// respondServiceError maps the core error taxonomy onto envelope messages.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidToken):
		respondFailed(c, "Invalid access token!")
	case errors.Is(err, services.ErrAccountNotFound):
		respondFailed(c, "Account does not exist!")
	case errors.Is(err, services.ErrDuplicateEmail):
		respondFailed(c, "Email already registered!")
	case errors.Is(err, services.ErrPasscodeNotFound):
		respondFailed(c, "Invalid passcode!")
	case errors.Is(err, services.ErrPasscodeExpired):
		respondFailed(c, "Expired passcode!")
	case errors.Is(err, services.ErrPostNotFound):
		respondFailed(c, "Invalid ID!")
	case errors.Is(err, services.ErrInvalidFilter), errors.Is(err, services.ErrInvalidReadKind):
		respondFailed(c, "Invalid type!")
	default:
		respondUnexpected(c, err)
	}
}

func accountData(a *models.Account, followers, following, likes int64, accessToken interface{}) gin.H {
	return gin.H{
		"id":              a.ID,
		"email":           a.Email,
		"name":            a.Name,
		"role":            a.Role,
		"bio":             a.Bio,
		"avatar":          a.Avatar,
		"wallpaper":       a.Wallpaper,
		"create_datetime": a.CreatedAt,
		"access_token":    accessToken,
		"following":       following,
		"followers":       followers,
		"likes":           likes,
	}
}

func postData(p *models.Post) gin.H {
	return gin.H{
		"id":              p.ID,
		"title":           p.Title,
		"content":         p.Content,
		"images":          p.Images,
		"poster_email":    p.PosterEmail,
		"poster_id":       p.PosterID,
		"poster_name":     p.PosterName,
		"likes":           p.Likes,
		"views":           p.Views,
		"channel":         p.Channel,
		"create_datetime": p.CreatedAt,
	}
}

func postListData(posts []models.Post) []gin.H {
	out := make([]gin.H, len(posts))
	for i := range posts {
		out[i] = postData(&posts[i])
	}
	return out
}

func commentData(v *services.CommentView) gin.H {
	return gin.H{
		"id":                v.Comment.ID,
		"post":              v.Comment.PostID,
		"post_title":        v.PostTitle,
		"poster_email":      v.Comment.PosterEmail,
		"commentator_email": v.Comment.CommentatorEmail,
		"commentator_id":    v.Comment.CommentatorID,
		"commentator_name":  v.Comment.CommentatorName,
		"comment":           v.Comment.Comment,
		"read":              v.Comment.Read,
		"create_datetime":   v.Comment.CreatedAt,
	}
}

func commentListData(views []services.CommentView) []gin.H {
	out := make([]gin.H, len(views))
	for i := range views {
		out[i] = commentData(&views[i])
	}
	return out
}

func likeListData(likes []models.LikedPost) []gin.H {
	out := make([]gin.H, len(likes))
	for i, l := range likes {
		out[i] = gin.H{
			"id":                  l.ID,
			"liked_account_email": l.LikedAccountEmail,
			"liked_account_name":  l.LikedAccountName,
			"post_id":             l.PostID,
			"poster_email":        l.PosterEmail,
			"read":                l.Read,
			"create_datetime":     l.CreatedAt,
		}
	}
	return out
}

func followerListData(followers []models.Follower) []gin.H {
	out := make([]gin.H, len(followers))
	for i, f := range followers {
		out[i] = gin.H{
			"id":              f.ID,
			"follower_email":  f.FollowerEmail,
			"follower_name":   f.FollowerName,
			"follower_id":     f.FollowerID,
			"followed_email":  f.FollowedEmail,
			"read":            f.Read,
			"create_datetime": f.CreatedAt,
		}
	}
	return out
}
