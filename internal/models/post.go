package models

import (
	"time"
)

type Post struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"index;not null"`
	Content     string
	Images      string // serialized URL list
	PosterEmail string `gorm:"index;not null"`
	PosterID    uint   `gorm:"index"`
	PosterName  string
	Likes       int    `gorm:"default:0"`
	Views       int    `gorm:"default:0"`
	Channel     string `gorm:"index"`
	CreatedAt   time.Time
}

// LikedPost is a like edge between an account and a post. The post owner's
// email is denormalized so the unread-likes query needs no join; Post.Likes
// is maintained alongside, not recomputed from these rows.
type LikedPost struct {
	ID                uint   `gorm:"primaryKey"`
	LikedAccountEmail string `gorm:"index;not null"`
	LikedAccountName  string
	PostID            uint   `gorm:"index;not null"`
	PosterEmail       string `gorm:"index;not null"`
	Read              bool   `gorm:"default:false"`
	CreatedAt         time.Time
}

type Comment struct {
	ID               uint   `gorm:"primaryKey"`
	PostID           uint   `gorm:"index;not null"`
	PosterEmail      string `gorm:"index;not null"` // post owner, for notification filtering
	CommentatorEmail string `gorm:"index;not null"`
	CommentatorID    uint   `gorm:"index"`
	CommentatorName  string
	Comment          string
	Read             bool `gorm:"default:false"`
	CreatedAt        time.Time
}
