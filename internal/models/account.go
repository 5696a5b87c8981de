package models

import (
	"time"
)

type Account struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;not null"`
	Name      string `gorm:"index;not null"`
	Password  string `gorm:"index;not null"` // sha512 hex digest
	Role      string
	Bio       string
	Avatar    string
	Wallpaper string
	CreatedAt time.Time
}

// AccessToken maps an opaque bearer token to an account email. At most one
// live row per email is intended but not enforced by the schema; login and
// logout delete prior rows best-effort before inserting a new one.
type AccessToken struct {
	ID           uint   `gorm:"primaryKey"`
	AccountEmail string `gorm:"index;not null"`
	Token        string `gorm:"index;not null"`
	CreatedAt    time.Time
}

// Passcode is a short-lived signup code tied to an email. Rows older than
// PasscodeTTL are invalid and get deleted on the first use attempt.
type Passcode struct {
	ID           uint   `gorm:"primaryKey"`
	AccountEmail string `gorm:"index;not null"`
	Code         string `gorm:"index;not null"`
	CreatedAt    time.Time
}

// Follower is a directed follow edge. The follower's name and id are
// denormalized onto the edge so notification payloads need no join.
type Follower struct {
	ID            uint   `gorm:"primaryKey"`
	FollowerEmail string `gorm:"index;not null"`
	FollowerName  string
	FollowerID    uint
	FollowedEmail string `gorm:"index;not null"`
	Read          bool   `gorm:"default:false"`
	CreatedAt     time.Time
}
