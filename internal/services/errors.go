package services

import "errors"

var (
	ErrDuplicateEmail       = errors.New("email already registered")
	ErrInvalidToken         = errors.New("invalid access token")
	ErrAccountNotFound      = errors.New("account does not exist")
	ErrPasscodeNotFound     = errors.New("invalid passcode")
	ErrPasscodeExpired      = errors.New("expired passcode")
	ErrPostNotFound         = errors.New("post does not exist")
	ErrNotificationNotFound = errors.New("notification record does not exist")
	ErrInvalidReadKind      = errors.New("invalid notification type")
	ErrInvalidFilter        = errors.New("invalid query type")
)
