package types

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEventNotFound   = errors.New("event not found")
	ErrVolunteerExists = errors.New("a volunteer with this email address already exists")
)
