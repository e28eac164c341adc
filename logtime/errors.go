package logtime

import "errors"

var (
	ErrSourceUnavailable = errors.New("session source unavailable")
	ErrEmptyLogin        = errors.New("login is empty")
)
