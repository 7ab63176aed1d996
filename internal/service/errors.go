package service

import "errors"

var (
	ErrSessionNotFound = errors.New("editor session not found")
	ErrInvalidTarget   = errors.New("invalid bridge target")
	ErrNotInteractive  = errors.New("editor session is not interactive")
)
