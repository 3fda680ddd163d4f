package client

import "errors"

var (
	ErrUnavailable          = errors.New("server unavailable")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrSessionExpired       = errors.New("session expired, please log in again")
	ErrCompanionUnavailable = errors.New("companion is not configured on the server")
)
