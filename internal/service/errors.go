package service

import "errors"

var (
	ErrPersistenceDisabled = errors.New("persistence disabled")
	ErrUnknownUniverse     = errors.New("unknown universe")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAuthDisabled        = errors.New("auth disabled")
)
