package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrBranchExists       = errors.New("branch already exists")
	ErrAccountLocked      = errors.New("account temporarily locked")
	ErrBranchNotFound     = errors.New("branch not found")
)
