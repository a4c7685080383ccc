package repository

import "github.com/m-mizutani/goerr/v2"

var (
	ErrNotFound      = goerr.New("not found")
	ErrAlreadyExists = goerr.New("already exists")
	ErrInvalidInput  = goerr.New("invalid input")

	// ErrDuplicateNickname guards the invariant that a nickname is held
	// by at most one ACTIVE root per group.
	ErrDuplicateNickname = goerr.New("nickname already in use by an active root")
)
