package service

import "errors"

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrEmptyAccountName = errors.New("account name is empty")
	ErrEmptySecret      = errors.New("secret is empty")
	ErrVaultExists      = errors.New("vault file already exists")
	ErrNilCredentials   = errors.New("credential map is nil")
)
