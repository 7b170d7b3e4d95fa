package model

import "errors"

// TokenManager issues and validates signed bearer tokens. The subject claim
// carries the account email.
type TokenManager interface {
	Generate(subject string) (string, error)
	Parse(token string) (subject string, err error)
}

var (
	ErrTokenInvalid = errors.New("token is invalid")
	ErrTokenExpired = errors.New("token expired")
)
