package session

import "errors"

var (
	// ErrInvalidToken indicates the inbound token failed validation;
	// callers treat this as an absent session
	ErrInvalidToken = errors.New("session.invalid_token")

	// ErrEncodeFailed indicates the session could not be serialized
	ErrEncodeFailed = errors.New("session.encode_failed")
)
