package domain

import "errors"

var (
	ErrUnknownPersona = errors.New("unknown persona")
	ErrInvalidProfile = errors.New("invalid style profile")
	ErrProfilesExist  = errors.New("profiles file already exists")
)
