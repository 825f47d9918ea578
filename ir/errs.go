package ir

import (
	"errors"
)

var (
	errInternal = errors.New("internal error")

	ErrParse        = errors.New("parse error")
	ErrTypeConflict = errors.New("type conflict")
	ErrNotFound     = errors.New("key not found")
)
