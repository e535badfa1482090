// Package domain provides shared domain-level sentinel errors.
package domain

import "errors"

// ErrNotFound indicates the requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrMalformed indicates a content source exists but cannot be decoded.
var ErrMalformed = errors.New("malformed content")
