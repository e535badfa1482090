// Package contentsource defines the port interface for reading the
// declarative content collections.
package contentsource

import (
	"context"
	"errors"
)

// Collection names.
const (
	Guide     = "guide"
	Tools     = "tools"
	Resources = "resources"
)

// ErrMissing is returned by Load when the collection has no backing data.
var ErrMissing = errors.New("content source missing")

// Source loads a named collection of flat records.
type Source interface {
	// Load decodes the collection into out, a pointer to a slice.
	// It returns an error wrapping ErrMissing when the collection does not
	// exist and one wrapping domain.ErrMalformed when it cannot be decoded.
	Load(ctx context.Context, name string, out any) error
	// Location describes where a collection is read from, for logs.
	Location(name string) string
}
