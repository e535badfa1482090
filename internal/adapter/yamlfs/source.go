// Package yamlfs implements the content source port over YAML files in a directory.
package yamlfs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Strob0t/codeguide/internal/domain"
	"github.com/Strob0t/codeguide/internal/port/contentsource"
)

// Ext is the file extension appended to collection names.
const Ext = ".yaml"

// Source reads <dir>/<name>.yaml for each collection.
type Source struct {
	dir string
}

// New creates a Source rooted at dir.
func New(dir string) *Source {
	return &Source{dir: dir}
}

// Dir returns the directory the source reads from.
func (s *Source) Dir() string {
	return s.dir
}

// Location returns the file path backing the named collection.
func (s *Source) Location(name string) string {
	return filepath.Join(s.dir, name+Ext)
}

// Load decodes the named collection file into out. An empty file decodes to
// an empty collection.
func (s *Source) Load(ctx context.Context, name string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := s.Location(name)
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is built from the configured data dir
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: %w", path, contentsource.ErrMissing)
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w: %v", path, domain.ErrMalformed, err)
	}
	return nil
}

// Files returns the data file paths a Source with this directory reads.
func Files(dir string) []string {
	names := []string{contentsource.Guide, contentsource.Tools, contentsource.Resources}
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = filepath.Join(dir, n+Ext)
	}
	return out
}
