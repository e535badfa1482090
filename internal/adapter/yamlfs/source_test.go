package yamlfs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Strob0t/codeguide/internal/domain"
	"github.com/Strob0t/codeguide/internal/domain/tool"
	"github.com/Strob0t/codeguide/internal/port/contentsource"
)

var _ contentsource.Source = (*Source)(nil)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDecodesCollection(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tools.yaml", `
- id: cursor
  name: Cursor
  category: editor
  url: https://cursor.com
`)

	var tools []tool.Tool
	if err := New(dir).Load(context.Background(), contentsource.Tools, &tools); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(tools) != 1 || tools[0].ID != "cursor" {
		t.Fatalf("unexpected tools %+v", tools)
	}
}

func TestLoadMissingFile(t *testing.T) {
	var tools []tool.Tool
	err := New(t.TempDir()).Load(context.Background(), contentsource.Tools, &tools)
	if !errors.Is(err, contentsource.ErrMissing) {
		t.Fatalf("expected ErrMissing, got %v", err)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tools.yaml", "id: [not, a, list")

	var tools []tool.Tool
	err := New(dir).Load(context.Background(), contentsource.Tools, &tools)
	if !errors.Is(err, domain.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestLoadMappingInsteadOfList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tools.yaml", "id: cursor\nname: Cursor\n")

	var tools []tool.Tool
	err := New(dir).Load(context.Background(), contentsource.Tools, &tools)
	if !errors.Is(err, domain.ErrMalformed) {
		t.Fatalf("expected ErrMalformed for a mapping, got %v", err)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tools.yaml", "")

	var tools []tool.Tool
	if err := New(dir).Load(context.Background(), contentsource.Tools, &tools); err != nil {
		t.Fatalf("empty file should not error, got %v", err)
	}
	if len(tools) != 0 {
		t.Fatalf("expected no tools, got %d", len(tools))
	}
}

func TestLoadCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var tools []tool.Tool
	if err := New(t.TempDir()).Load(ctx, contentsource.Tools, &tools); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestFiles(t *testing.T) {
	got := Files("/data")
	want := []string{"/data/guide.yaml", "/data/tools.yaml", "/data/resources.yaml"}
	if len(got) != len(want) {
		t.Fatalf("expected %d files, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("file %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}
