package domain

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"cmerge.dev/pkg/cmerge/internal/adapter"
	m "cmerge.dev/pkg/cmerge/internal/model"
)

// memFS is an in-memory SourceFSAdapter that counts reads per path.
type memFS struct {
	mu    sync.Mutex
	files map[m.Path]string
	reads map[m.Path]int
}

func newMemFS() *memFS {
	return &memFS{files: map[m.Path]string{}, reads: map[m.Path]int{}}
}

func (f *memFS) put(path m.Path, text string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.files[path] = text
}

func (f *memFS) readCount(path m.Path) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.reads[path]
}

func (f *memFS) Walk(_ context.Context, _ m.Path, _ adapter.FilepathWalkFunc) error {
	return errors.New("walk not supported")
}

func (f *memFS) ReadFile(_ context.Context, path m.Path) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.reads[path]++

	text, ok := f.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}

	return []byte(text), nil
}

func (f *memFS) WriteFile(_ context.Context, path m.Path, content []byte, _ os.FileMode) error {
	f.put(path, string(content))
	return nil
}

func (f *memFS) MkdirAll(_ context.Context, _ m.Path) error {
	return nil
}

func (f *memFS) Abs(_ context.Context, path m.Path) (m.Path, error) {
	return path, nil
}

func (f *memFS) RelPath(_ context.Context, base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	return m.Path(rel), err
}

func (f *memFS) JoinPath(_ context.Context, elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

type fixture struct {
	name string
	text string
}

// buildFiles stores every fixture under /src and wraps it in a SourceFile.
func buildFiles(fsys *memFS, fixtures ...fixture) []*SourceFile {
	files := make([]*SourceFile, 0, len(fixtures))

	for _, fx := range fixtures {
		full := m.Path("/src/" + fx.name)
		fsys.put(full, fx.text)
		files = append(files, NewSourceFile(m.SourceEntity{
			FullPath:  full,
			ShortPath: m.Path(fx.name),
			Name:      filepath.Base(fx.name),
			Kind:      Classify(fx.name),
		}, fsys))
	}

	return files
}

// captureLogger returns a debug-level logger whose diagnostic lines land in the buffer.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(adapter.NewDiagHandler(buf, slog.LevelDebug, false)), buf
}

func countLines(t *testing.T, output, prefix string) int {
	t.Helper()

	count := 0

	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, prefix) {
			count++
		}
	}

	return count
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
