package domain

import (
	"context"
	"sync"

	"cmerge.dev/pkg/cmerge/internal/adapter"
	m "cmerge.dev/pkg/cmerge/internal/model"
)

// SourceFile pairs a SourceEntity with lazily loaded contents. The text is
// read at most once and the directives are scanned at most once, even when
// several merges share the file concurrently.
type SourceFile struct {
	m.SourceEntity

	fs adapter.SourceFSAdapter

	textOnce sync.Once
	text     string
	textErr  error

	directivesOnce sync.Once
	directives     []m.IncludeDirective
	directivesErr  error
}

// NewSourceFile wraps entity; contents are read through fs on first use.
func NewSourceFile(entity m.SourceEntity, fs adapter.SourceFSAdapter) *SourceFile {
	return &SourceFile{
		SourceEntity: entity,
		fs:           fs,
	}
}

// Text returns the raw file contents. A canceled ctx fails the call without
// poisoning the cached result for other callers.
func (f *SourceFile) Text(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f.textOnce.Do(func() {
		content, err := f.fs.ReadFile(context.WithoutCancel(ctx), f.FullPath)
		if err != nil {
			f.textErr = &FileAccessError{Op: "read", Path: f.FullPath, Err: err}
			return
		}

		f.text = string(content)
	})

	return f.text, f.textErr
}

// Directives returns the include directives of the file in source order.
func (f *SourceFile) Directives(ctx context.Context) ([]m.IncludeDirective, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.directivesOnce.Do(func() {
		text, err := f.Text(context.WithoutCancel(ctx))
		if err != nil {
			f.directivesErr = err
			return
		}

		f.directives = ScanDirectives(text)
	})

	return f.directives, f.directivesErr
}
