package domain

import (
	"path/filepath"

	m "cmerge.dev/pkg/cmerge/internal/model"
)

// Classify determines the kind of a file from its extension alone.
func Classify(path string) m.Kind {
	switch filepath.Ext(path) {
	case ".c", ".cpp":
		return m.KindCompilationUnit
	case ".h", ".hpp":
		return m.KindHeader
	default:
		return m.KindOther
	}
}

// PoolOptions selects which kinds besides headers may be inlined.
type PoolOptions struct {
	// SourceInline makes compilation units inlineable into other units.
	SourceInline bool
	// InlineOther makes files of unknown kind inlineable.
	InlineOther bool
}

// Partition splits files into primary targets and the candidate pool. Headers
// come first in the pool, then compilation units, then other files, each
// group keeping the order of files.
func Partition(files []*SourceFile, opts PoolOptions) ([]*SourceFile, *CandidatePool) {
	var (
		targets []*SourceFile
		headers []*SourceFile
		others  []*SourceFile
	)

	for _, file := range files {
		switch file.Kind {
		case m.KindCompilationUnit:
			targets = append(targets, file)
		case m.KindHeader:
			headers = append(headers, file)
		case m.KindOther:
			others = append(others, file)
		}
	}

	inlineable := headers
	if opts.SourceInline {
		inlineable = append(inlineable, targets...)
	}

	if opts.InlineOther {
		inlineable = append(inlineable, others...)
	}

	return targets, NewCandidatePool(inlineable)
}

// RoleOf reports how a file takes part in a merge run.
func RoleOf(file *SourceFile, pool *CandidatePool) m.Role {
	if file.Kind == m.KindCompilationUnit {
		return m.RoleTarget
	}

	if pool.Contains(file) {
		return m.RoleInlineable
	}

	return m.RoleIgnored
}
