// Package domain contains the include-flattening algorithm and the workflow
// that drives it over a source tree.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	m "cmerge.dev/pkg/cmerge/internal/model"
)

// Merger flattens a primary target by recursively inlining the pool files
// its include directives name.
type Merger interface {
	Merge(ctx context.Context, target *SourceFile, pool *CandidatePool) (m.MergeReport, error)
}

type merger struct {
	logger *slog.Logger
}

// NewMerger constructs a Merger that reports diagnostics to logger.
func NewMerger(logger *slog.Logger) Merger {
	if logger == nil {
		logger = slog.Default()
	}

	return &merger{logger: logger}
}

// mergeState is shared by every frame of one top-level merge.
type mergeState struct {
	pool *CandidatePool
	// open holds the names of the files on the active expansion branch,
	// excluding the file currently being expanded.
	open []string
	// expanded holds every name expanded (or found unresolvable) so far.
	expanded map[string]struct{}
	report   *m.MergeReport
}

// Merge returns the flattened text of target. Cycles and unresolved includes
// are recovered locally; only file access failures produce an error.
func (mg *merger) Merge(ctx context.Context, target *SourceFile, pool *CandidatePool) (m.MergeReport, error) {
	report := m.MergeReport{
		Target: target.SourceEntity,
		Source: target.ShortPath,
	}

	state := &mergeState{
		pool:     pool,
		expanded: make(map[string]struct{}),
		report:   &report,
	}

	text, err := mg.expand(ctx, state, target)
	if err != nil {
		return m.MergeReport{}, err
	}

	report.Text = text

	return report, nil
}

func (mg *merger) expand(ctx context.Context, state *mergeState, file *SourceFile) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	state.expanded[file.Name] = struct{}{}

	text, err := file.Text(ctx)
	if err != nil {
		return "", err
	}

	directives, err := file.Directives(ctx)
	if err != nil {
		return "", err
	}

	// Each directive replaces the first occurrence of its literal text in the
	// working copy, which may already hold expansions of earlier directives.
	work := text

	for _, directive := range directives {
		replacement, err := mg.resolve(ctx, state, file, directive)
		if err != nil {
			return "", err
		}

		work = strings.Replace(work, directive.LiteralText, replacement, 1)
	}

	return work, nil
}

// resolve computes the text that replaces one directive of file.
func (mg *merger) resolve(ctx context.Context, state *mergeState, file *SourceFile, directive m.IncludeDirective) (string, error) {
	name := directive.TargetName

	if idx := slices.Index(state.open, name); idx >= 0 {
		chain := append(slices.Clone(state.open[idx:]), file.Name, name)
		state.report.Cycles = append(state.report.Cycles, strings.Join(chain, " -> "))

		mg.logger.Error(
			fmt.Sprintf("Recursive include detected in %s on header %s. Replacing by empty.", file.Name, name),
			"target", state.report.Source,
			"chain", strings.Join(chain, " -> "),
		)

		return "", nil
	}

	if _, done := state.expanded[name]; done {
		state.report.Suppressed = append(state.report.Suppressed, name)
		mg.logger.Debug("Dropping repeated include", "file", file.Name, "include", name)

		return "", nil
	}

	match, ok := state.pool.Lookup(name)
	if !ok {
		state.expanded[name] = struct{}{}
		state.report.Unresolved = append(state.report.Unresolved, name)
		mg.logger.Warn("Could not inline header: "+name, "file", file.Name)

		return directive.LiteralText, nil
	}

	state.report.Inlined = append(state.report.Inlined, name)
	mg.logger.Debug("Inlining include", "file", file.Name, "include", name, "path", match.ShortPath)

	state.open = append(state.open, file.Name)
	defer func() { state.open = state.open[:len(state.open)-1] }()

	return mg.expand(ctx, state, match)
}
