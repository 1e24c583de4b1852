// Package controller renders merge plans and results for the terminal.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"

	m "cmerge.dev/pkg/cmerge/internal/model"
)

// UI defines how the workflow reports progress and results.
// Implementations can use different output methods.
type UI interface {
	// DisplayPlan lists every candidate file with its kind and role.
	DisplayPlan(ctx context.Context, entries []m.PlanEntry) error
	// DisplayWritten reports a flattened target saved to disk.
	DisplayWritten(ctx context.Context, report m.MergeReport)
	// DisplayDiff shows what flattening would change in a target.
	DisplayDiff(ctx context.Context, report m.MergeReport, diff string)
	// DisplaySummary prints per-target counts once every merge is done.
	DisplaySummary(ctx context.Context, reports []m.MergeReport) error
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
