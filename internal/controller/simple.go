package controller

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "cmerge.dev/pkg/cmerge/internal/model"
)

// SimpleUI implements UI using the cobra command's output stream.
type SimpleUI struct {
	mu  sync.Mutex
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayPlan prints the classification table.
func (s *SimpleUI) DisplayPlan(ctx context.Context, entries []m.PlanEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderPlanTable(entries))

	return nil
}

func renderPlanTable(entries []m.PlanEntry) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Kind", "Role"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	targets := 0
	inlineable := 0

	for _, entry := range entries {
		table.Append([]string{string(entry.Entity.ShortPath), entry.Entity.Kind.String(), string(entry.Role)})

		switch entry.Role {
		case m.RoleTarget:
			targets++
		case m.RoleInlineable:
			inlineable++
		case m.RoleIgnored:
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(entries)),
		"",
		fmt.Sprintf("%d targets, %d inlineable", targets, inlineable),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayWritten prints one line per saved target.
func (s *SimpleUI) DisplayWritten(ctx context.Context, report m.MergeReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Merged %s -> %s (%d inlined)\n", report.Source, report.Output, len(report.Inlined))
}

// DisplayDiff prints the unified diff for a dry run.
func (s *SimpleUI) DisplayDiff(ctx context.Context, report m.MergeReport, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if diff == "" {
		s.printf("%s: unchanged\n", report.Source)
		return
	}

	s.printf("%s", diff)
}

// DisplaySummary prints the per-target summary table.
func (s *SimpleUI) DisplaySummary(ctx context.Context, reports []m.MergeReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderSummaryTable(reports))

	return nil
}

func renderSummaryTable(reports []m.MergeReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Target", "Inlined", "Suppressed", "Cycles", "Unresolved"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	var inlined, suppressed, cycles, unresolved int

	for _, report := range reports {
		table.Append([]string{
			string(report.Source),
			fmt.Sprintf("%d", len(report.Inlined)),
			fmt.Sprintf("%d", len(report.Suppressed)),
			fmt.Sprintf("%d", len(report.Cycles)),
			fmt.Sprintf("%d", len(report.Unresolved)),
		})

		inlined += len(report.Inlined)
		suppressed += len(report.Suppressed)
		cycles += len(report.Cycles)
		unresolved += len(report.Unresolved)
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Targets %d", len(reports)),
		fmt.Sprintf("%d", inlined),
		fmt.Sprintf("%d", suppressed),
		fmt.Sprintf("%d", cycles),
		fmt.Sprintf("%d", unresolved),
	})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
