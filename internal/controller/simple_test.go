package controller

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "cmerge.dev/pkg/cmerge/internal/model"
)

func newTestUI() (*SimpleUI, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)

	return NewSimpleUI(cmd), buf
}

func TestSimpleUI_DisplayPlan(t *testing.T) {
	ui, buf := newTestUI()

	entries := []m.PlanEntry{
		{Entity: m.SourceEntity{ShortPath: "main.cpp", Name: "main.cpp", Kind: m.KindCompilationUnit}, Role: m.RoleTarget},
		{Entity: m.SourceEntity{ShortPath: "include/util.h", Name: "util.h", Kind: m.KindHeader}, Role: m.RoleInlineable},
		{Entity: m.SourceEntity{ShortPath: "README.md", Name: "README.md", Kind: m.KindOther}, Role: m.RoleIgnored},
	}

	require.NoError(t, ui.DisplayPlan(context.Background(), entries))

	out := buf.String()
	assert.Contains(t, out, "main.cpp")
	assert.Contains(t, out, "include/util.h")
	assert.Contains(t, out, "README.md")
	assert.Contains(t, out, string(m.RoleTarget))
	assert.Contains(t, out, string(m.RoleInlineable))
	assert.Contains(t, strings.ToLower(out), "total files 3")
	assert.Contains(t, strings.ToLower(out), "1 targets, 1 inlineable")
}

func TestSimpleUI_DisplayPlanCanceled(t *testing.T) {
	ui, buf := newTestUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, ui.DisplayPlan(ctx, nil), context.Canceled)
	assert.Empty(t, buf.String())
}

func TestSimpleUI_DisplayWritten(t *testing.T) {
	ui, buf := newTestUI()

	ui.DisplayWritten(context.Background(), m.MergeReport{
		Source:  "main.cpp",
		Output:  "merged/main.cpp",
		Inlined: []string{"a.h", "b.h"},
	})

	assert.Equal(t, "Merged main.cpp -> merged/main.cpp (2 inlined)\n", buf.String())
}

func TestSimpleUI_DisplayDiff(t *testing.T) {
	t.Run("empty diff reports unchanged", func(t *testing.T) {
		ui, buf := newTestUI()

		ui.DisplayDiff(context.Background(), m.MergeReport{Source: "plain.cpp"}, "")

		assert.Equal(t, "plain.cpp: unchanged\n", buf.String())
	})

	t.Run("diff is printed as is", func(t *testing.T) {
		ui, buf := newTestUI()
		diff := "--- main.cpp\n+++ merged/main.cpp\n@@ -1 +1 @@\n-#include \"a.h\"\n+int a;\n"

		ui.DisplayDiff(context.Background(), m.MergeReport{Source: "main.cpp"}, diff)

		assert.Equal(t, diff, buf.String())
	})
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	ui, buf := newTestUI()

	reports := []m.MergeReport{
		{Source: "main.cpp", Inlined: []string{"a.h", "b.h"}, Suppressed: []string{"a.h"}},
		{Source: "tool.cpp", Cycles: []string{"x.h -> y.h -> x.h"}, Unresolved: []string{"stdio.h"}},
	}

	require.NoError(t, ui.DisplaySummary(context.Background(), reports))

	out := buf.String()
	assert.Contains(t, out, "main.cpp")
	assert.Contains(t, out, "tool.cpp")
	assert.Contains(t, strings.ToLower(out), "total targets 2")
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(nil))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTTY(f))
}
