package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"cmerge.dev/pkg/cmerge/internal/adapter"
	"cmerge.dev/pkg/cmerge/internal/controller"
	m "cmerge.dev/pkg/cmerge/internal/model"
)

// manifestVersion is bumped whenever the manifest layout changes.
const manifestVersion = 1

// PlanArgs selects the candidate files of a run.
type PlanArgs struct {
	Files        []m.Path
	InDir        m.Path
	Auto         bool
	Exclude      []string
	SourceInline bool
	InlineOther  bool
}

// MergeArgs contains the arguments for flattening every target of a plan.
type MergeArgs struct {
	PlanArgs

	OutDir   m.Path
	Parallel int
	DryRun   bool
	Manifest m.Path
}

// Plan is the classified candidate list of a run.
type Plan struct {
	InDir   m.Path
	Files   []*SourceFile
	Targets []*SourceFile
	Pool    *CandidatePool
}

// Entries returns one PlanEntry per candidate file, in discovery order.
func (p Plan) Entries() []m.PlanEntry {
	entries := make([]m.PlanEntry, 0, len(p.Files))
	for _, file := range p.Files {
		entries = append(entries, m.PlanEntry{Entity: file.SourceEntity, Role: RoleOf(file, p.Pool)})
	}

	return entries
}

// Workflow drives discovery, merging and output.
type Workflow interface {
	Plan(ctx context.Context, args PlanArgs) (Plan, error)
	List(ctx context.Context, args PlanArgs) error
	Merge(ctx context.Context, args MergeArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ManifestStore
	controller.UI

	merger Merger
	logger *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	manifestStore adapter.ManifestStore,
	ui controller.UI,
	merger Merger,
	logger *slog.Logger,
) Workflow {
	if logger == nil {
		logger = slog.Default()
	}

	return &workflow{
		SourceFSAdapter: fsAdapter,
		ManifestStore:   manifestStore,
		UI:              ui,
		merger:          merger,
		logger:          logger,
	}
}

// Plan resolves the candidate files and classifies them.
func (w *workflow) Plan(ctx context.Context, args PlanArgs) (Plan, error) {
	for _, pattern := range args.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return Plan{}, fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	inDir, err := w.Abs(ctx, args.InDir)
	if err != nil {
		return Plan{}, fmt.Errorf("resolve input directory: %w", err)
	}

	names := append([]m.Path(nil), args.Files...)

	if args.Auto {
		found, err := w.discover(ctx, inDir)
		if err != nil {
			return Plan{}, err
		}

		names = append(names, found...)
	}

	files := make([]*SourceFile, 0, len(names))
	seen := make(map[m.Path]struct{}, len(names))

	for _, name := range names {
		entity := w.entityFor(ctx, inDir, name)

		if _, dup := seen[entity.FullPath]; dup {
			continue
		}

		seen[entity.FullPath] = struct{}{}

		if excluded(entity.ShortPath, args.Exclude) {
			w.logger.Debug("Excluding file", "path", entity.ShortPath)
			continue
		}

		files = append(files, NewSourceFile(entity, w.SourceFSAdapter))
	}

	targets, pool := Partition(files, PoolOptions{SourceInline: args.SourceInline, InlineOther: args.InlineOther})

	return Plan{InDir: inDir, Files: files, Targets: targets, Pool: pool}, nil
}

// discover lists every regular file below inDir relative to it.
func (w *workflow) discover(ctx context.Context, inDir m.Path) ([]m.Path, error) {
	var found []m.Path

	err := w.Walk(ctx, inDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return &FileAccessError{Op: "walk", Path: m.Path(path), Err: err}
		}

		if info.IsDir() {
			return nil
		}

		rel, err := w.RelPath(ctx, inDir, m.Path(path))
		if err != nil {
			return fmt.Errorf("relative path of %s: %w", path, err)
		}

		found = append(found, rel)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", inDir, err)
	}

	return found, nil
}

func (w *workflow) entityFor(ctx context.Context, inDir, name m.Path) m.SourceEntity {
	full := m.Path(filepath.Clean(string(name)))
	if !filepath.IsAbs(string(name)) {
		full = w.JoinPath(ctx, string(inDir), string(name))
	}

	short, err := w.RelPath(ctx, inDir, full)
	if err != nil || escapes(short) {
		// Files outside the input root are mirrored by base name only.
		short = m.Path(filepath.Base(string(full)))
	}

	return m.SourceEntity{
		FullPath:  full,
		ShortPath: short,
		Name:      filepath.Base(string(full)),
		Kind:      Classify(string(full)),
	}
}

func escapes(rel m.Path) bool {
	s := string(rel)
	return s == ".." || strings.HasPrefix(s, ".."+string(filepath.Separator))
}

func excluded(short m.Path, patterns []string) bool {
	slashed := filepath.ToSlash(string(short))

	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, slashed); ok {
			return true
		}
	}

	return false
}

// List prints the classification of every candidate file.
func (w *workflow) List(ctx context.Context, args PlanArgs) error {
	plan, err := w.Plan(ctx, args)
	if err != nil {
		return fmt.Errorf("plan: %w", err)
	}

	return w.DisplayPlan(ctx, plan.Entries())
}

// Merge flattens every target of the plan and writes it below args.OutDir.
func (w *workflow) Merge(ctx context.Context, args MergeArgs) error {
	plan, err := w.Plan(ctx, args.PlanArgs)
	if err != nil {
		return fmt.Errorf("plan: %w", err)
	}

	outDir, err := w.Abs(ctx, args.OutDir)
	if err != nil {
		return fmt.Errorf("resolve output directory: %w", err)
	}

	w.logger.Info("Target (source) files", "files", shortPaths(plan.Targets))
	w.logger.Info("Include (header) files", "files", shortPaths(plan.Pool.Files()))

	reports := make([]*m.MergeReport, len(plan.Targets))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(args.Parallel, 1))

	for i, target := range plan.Targets {
		group.Go(func() error {
			report, err := w.mergeTarget(groupCtx, target, plan.Pool, outDir, args.DryRun)
			if err != nil {
				return err
			}

			reports[i] = &report

			return nil
		})
	}

	mergeErr := group.Wait()

	done := make([]m.MergeReport, 0, len(reports))

	for _, report := range reports {
		if report != nil {
			done = append(done, *report)
		}
	}

	if mergeErr != nil {
		return fmt.Errorf("merge: %w", mergeErr)
	}

	if err := w.DisplaySummary(ctx, done); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if args.Manifest != "" {
		manifest := m.Manifest{Version: manifestVersion, InDir: plan.InDir, OutDir: outDir, Targets: done}
		if err := w.SaveManifest(ctx, args.Manifest, manifest); err != nil {
			return fmt.Errorf("save manifest: %w", err)
		}
	}

	return nil
}

func (w *workflow) mergeTarget(ctx context.Context, target *SourceFile, pool *CandidatePool, outDir m.Path, dryRun bool) (m.MergeReport, error) {
	w.logger.Info("Beginning merge for: " + string(target.ShortPath))

	report, err := w.merger.Merge(ctx, target, pool)
	if err != nil {
		return m.MergeReport{}, fmt.Errorf("merge %s: %w", target.ShortPath, err)
	}

	outPath := w.JoinPath(ctx, string(outDir), string(target.ShortPath))
	report.Output = outPath

	if dryRun {
		original, err := target.Text(ctx)
		if err != nil {
			return m.MergeReport{}, err
		}

		w.DisplayDiff(ctx, report, unifiedDiff(original, report.Text, string(target.ShortPath), string(outPath)))

		return report, nil
	}

	if err := w.writeOutput(ctx, outPath, report.Text); err != nil {
		return m.MergeReport{}, err
	}

	w.DisplayWritten(ctx, report)

	return report, nil
}

func (w *workflow) writeOutput(ctx context.Context, outPath m.Path, text string) error {
	dir := m.Path(filepath.Dir(string(outPath)))

	if err := w.MkdirAll(ctx, dir); err != nil {
		return &FileAccessError{Op: "mkdir", Path: dir, Err: err}
	}

	if err := w.WriteFile(ctx, outPath, []byte(text), 0o644); err != nil {
		return &FileAccessError{Op: "write", Path: outPath, Err: err}
	}

	return nil
}

func unifiedDiff(original, merged, fromFile, toFile string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(merged),
		FromFile: fromFile,
		ToFile:   toFile,
		Context:  3,
	})
	if err != nil {
		return ""
	}

	return diff
}

func shortPaths(files []*SourceFile) []string {
	paths := make([]string, 0, len(files))
	for _, file := range files {
		paths = append(paths, string(file.ShortPath))
	}

	return paths
}
