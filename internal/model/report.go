package model

// MergeReport describes the outcome of flattening one primary target.
type MergeReport struct {
	Target SourceEntity `yaml:"-"`
	Source Path         `yaml:"source"`
	Output Path         `yaml:"output,omitempty"`
	Text   string       `yaml:"-"`

	// Inlined lists the names expanded into the output, in expansion order.
	Inlined []string `yaml:"inlined,omitempty"`
	// Suppressed lists names whose repeated directive was dropped silently.
	Suppressed []string `yaml:"suppressed,omitempty"`
	// Cycles lists the include chains that were cut, e.g. "a.h -> b.h -> a.h".
	Cycles []string `yaml:"cycles,omitempty"`
	// Unresolved lists names that matched nothing in the candidate pool.
	Unresolved []string `yaml:"unresolved,omitempty"`
}

// Manifest is the persisted summary of one merge run.
type Manifest struct {
	Version int           `yaml:"version"`
	InDir   Path          `yaml:"in_dir"`
	OutDir  Path          `yaml:"out_dir"`
	Targets []MergeReport `yaml:"targets"`
}
