// Package model defines the data structures shared by the merge workflow.
package model

// Path represents a file system path.
type Path string

// Kind classifies a file by its extension.
type Kind int

const (
	// KindOther covers every file that is neither a compilation unit nor a header.
	KindOther Kind = iota
	// KindCompilationUnit represents .c and .cpp files.
	KindCompilationUnit
	// KindHeader represents .h and .hpp files.
	KindHeader
)

func (k Kind) String() string {
	switch k {
	case KindCompilationUnit:
		return "compilation-unit"
	case KindHeader:
		return "header"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// SourceEntity identifies one discovered file. Its fields never change after
// construction; the file contents are cached elsewhere.
type SourceEntity struct {
	FullPath  Path   // resolved absolute location
	ShortPath Path   // path relative to the input root, mirrored under the output root
	Name      string // base name, the include-matching key
	Kind      Kind
}
