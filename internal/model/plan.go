package model

// Role describes how a candidate file takes part in a merge run.
type Role string

const (
	// RoleTarget marks a compilation unit that gets flattened.
	RoleTarget Role = "target"
	// RoleInlineable marks a pool member that may replace include directives.
	RoleInlineable Role = "inlineable"
	// RoleIgnored marks a file that is neither flattened nor inlined.
	RoleIgnored Role = "ignored"
)

// PlanEntry is one row of a merge plan.
type PlanEntry struct {
	Entity SourceEntity
	Role   Role
}
