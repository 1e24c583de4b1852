package model

// IncludeDirective is one include occurrence found in a file.
type IncludeDirective struct {
	// LiteralText is the exact matched substring, trailing newline included.
	LiteralText string
	// TargetName is the bare base name of the referenced file.
	TargetName string
}
