package domain

import (
	"path"
	"regexp"

	m "cmerge.dev/pkg/cmerge/internal/model"
)

// includePattern matches an include directive up to and including the
// whitespace run that ends with its newline. Word characters and whitespace
// are Unicode aware: RE2's \w and \s only cover ASCII.
var includePattern = regexp.MustCompile(
	`#include` + space + `*[<"]([\p{L}\p{N}_/.]+)[>"]` + space + `*\n`,
)

// space is any Unicode whitespace character, including \v and the
// information separators U+001C..U+001F.
const space = `[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]`

// ScanDirectives returns every include directive in text, in source order.
// Matches never overlap: each search resumes where the previous match ended.
func ScanDirectives(text string) []m.IncludeDirective {
	matches := includePattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	directives := make([]m.IncludeDirective, 0, len(matches))

	for _, match := range matches {
		directives = append(directives, m.IncludeDirective{
			LiteralText: match[0],
			TargetName:  path.Base(match[1]),
		})
	}

	return directives
}
