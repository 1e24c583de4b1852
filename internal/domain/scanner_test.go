package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanDirectives(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		literals []string
		targets  []string
	}{
		{"no directives", "int main() { return 0; }\n", nil, nil},
		{"quoted", "#include \"util.h\"\nint x;\n", []string{"#include \"util.h\"\n"}, []string{"util.h"}},
		{"angle brackets", "#include <vector>\n", []string{"#include <vector>\n"}, []string{"vector"}},
		{"no space after keyword", "#include<a.hpp>\n", []string{"#include<a.hpp>\n"}, []string{"a.hpp"}},
		{"path is stripped", "#include \"lib/detail/impl.h\"\n", []string{"#include \"lib/detail/impl.h\"\n"}, []string{"impl.h"}},
		{"trailing blank lines are consumed", "#include \"a.h\"\n\n\nint x;\n", []string{"#include \"a.h\"\n\n\n"}, []string{"a.h"}},
		{"trailing spaces before newline", "#include \"a.h\"   \nx\n", []string{"#include \"a.h\"   \n"}, []string{"a.h"}},
		{"missing final newline is not a directive", "#include \"a.h\"", nil, nil},
		{"unsupported characters", "#include \"my-file.h\"\n", nil, nil},
		{"unicode name", "#include \"café.h\"\n", []string{"#include \"café.h\"\n"}, []string{"café.h"}},
		{"vertical tab before newline", "#include \"a.h\"\v\nx\n", []string{"#include \"a.h\"\v\n"}, []string{"a.h"}},
		{"non-breaking space after keyword", "#include\u00a0\"a.h\"\n", []string{"#include\u00a0\"a.h\"\n"}, []string{"a.h"}},
		{
			"keeps source order",
			"#include \"b.h\"\n#include <a.h>\n#include \"b.h\"\n",
			[]string{"#include \"b.h\"\n", "#include <a.h>\n", "#include \"b.h\"\n"},
			[]string{"b.h", "a.h", "b.h"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScanDirectives(tt.text)
			require.Len(t, got, len(tt.literals))

			for i, directive := range got {
				assert.Equal(t, tt.literals[i], directive.LiteralText)
				assert.Equal(t, tt.targets[i], directive.TargetName)
				assert.Contains(t, tt.text, directive.LiteralText)
			}
		})
	}
}

func TestScanDirectives_NonOverlapping(t *testing.T) {
	text := "a\n#include \"x.h\"\n#include \"y.h\"\n"

	got := ScanDirectives(text)
	require.Len(t, got, 2)

	assert.Equal(t, "#include \"x.h\"\n", got[0].LiteralText)
	assert.Equal(t, "#include \"y.h\"\n", got[1].LiteralText)
	assert.Equal(t, "a\n"+got[0].LiteralText+got[1].LiteralText, text)
}
