package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLanguageFromExtension(t *testing.T) {
	tests := []struct {
		name      string
		extension string
		wantLang  Language
		wantFound bool
	}{
		// Lua
		{"lua file", ".lua", "Lua", true},
		{"lua file no dot", "lua", "Lua", true},
		{"lua upper case", ".LUA", "Lua", true},

		// C++
		{"cpp file", ".cpp", "C++", true},
		{"cc file", ".cc", "C++", true},
		{"cxx file", ".cxx", "C++", true},
		{"hpp file", ".hpp", "C++", true},
		{"h file", ".h", "C++", true},
		{"mixed case header", ".Hpp", "C++", true},

		// C#
		{"csharp file", ".cs", "C#", true},

		// Unknown extensions
		{"c file", ".c", "", false},
		{"go file", ".go", "", false},
		{"cshtml file", ".cshtml", "", false},
		{"md file", ".md", "", false},
		{"empty extension", "", "", false},
		{"dot only", ".", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotLang, gotFound := GetLanguageFromExtension(tt.extension)
			assert.Equal(t, tt.wantLang, gotLang, "language mismatch for %s", tt.extension)
			assert.Equal(t, tt.wantFound, gotFound, "found mismatch for %s", tt.extension)
		})
	}
}

func TestLanguagesOrderAndFallbacks(t *testing.T) {
	langs := Languages()
	require.Len(t, langs, 3)

	assert.Equal(t, "Lua", langs[0].Name)
	assert.Equal(t, "C++", langs[1].Name)
	assert.Equal(t, "C#", langs[2].Name)

	assert.Equal(t, 7, langs[0].Fallback)
	assert.Equal(t, 8, langs[1].Fallback)
	assert.Equal(t, 9, langs[2].Fallback)

	assert.Equal(t, []string{".cpp", ".cc", ".cxx", ".hpp", ".h"}, langs[1].Extensions)
}

func TestLanguagesReturnsCopy(t *testing.T) {
	langs := Languages()
	langs[0].Name = "Mutated"
	langs[1].Extensions[0] = ".mutated"

	fresh := Languages()
	assert.Equal(t, "Lua", fresh[0].Name)
	assert.Equal(t, ".cpp", fresh[1].Extensions[0])
}

func TestParseLanguageTable(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"valid", "- {name: Go, extensions: [GO, .mod], fallback: 5}", ""},
		{"empty", "[]", "no languages"},
		{"missing name", "- {extensions: [.go], fallback: 5}", "has no name"},
		{"duplicate name", "- {name: Go, fallback: 5}\n- {name: Go, fallback: 5}", "defined twice"},
		{"overlapping extension", "- {name: A, extensions: [.x], fallback: 5}\n- {name: B, extensions: [.X], fallback: 5}", "claimed by both"},
		{"fallback too low", "- {name: Go, extensions: [.go], fallback: 0}", "outside [1,10]"},
		{"fallback too high", "- {name: Go, extensions: [.go], fallback: 11}", "outside [1,10]"},
		{"not yaml list", "name: Go", "cannot unmarshal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := parseLanguageTable([]byte(tt.yaml))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, table, 1)
			assert.Equal(t, []string{".go", ".mod"}, table[0].Extensions)
		})
	}
}
