package stats

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Language type alias for readability
type Language = string

// LanguageSpec describes one tracked language.
type LanguageSpec struct {
	Name       Language `yaml:"name"`
	Extensions []string `yaml:"extensions"`
	// Fallback is the rating reported when no tracked code exists at all.
	Fallback int    `yaml:"fallback"`
	Color    string `yaml:"color"`
}

//go:embed languages.yaml
var languagesYAML []byte

var (
	languages           []LanguageSpec
	extensionToLanguage = make(map[string]Language)
)

func init() {
	table, err := parseLanguageTable(languagesYAML)
	if err != nil {
		panic(fmt.Sprintf("invalid embedded language table: %v", err))
	}
	languages = table
	for _, spec := range languages {
		for _, extension := range spec.Extensions {
			extensionToLanguage[extension] = spec.Name
		}
	}
}

func parseLanguageTable(data []byte) ([]LanguageSpec, error) {
	var table []LanguageSpec
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, err
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("no languages defined")
	}

	names := make(map[Language]bool, len(table))
	owners := make(map[string]Language)
	for i := range table {
		spec := &table[i]
		if spec.Name == "" {
			return nil, fmt.Errorf("language #%d has no name", i)
		}
		if names[spec.Name] {
			return nil, fmt.Errorf("language %q defined twice", spec.Name)
		}
		names[spec.Name] = true
		if spec.Fallback < 1 || spec.Fallback > 10 {
			return nil, fmt.Errorf("language %q fallback %d is outside [1,10]", spec.Name, spec.Fallback)
		}
		for j, extension := range spec.Extensions {
			extension = strings.ToLower(extension)
			if !strings.HasPrefix(extension, ".") {
				extension = "." + extension
			}
			if owner, taken := owners[extension]; taken {
				return nil, fmt.Errorf("extension %q claimed by both %q and %q", extension, owner, spec.Name)
			}
			owners[extension] = spec.Name
			spec.Extensions[j] = extension
		}
	}
	return table, nil
}

// Languages returns the tracked languages in display order.
func Languages() []LanguageSpec {
	out := make([]LanguageSpec, len(languages))
	for i, spec := range languages {
		spec.Extensions = append([]string(nil), spec.Extensions...)
		out[i] = spec
	}
	return out
}

// GetLanguageFromExtension returns the language for a given file extension.
// The lookup is case-insensitive and accepts the extension with or without the leading dot.
// Returns the language name and true if found, or empty string and false if not recognized.
func GetLanguageFromExtension(ext string) (Language, bool) {
	if len(ext) == 0 {
		return "", false
	}
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	language, found := extensionToLanguage[ext]
	return language, found
}
