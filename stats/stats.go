package stats

// LineCounts maps every tracked language to its number of non-blank lines.
type LineCounts map[Language]int

// NewLineCounts returns counts with a zero entry for every tracked language.
func NewLineCounts() LineCounts {
	counts := make(LineCounts, len(languages))
	for _, spec := range languages {
		counts[spec.Name] = 0
	}
	return counts
}

// Total sums the counts of tracked languages.
func (c LineCounts) Total() int {
	total := 0
	for _, spec := range languages {
		total += c[spec.Name]
	}
	return total
}

// CodeStats accumulates scan results for a single run
type CodeStats struct {
	CountersByLanguage map[Language]*LanguageStats
	TotalFileCount     int
	SkippedFiles       []string
}

// LanguageStats represents statistics for a specific language
type LanguageStats struct {
	NumberOfFiles int
	LinesOfCode   int
}

// NewCodeStats creates a CodeStats with a zeroed bucket for every tracked language
func NewCodeStats() *CodeStats {
	cs := &CodeStats{
		CountersByLanguage: make(map[Language]*LanguageStats, len(languages)),
	}
	for _, spec := range languages {
		cs.CountersByLanguage[spec.Name] = &LanguageStats{}
	}
	return cs
}

// AddFile adds a file's line count to the appropriate language bucket
func (cs *CodeStats) AddFile(language Language, linesOfCode int) {
	cs.TotalFileCount++

	if _, exists := cs.CountersByLanguage[language]; !exists {
		cs.CountersByLanguage[language] = &LanguageStats{}
	}

	cs.CountersByLanguage[language].NumberOfFiles++
	cs.CountersByLanguage[language].LinesOfCode += linesOfCode
}

// Skip records a file that was left out of the counts
func (cs *CodeStats) Skip(path string) {
	cs.SkippedFiles = append(cs.SkippedFiles, path)
}

// LineCounts projects the accumulated stats onto the tracked languages
func (cs *CodeStats) LineCounts() LineCounts {
	counts := NewLineCounts()
	for language := range counts {
		if langStats, ok := cs.CountersByLanguage[language]; ok {
			counts[language] = langStats.LinesOfCode
		}
	}
	return counts
}
