package render

import (
	_ "embed"
	"fmt"
	"snakerank/stats"
	"strings"

	"github.com/aymerick/raymond"
)

//go:embed readme.hbs
var readmeSource string

var readmeTemplate = raymond.MustParse(readmeSource)

// Input is everything the README is rendered from.
type Input struct {
	Counts    stats.LineCounts
	Ratings   stats.Ratings
	Revision  string
	Signature string
}

type languageView struct {
	Name   string `handlebars:"name"`
	Rating int    `handlebars:"rating"`
	Max    int    `handlebars:"max"`
	Lines  int    `handlebars:"lines"`
}

type readmeView struct {
	Names     string         `handlebars:"names"`
	Languages []languageView `handlebars:"languages"`
	SVG       string         `handlebars:"svg"`
	ASCII     string         `handlebars:"ascii"`
	Revision  string         `handlebars:"revision"`
}

// Readme renders the full document with both visualizations embedded.
func Readme(in Input) (string, error) {
	svg, err := SVG(in.Ratings, in.Signature)
	if err != nil {
		return "", err
	}

	view := readmeView{
		SVG:      strings.TrimSpace(svg),
		ASCII:    strings.TrimRight(ASCII(in.Ratings, in.Signature), "\n"),
		Revision: in.Revision,
	}
	var names []string
	for _, spec := range stats.Languages() {
		names = append(names, spec.Name)
		view.Languages = append(view.Languages, languageView{
			Name:   spec.Name,
			Rating: in.Ratings[spec.Name],
			Max:    stats.MaxRating,
			Lines:  in.Counts[spec.Name],
		})
	}
	view.Names = joinNames(names)

	out, err := readmeTemplate.Exec(view)
	if err != nil {
		return "", fmt.Errorf("failed to render readme: %w", err)
	}
	return out, nil
}

// joinNames lists names in prose: "a", "a and b", "a, b and c".
func joinNames(names []string) string {
	if len(names) <= 1 {
		return strings.Join(names, "")
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}
