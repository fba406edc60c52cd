package rank

import (
	"fmt"
	"log"
	"snakerank/git"
	"snakerank/options"
	"snakerank/render"
	"snakerank/scan"
	"snakerank/stats"
	"snakerank/util"
)

// Run scans the tree, rates every tracked language and overwrites the
// output document. Nothing is written unless every step before it succeeded.
func Run(opts *options.Options) error {
	codeStats, err := scan.Tree(opts)
	if err != nil {
		return err
	}

	counts := codeStats.LineCounts()
	ratings := stats.CalculateRatings(counts)
	if counts.Total() == 0 {
		log.Printf("no tracked code found, using fallback ratings")
	}
	for _, spec := range stats.Languages() {
		log.Printf("%v: %v lines in %v files, rated %v/%v",
			spec.Name, counts[spec.Name], codeStats.CountersByLanguage[spec.Name].NumberOfFiles, ratings[spec.Name], stats.MaxRating)
	}

	revision := ""
	if !opts.SkipRevision {
		revision, err = git.HeadRevision(opts.RootPath)
		if err != nil {
			log.Printf("failed to read git revision, document will not be stamped: %v", err)
			revision = ""
		}
	}

	document, err := render.Readme(render.Input{
		Counts:    counts,
		Ratings:   ratings,
		Revision:  revision,
		Signature: opts.Signature,
	})
	if err != nil {
		return err
	}

	err = util.WriteFilePreservePerms(opts.OutputPath, []byte(document))
	if err != nil {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_OUTPUT_NOT_WRITTEN,
			InternalError: fmt.Errorf("failed to write '%v': %w", opts.OutputPath, err),
		}
	}
	return nil
}
