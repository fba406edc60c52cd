package main

import (
	"errors"
	"log"
	"os"
	"snakerank/options"
	"snakerank/rank"
	"snakerank/util"

	"github.com/urfave/cli/v2"
)

const VERSION = "1.0.0"

func main() {
	cli.AppHelpTemplate =
		`NAME:
   snake-rank - 1.0.0 - Rate the languages of a source tree by non-blank line count and render them into a README.

USAGE:
   snake-rank        [optional flags]

OPTIONS:
   --root value, -r value     root of the source tree to scan, directories starting with a dot are never entered (default: ".")
   --out value, -o value      path of the generated document, overwritten on every run (default: "README.md")
   --exclude value, -e value  patterns of file paths to exclude, comma delimited, may contain any glob pattern
   --skip-unreadable          skip binary or undecodable files instead of failing the run (default: false)
   --signature value          signature line rendered under the animation and the ASCII chart
   --no-revision              don't stamp the document with the current git commit (default: false)
   --verbose, --vv            verbose logging (default: false)
   --help, -h                 show help (default: false)
   --version, -v              print the version (default: false)

EXIT CODES:
  0    Success
  201  Root path is invalid
  202  Output path is invalid
  203  Source tree could not be scanned
  204  A tracked file is not readable as text
  205  Output document could not be written
  1    Any other error
`

	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
	app := &cli.App{
		Name:    "snake-rank",
		Usage:   "Rate the languages of a source tree by non-blank line count and render them into a README.",
		Flags:   options.Flags,
		Version: VERSION,
		Action: func(ctx *cli.Context) error {
			opts, err := options.ParseOptions(ctx)
			if err != nil {
				return err
			}
			err = rank.Run(opts)
			if err == nil {
				log.Printf("Completed successfully at %v", opts.OutputPath)
			}
			return err
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Printf("failed: %v", err)
		var errorWithCode *util.ErrorWithCode
		if errors.As(err, &errorWithCode) {
			os.Exit(errorWithCode.StatusCode)
		}
		os.Exit(1)
	}
}
