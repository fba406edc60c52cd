package options

import (
	"fmt"
	"os"
	"path/filepath"
	"snakerank/util"
	"strings"

	"github.com/urfave/cli/v2"
)

var Flags = []cli.Flag{
	&cli.StringFlag{
		Name:     "root",
		Aliases:  []string{"r"},
		Value:    ".",
		Usage:    "root of the source tree to scan, directories starting with a dot are never entered",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "out",
		Aliases:  []string{"o"},
		Value:    "README.md",
		Usage:    "path of the generated document, overwritten on every run",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "exclude",
		Aliases:  []string{"e"},
		Value:    "",
		Usage:    "patterns of file paths to exclude, comma delimited, may contain any glob pattern",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "skip-unreadable",
		Value:    false,
		Usage:    "skip binary or undecodable files instead of failing the run",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "signature",
		Value:    "",
		Usage:    "signature line rendered under the animation and the ASCII chart",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "no-revision",
		Value:    false,
		Usage:    "don't stamp the document with the current git commit",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "verbose",
		Aliases:  []string{"vv"},
		Value:    false,
		Usage:    "verbose logging",
		Required: false,
	},
}

type Options struct {
	RootPath        string
	OutputPath      string
	ExcludePatterns []string
	SkipUnreadable  bool
	Signature       string
	SkipRevision    bool
	VerboseLogging  bool
}

func splitListFlag(flag string) []string {
	if len(flag) == 0 {
		return []string{}
	}
	var items []string
	for _, item := range strings.Split(flag, ",") {
		item = strings.TrimSpace(item)
		if len(item) > 0 {
			items = append(items, item)
		}
	}
	return items
}

func validateDirectory(dirPath string) error {
	info, err := os.Stat(dirPath)
	if os.IsNotExist(err) {
		return fmt.Errorf("directory does not exist at %v", dirPath)
	}
	if err != nil {
		return fmt.Errorf("directory error at %v: %w", dirPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("directory is actually a file at %v", dirPath)
	}
	return nil
}

func validateOutputFile(filePath string) error {
	if err := validateDirectory(filepath.Dir(filePath)); err != nil {
		return err
	}
	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("file error at %v: %w", filePath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("output is actually a directory at %v", filePath)
	}
	return nil
}

func ParseOptions(c *cli.Context) (*Options, error) {
	opts := &Options{
		RootPath:        c.String("root"),
		OutputPath:      c.String("out"),
		ExcludePatterns: splitListFlag(c.String("exclude")),
		SkipUnreadable:  c.Bool("skip-unreadable"),
		Signature:       strings.TrimSpace(c.String("signature")),
		SkipRevision:    c.Bool("no-revision"),
		VerboseLogging:  c.Bool("verbose"),
	}

	err := validateDirectory(opts.RootPath)
	if err != nil {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_ROOT_PATH,
			InternalError: fmt.Errorf("root at '%v' is missing or invalid: %w", opts.RootPath, err),
		}
	}

	err = validateOutputFile(opts.OutputPath)
	if err != nil {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_OUTPUT_PATH,
			InternalError: fmt.Errorf("output at '%v' is invalid: %w", opts.OutputPath, err),
		}
	}

	return opts, nil
}
