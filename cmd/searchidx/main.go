package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/searchidx/internal/config"
	"github.com/standardbeagle/searchidx/internal/debug"
	"github.com/standardbeagle/searchidx/internal/errors"
	"github.com/standardbeagle/searchidx/internal/indexing"
	"github.com/standardbeagle/searchidx/internal/persistence"
	"github.com/standardbeagle/searchidx/internal/query"
	"github.com/standardbeagle/searchidx/internal/version"
	"github.com/standardbeagle/searchidx/pkg/fmtutil"
)

var cleanupFuncs []func()

func main() {
	app := &cli.App{
		Name:                   "searchidx",
		Usage:                  "inverted-index search over a source tree",
		Version:                version.Version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   ".searchidx.kdl",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Write debug logging to a temp file",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("debug") {
				path, err := debug.InitDebugLogFile()
				if err != nil {
					return err
				}
				fmt.Fprintf(os.Stderr, "debug log: %s\n", path)
				cleanupFuncs = append(cleanupFuncs, func() { debug.CloseDebugLog() })
			}
			return nil
		},
		Commands: []*cli.Command{
			indexCommand(),
			queryCommand(),
			statsCommand(),
			globCommand(),
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := app.RunContext(ctx, os.Args)
	for _, fn := range cleanupFuncs {
		fn()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func indexCommand() *cli.Command {
	return &cli.Command{
		Name:  "index",
		Usage: "Build an index for a directory tree",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "root", Aliases: []string{"r"}, Usage: "Root directory to index", Value: "."},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Output base path", Value: "index"},
			&cli.StringSliceFlag{Name: "ext", Usage: "Allowed extensions (e.g. --ext .go --ext .rs)"},
			&cli.StringSliceFlag{Name: "exclude", Aliases: []string{"x"}, Usage: "Additional exclude glob patterns"},
		},
		Action: func(c *cli.Context) error {
			root := c.String("root")
			cfg, err := config.Load(root)
			if err != nil {
				return err
			}
			cfg.Root = root
			if exts := c.StringSlice("ext"); len(exts) > 0 {
				cfg.Extensions = exts
			}
			if exclude := c.StringSlice("exclude"); len(exclude) > 0 {
				cfg.Exclude = append(cfg.Exclude, exclude...)
			}

			res, err := indexing.Build(c.Context, cfg)
			if err != nil {
				return err
			}

			base := c.String("out")
			if err := persistence.SaveAll(base, res); err != nil {
				return err
			}

			fmt.Printf("Indexed %s files across %s directories\n",
				fmtutil.Num(res.FileCount), fmtutil.Num(res.Paths.DirectoryCount()))
			return nil
		},
	}
}

func queryCommand() *cli.Command {
	return &cli.Command{
		Name:    "query",
		Aliases: []string{"q"},
		Usage:   "Run a query against a built index",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "index", Aliases: []string{"i"}, Usage: "Index base path", Value: "index"},
			&cli.BoolFlag{Name: "fuzzy", Aliases: []string{"f"}, Usage: "Use trigram fuzzy search instead of exact"},
			&cli.BoolFlag{Name: "word", Aliases: []string{"w"}, Usage: "Use the legacy word-tokenized query against a TKIX index"},
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "Require path to contain substring"},
			&cli.StringSliceFlag{Name: "glob", Aliases: []string{"g"}, Usage: "Require filename to match glob"},
			&cli.StringFlag{Name: "exclude", Aliases: []string{"x"}, Usage: "Exclude paths containing substring"},
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Usage: "Max results (0 = unlimited)"},
			&cli.BoolFlag{Name: "or", Aliases: []string{"o"}, Usage: "OR tokens together instead of AND"},
			&cli.BoolFlag{Name: "mmap", Usage: "Load the index via memory map instead of buffered reads"},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() == 0 {
				return errors.New(errors.KindMissingQueryMode, "query text is required")
			}
			q := strings.Join(c.Args().Slice(), " ")

			idx, err := loadIndex(c.String("index"), c.Bool("mmap"))
			if err != nil {
				return err
			}

			opts := query.Options{
				MatchAll:     !c.Bool("or"),
				Limit:        c.Int("limit"),
				PathContains: c.String("path"),
				GlobPatterns: c.StringSlice("glob"),
				Exclude:      c.String("exclude"),
			}

			if c.Bool("fuzzy") && c.Bool("word") {
				return errors.New(errors.KindMissingQueryMode, "--fuzzy and --word are mutually exclusive")
			}

			var res query.Result
			switch {
			case c.Bool("word"):
				if idx.Legacy == nil {
					return errors.New(errors.KindMissingQueryMode, "word search requires a legacy TKIX index")
				}
				res, err = query.Word(idx.Paths, idx.Legacy, q, opts)
			case c.Bool("fuzzy"):
				if idx.Trigram == nil {
					return errors.New(errors.KindMissingQueryMode, "fuzzy search is unavailable against a legacy TKIX index")
				}
				res, err = query.Fuzzy(idx.Paths, idx.Trigram, q, opts)
			default:
				if idx.Exact == nil {
					return errors.New(errors.KindMissingQueryMode, "exact search is unavailable against a legacy TKIX index; use --word instead")
				}
				res, err = query.Exact(idx.Paths, idx.Exact, q, opts)
			}
			if err != nil {
				return err
			}

			for _, p := range res.Files {
				fmt.Println(p)
			}
			fmt.Fprintf(os.Stderr, "%s/%s tokens matched, %s files\n",
				fmtutil.Num(res.MatchedTokenCount), fmtutil.Num(res.QueryTokenCount), fmtutil.Num(len(res.Files)))
			return nil
		},
	}
}

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Print summary statistics for a built index",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "index", Aliases: []string{"i"}, Usage: "Index base path", Value: "index"},
		},
		Action: func(c *cli.Context) error {
			stats, err := persistence.Stats(c.String("index"))
			if err != nil {
				return err
			}
			fmt.Printf("files:       %s\n", fmtutil.Num(stats.FileCount))
			fmt.Printf("directories: %s\n", fmtutil.Num(stats.DirectoryCount))
			fmt.Printf("exact keys:  %s\n", fmtutil.Num(stats.ExactKeys))
			fmt.Printf("lower keys:  %s\n", fmtutil.Num(stats.ExactLowerKeys))
			fmt.Printf("trigrams:    %s\n", fmtutil.Num(stats.TrigramKeys))
			return nil
		},
	}
}

func globCommand() *cli.Command {
	return &cli.Command{
		Name:  "glob",
		Usage: "List registered files matching a glob pattern",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "index", Aliases: []string{"i"}, Usage: "Index base path", Value: "index"},
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "Require path to contain substring"},
			&cli.StringFlag{Name: "exclude", Aliases: []string{"x"}, Usage: "Exclude paths containing substring"},
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Usage: "Max results (0 = unlimited)"},
			&cli.BoolFlag{Name: "mmap", Usage: "Load the index via memory map instead of buffered reads"},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return errors.New(errors.KindInvalidPattern, "glob requires exactly one pattern argument")
			}
			idx, err := loadIndex(c.String("index"), c.Bool("mmap"))
			if err != nil {
				return err
			}

			res, err := query.GlobFiles(idx.Paths, c.Args().First(), query.Options{
				PathContains: c.String("path"),
				Exclude:      c.String("exclude"),
				Limit:        c.Int("limit"),
			})
			if err != nil {
				return err
			}
			for _, p := range res.Files {
				fmt.Println(p)
			}
			fmt.Fprintf(os.Stderr, "%s/%s files scanned\n", fmtutil.Num(len(res.Files)), fmtutil.Num(res.Scanned))
			return nil
		},
	}
}

// loadIndex routes to the split four-file format, falling back to the
// legacy single-file TKIX format when only it is present -- per
// spec.md §4.4's compatibility-path requirement.
func loadIndex(base string, useMmap bool) (*persistence.Index, error) {
	if persistence.LegacyExists(base) {
		if _, err := os.Stat(base + ".paths"); err != nil {
			return persistence.LoadLegacy(base)
		}
	}
	if useMmap {
		return persistence.LoadAllMmap(base)
	}
	return persistence.LoadAll(base)
}
