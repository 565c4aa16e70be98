package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Command names.
const (
	cmdFetch = "fetch"
	cmdHelp  = "help"
)

func main() {
	_ = godotenv.Load()
	log := newLogger()
	if err := run(context.Background(), log, os.Args[1:]); err != nil {
		log.err(err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger, args []string) error {
	if len(args) == 0 {
		return runFetch(ctx, log, nil)
	}

	switch args[0] {
	case cmdHelp, "-h", "--help":
		printUsage(os.Stdout)
		return nil
	case cmdFetch:
		return runFetch(ctx, log, args[1:])
	default:
		if len(args[0]) > 0 && args[0][0] == '-' {
			return runFetch(ctx, log, args)
		}
		printUsage(os.Stderr)
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func printUsage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "aocdown: download Advent of Code puzzle input")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Usage:")
	_, _ = fmt.Fprintln(w, "  aocdown [fetch] [--config PATH] [--dir PATH] [--year N] [--day N] [--scaffold] [--verbose]")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Options:")
	_, _ = fmt.Fprintln(w, "  --config    Path to the config file (default: .aocdown)")
	_, _ = fmt.Fprintln(w, "  --dir       Directory that receives {year}/{day} (default: .)")
	_, _ = fmt.Fprintln(w, "  --year      Puzzle year, overrides config")
	_, _ = fmt.Fprintln(w, "  --day       Puzzle day, overrides config")
	_, _ = fmt.Fprintln(w, "  --scaffold  Create a starter project, overrides config")
	_, _ = fmt.Fprintln(w, "  --verbose   Log progress to stderr")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Environment:")
	_, _ = fmt.Fprintln(w, "  AOCDOWN_CONFIG  Config file path")
	_, _ = fmt.Fprintln(w, "  NO_COLOR        Disable colored output")
}

// fetchOptions carries everything one fetch run depends on.
type fetchOptions struct {
	configPath string
	root       string
	year       *int
	day        *int
	scaffold   *bool
	now        func() time.Time
	runCmd     commandRunner
}

func runFetch(ctx context.Context, log *logger, args []string) error {
	fs := flag.NewFlagSet(cmdFetch, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		cfgFlag  string
		root     string
		year     int
		day      int
		scaffold bool
		verbose  bool
	)
	fs.StringVar(&cfgFlag, "config", "", "config path")
	fs.StringVar(&root, "dir", ".", "output root directory")
	fs.IntVar(&year, "year", 0, "puzzle year")
	fs.IntVar(&day, "day", 0, "puzzle day")
	fs.BoolVar(&scaffold, "scaffold", false, "create a starter project")
	fs.BoolVar(&verbose, "verbose", false, "log progress")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(os.Stdout)
			return nil
		}
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}
	log.setVerbose(verbose)

	opts := fetchOptions{
		configPath: configPath(cfgFlag),
		root:       root,
		now:        time.Now,
		runCmd:     execRunner,
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "year":
			opts.year = &year
		case "day":
			opts.day = &day
		case "scaffold":
			opts.scaffold = &scaffold
		}
	})
	return fetchDay(ctx, log, opts)
}

// fetchDay runs the whole pipeline once: load config, resolve the date,
// download, write input.txt and optionally scaffold.
func fetchDay(ctx context.Context, log *logger, opts fetchOptions) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.year != nil {
		cfg.Year = opts.year
	}
	if opts.day != nil {
		cfg.Day = opts.day
	}
	if opts.scaffold != nil {
		cfg.InitScaffold = opts.scaffold
	}

	now := time.Now
	if opts.now != nil {
		now = opts.now
	}
	date := resolveDate(cfg, now())
	if !date.inRange() {
		log.warnf("day %d is outside puzzle days %d-%d", date.Day, firstPuzzleDay, lastPuzzleDay)
	}

	client, err := newInputClient(cfg)
	if err != nil {
		return err
	}
	log.debugf("fetching: %s", client.inputURL(date))
	body, err := client.fetchInput(ctx, date)
	if err != nil {
		if isAuthError(err) {
			log.warn("the site rejected the session cookie, update session_cookie in the config")
		}
		return fmt.Errorf("fetch %d day %d: %w", date.Year, date.Day, err)
	}

	path, err := writeInput(opts.root, date, body)
	if err != nil {
		return err
	}
	log.debugf("saved: %s (%d bytes)", path, len(body))

	if !cfg.scaffoldEnabled() {
		return nil
	}
	s := newScaffolder(opts.root, cfg.ScaffoldCommand, opts.runCmd)
	if err := s.scaffold(ctx, date); err != nil {
		var ce *scaffoldCommandError
		if !errors.As(err, &ce) {
			return err
		}
		// The init command's outcome does not fail the run.
		log.warnf("scaffold command failed, template written anyway: %s", ce.Error())
	}
	log.debugf("scaffolded: %s", date.dir())
	return nil
}
