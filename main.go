package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"
	"zombiezen.com/go/log"
)

const programName = "vectordeque"

func main() {
	flagSet := flag.NewFlagSet(programName, flag.ContinueOnError)
	flagSet.Usage = func() {
		fmt.Fprintf(flagSet.Output(), "usage: %s [options] SCRIPT [...]\n", programName)
		flagSet.PrintDefaults()
	}
	var cfg configuration
	flagSet.IntVar(&cfg.jobs, "jobs", runtime.GOMAXPROCS(0), "maximum `number` of scripts to replay at once")
	debug := flagSet.Bool("debug", false, "show debugging output")

	const exitUsage = 64
	if err := flagSet.Parse(os.Args[1:]); err == flag.ErrHelp {
		os.Exit(exitUsage)
	} else if err != nil {
		os.Exit(1)
	}

	const baseLogFlags = log.ShowDate | log.ShowTime
	if *debug {
		log.SetDefault(&log.LevelFilter{
			Min:    log.Debug,
			Output: log.New(os.Stderr, "", baseLogFlags|log.ShowLevel, nil),
		})
	} else {
		log.SetDefault(&log.LevelFilter{
			Min:    log.Info,
			Output: log.New(os.Stderr, "", baseLogFlags, nil),
		})
	}

	ctx, cancel := signal.NotifyContext(context.Background(), unix.SIGINT, unix.SIGTERM)
	if flagSet.NArg() == 0 {
		log.Errorf(ctx, "No script files given")
		flagSet.PrintDefaults()
		os.Exit(exitUsage)
	}
	if cfg.jobs < 1 {
		log.Errorf(ctx, "-jobs must be at least 1 (got %d)", cfg.jobs)
		os.Exit(exitUsage)
	}
	if err := cfg.loadScripts(flagSet.Args()); err != nil {
		log.Errorf(ctx, "%v", err)
		os.Exit(1)
	}

	err := run(ctx, &cfg)
	cancel()
	if err != nil {
		log.Errorf(ctx, "%v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *configuration) error {
	if len(cfg.scripts) == 0 {
		return fmt.Errorf("no deque sections in scripts")
	}
	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(max(cfg.jobs, 1))
	for _, s := range cfg.scripts {
		grp.Go(func() error {
			_, err := runScript(grpCtx, s)
			return err
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}
	log.Infof(ctx, "Replayed %d scripts", len(cfg.scripts))
	return nil
}
