package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"graphics/app"
	"graphics/hal"
	"graphics/internal/buildinfo"
	"graphics/routines"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <name> [width] [height]\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	var (
		cfg      app.Config
		headless hal.HeadlessConfig
		useHL    bool
		list     bool
		version  bool
		verbose  bool
	)
	flag.StringVar(&cfg.Title, "title", app.DefaultTitle, "Window title.")
	flag.IntVar(&cfg.TPS, "tps", hal.DefaultTPS, "Frames presented per second.")
	flag.BoolVar(&useHL, "headless", false, "Run the display loop without a window.")
	flag.IntVar(&headless.Hz, "hz", 0, "Tick rate in headless mode (0 = -tps).")
	flag.Uint64Var(&headless.Frames, "frames", 0, "Exit after N frames in headless mode (0 = run until interrupted).")
	flag.BoolVar(&list, "list", false, "List routine names and exit.")
	flag.BoolVar(&version, "version", false, "Print version and exit.")
	flag.BoolVar(&verbose, "v", false, "Log lifecycle events to stdout.")
	flag.Usage = usage
	flag.Parse()

	if version {
		fmt.Println("graphics", buildinfo.Long())
		return
	}

	reg := routines.Default()
	if list {
		for _, name := range reg.Names() {
			fmt.Println(name)
		}
		return
	}

	args := flag.Args()
	if len(args) < 1 || len(args) > 3 {
		usage()
		os.Exit(2)
	}
	cfg.Name = args[0]
	cfg.Width = app.DefaultWidth
	cfg.Height = app.DefaultHeight
	for i, dst := range []*int{&cfg.Width, &cfg.Height} {
		if len(args) <= i+1 {
			break
		}
		n, err := strconv.Atoi(args[i+1])
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "invalid size %q: must be a positive integer\n", args[i+1])
			os.Exit(2)
		}
		*dst = n
	}

	var logger hal.Logger = hal.NopLogger{}
	if verbose {
		logger = hal.NewLogger(os.Stdout)
		hal.Logf(logger, "graphics %s", buildinfo.Short())
	}

	var backend hal.Backend
	if useHL {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		backend = hal.NewHeadlessBackend(ctx, headless, logger)
	} else {
		backend = hal.NewWindowBackend(logger)
	}

	if err := app.Run(cfg, backend, reg, logger, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
