package main

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/born-ml/numeric/ndarray"
)

// Arguments holds the parsed command line. Exactly one of the command fields
// is set when a command was requested.
type Arguments struct {
	Parallel  ndarray.ParallelConfig
	Verbosity int

	Version *VersionArguments
	Demo    *DemoArguments
	Bench   *BenchArguments
}

// VersionArguments are the arguments of the version command.
type VersionArguments struct{}

// DemoArguments are the arguments of the demo command.
type DemoArguments struct{}

// BenchArguments are the arguments of the bench command.
type BenchArguments struct {
	Iterations int
	Size       int
	NoTable    bool
	Progress   bool
}

// ErrInvalidArgument is returned for flag values outside their valid range.
var ErrInvalidArgument = errors.New("invalid argument")

// ParseArguments parses argv (including the program name).
// Usage and flag errors are printed by the parser.
func ParseArguments(argv []string, appVersion string) (*Arguments, error) {
	var args Arguments
	defaults := ndarray.DefaultParallelConfig()

	app := cli.NewApp()
	app.Name = "ndarray"
	app.Usage = "float64 n-dimensional array engine"
	app.Version = appVersion
	app.UseShortOptionHandling = true

	app.Flags = []cli.Flag{
		cli.IntFlag{Name: "workers", Value: defaults.NumWorkers, Usage: "Worker goroutines for large buffers"},
		cli.IntFlag{Name: "min-chunk", Value: defaults.MinChunkSize, Usage: "Minimum elements per worker"},
		cli.BoolFlag{Name: "no-parallel", Usage: "Run every kernel on the calling goroutine"},
		cli.IntFlag{Name: "verbosity", Value: 0, Usage: "Log verbosity (klog -v)"},
	}

	app.Commands = []cli.Command{
		{
			Name:  "version",
			Usage: "Show version",
			Action: func(c *cli.Context) error {
				args.Version = &VersionArguments{}
				return nil
			},
		},
		{
			Name:  "demo",
			Usage: "Run a short walkthrough of the array operations",
			Action: func(c *cli.Context) error {
				args.Demo = &DemoArguments{}
				return nil
			},
		},
		{
			Name:  "bench",
			Usage: "Time the array operations",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "iterations,n", Value: 1000000, Usage: "Iterations per operation"},
				cli.IntFlag{Name: "size,s", Value: 3, Usage: "Length of the operand vectors"},
				cli.BoolFlag{Name: "noTable", Usage: "Render pure text instead of table"},
				cli.BoolFlag{Name: "progress", Usage: "Show progress on stderr"},
			},
			Action: func(c *cli.Context) error {
				bench := &BenchArguments{
					Iterations: c.Int("iterations"),
					Size:       c.Int("size"),
					NoTable:    c.Bool("noTable"),
					Progress:   c.Bool("progress"),
				}
				if bench.Iterations < 1 {
					return errors.Wrapf(ErrInvalidArgument, "--iterations must be >= 1, got %d", bench.Iterations)
				}
				if bench.Size < 1 {
					return errors.Wrapf(ErrInvalidArgument, "--size must be >= 1, got %d", bench.Size)
				}
				args.Bench = bench
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		args.Parallel = ndarray.ParallelConfig{
			Enabled:      !c.GlobalBool("no-parallel"),
			NumWorkers:   c.GlobalInt("workers"),
			MinChunkSize: c.GlobalInt("min-chunk"),
		}
		args.Verbosity = c.GlobalInt("verbosity")
		if err := args.Parallel.Validate(); err != nil {
			return errors.Wrap(ErrInvalidArgument, err.Error())
		}
		return nil
	}

	err := app.Run(argv)
	return &args, err
}
