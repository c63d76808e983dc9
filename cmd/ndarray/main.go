// Package main provides the ndarray CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/numeric/ndarray"
)

// Injected at build time.
var version = "v0.1.0-dev"

func main() {
	args, err := ParseArguments(os.Args, version)
	if err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer klog.Flush()

	if err := Configure(args); err != nil {
		fmt.Fprintln(os.Stderr, "Error", err)
		os.Exit(2)
	}
	if err := Run(os.Stdout, os.Stderr, args); err != nil {
		fmt.Fprintln(os.Stderr, "Error", err)
		os.Exit(3)
	}
}

// Configure applies the global flags: engine parallelism and log verbosity.
func Configure(args *Arguments) error {
	if err := ndarray.SetParallelConfig(args.Parallel); err != nil {
		return errors.Wrap(err, "parallel flags")
	}
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	return fs.Set("v", strconv.Itoa(args.Verbosity))
}

// Run executes the requested command. Diagnostics such as progress go to stderr.
func Run(stdout, stderr io.Writer, args *Arguments) error {
	switch {
	case args.Version != nil:
		fmt.Fprintf(stdout, "ndarray %s\n", version)
	case args.Demo != nil:
		return RunDemo(stdout, args.Demo)
	case args.Bench != nil:
		klog.V(1).Infof("bench: parallel config %+v", ndarray.GetParallelConfig())
		_, err := RunBench(stdout, stderr, args.Bench)
		return err
	}
	return nil
}
