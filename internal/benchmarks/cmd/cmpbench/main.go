// cmpbench is a small CLI to manually run the diffing implementations used for benchmarking.
package main

import (
	"flag"
	"fmt"
	"os"

	"znkr.io/textcmp/internal/benchmarks"
)

type config struct {
	lib  string
	gen  string
	x, y string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.lib, "lib", "textcmp", "library to use for diffing")
	flag.StringVar(&cfg.gen, "gen", "", "generate inputs instead of reading files, format <rows>:<changes>")
	flag.Parse()

	if cfg.gen != "" {
		if flag.CommandLine.NArg() != 0 {
			fmt.Fprintf(os.Stderr, "error: usage: cmpbench -gen <rows>:<changes>\n")
			os.Exit(1)
		}
	} else {
		if flag.CommandLine.NArg() != 2 {
			fmt.Fprintf(os.Stderr, "error: usage: cmpbench <x> <y>\n")
			os.Exit(1)
		}
		cfg.x = flag.CommandLine.Arg(0)
		cfg.y = flag.CommandLine.Arg(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	var lib *benchmarks.Impl
	for _, l := range benchmarks.Impls {
		if l.Name == cfg.lib {
			lib = &l
		}
	}
	if lib == nil {
		return fmt.Errorf("lib not found %q", cfg.lib)
	}

	var x, y []byte
	if cfg.gen != "" {
		var rows, changes int
		if _, err := fmt.Sscanf(cfg.gen, "%d:%d", &rows, &changes); err != nil {
			return fmt.Errorf("invalid -gen value %q: %v", cfg.gen, err)
		}
		x, y = benchmarks.GenInputs(cfg.gen, rows, changes, 512)
	} else {
		var err error
		x, err = os.ReadFile(cfg.x)
		if err != nil {
			return err
		}
		y, err = os.ReadFile(cfg.y)
		if err != nil {
			return err
		}
	}

	out := lib.Diff(x, y)
	os.Stdout.Write(out)
	return nil
}
