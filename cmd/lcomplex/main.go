package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jjvbsag/lcomplex"
	"go.uber.org/zap"
)

type chunks []string

func (c *chunks) String() string     { return fmt.Sprint(*c) }
func (c *chunks) Set(s string) error { *c = append(*c, s); return nil }

func main() {
	var (
		exprs       chunks
		configFile  = flag.String("config", "", "YAML options file")
		interactive = flag.Bool("i", false, "Enter interactive mode after running scripts")
		verbose     = flag.Bool("v", false, "Debug logging to stderr")
	)
	flag.Var(&exprs, "e", "Lua chunk to run (repeatable)")
	flag.Parse()

	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer l.Sync()
		lcomplex.SetLogger(l)
	}

	opts := lcomplex.DefaultOptions()
	if *configFile != "" {
		var err error
		opts, err = lcomplex.LoadOptions(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := run(opts, exprs, flag.Args(), *interactive); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts lcomplex.Options, exprs []string, scripts []string, interactive bool) error {
	L := lcomplex.NewState(opts)
	defer L.Close()

	for _, e := range exprs {
		if err := L.DoString(e); err != nil {
			return fmt.Errorf("-e: %w", err)
		}
	}
	for _, fn := range scripts {
		if err := L.DoFile(fn); err != nil {
			return fmt.Errorf("%s: %w", fn, err)
		}
	}
	if interactive || (len(exprs) == 0 && len(scripts) == 0) {
		return repl(L)
	}
	return nil
}
