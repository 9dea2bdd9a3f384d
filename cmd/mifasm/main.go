// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command mifasm assembles a MIPS assembly source file into a memory
// initialization file.
//
//	mifasm [-config FILE] [-o FILE] [-l] [-v] <input.txt>
//
// The output is written next to the input, with the extension replaced
// by `.mif`, unless -o names another file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/k0kubun/pp/v3"

	"github.com/ezrec/mifasm/assembler"
	"github.com/ezrec/mifasm/config"
	"github.com/ezrec/mifasm/mif"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("mifasm: ")

	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the command, and returns the process exit status.
func run(args []string, stdout io.Writer, stderr io.Writer) int {
	var configFile string
	var output string
	var listing bool
	var verbose bool

	name := args[0]
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&configFile, "config", "", "Settings script (default "+config.DEFAULT_FILE+" next to the input)")
	flags.StringVar(&output, "o", "", "Output file (default input with a "+mif.EXTENSION+" extension)")
	flags.BoolVar(&listing, "l", false, "Print a listing to stdout")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")
	flags.Usage = func() {
		fmt.Fprintln(stderr, f("Usage: %v <input.txt>", name))
		flags.PrintDefaults()
	}

	err := flags.Parse(args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if flags.NArg() != 1 {
		flags.Usage()
		return 1
	}

	input := flags.Arg(0)
	color := isTerminal(stderr)
	rep := &reporter{w: stderr, color: color}

	failed := func() int {
		fmt.Fprintln(stderr, f("Assembly failed."))
		return 1
	}

	cfg := config.Default()
	cfg.Verbose = verbose
	if len(configFile) == 0 {
		configFile = config.Find(input)
	}
	if len(configFile) != 0 {
		err = cfg.LoadFile(configFile)
		if err != nil {
			rep.error(fmt.Errorf("%v: %w", configFile, err))
			return failed()
		}
	}

	asm := &assembler.Assembler{Verbose: verbose}
	prog, err := asm.ParseFile(input)

	if verbose {
		printer := pp.New()
		printer.SetOutput(stderr)
		printer.SetColoringEnabled(color)
		printer.Println(asm.Lines)
		printer.Println(asm.Label)
	}

	rep.diagnostics(&asm.Diagnostics)
	if err != nil {
		if verbose {
			log.Printf("%v: %v", input, err)
		}
		return failed()
	}

	if listing {
		err = prog.Listing(stdout)
		if err != nil {
			rep.error(err)
			return failed()
		}
	}

	img := cfg.Image()
	for _, ei := range prog.Instructions {
		img.Add(uint32(ei.Word), ei.Text)
	}
	if verbose && img.Truncated() > 0 {
		log.Printf("%v: %d words past depth %d dropped", input, img.Truncated(), img.Depth)
	}

	if len(output) == 0 {
		output = cfg.OutputName(input)
	}

	err = img.Marshal(mif.DirFS("."), output)
	if err != nil {
		rep.error(err)
		return failed()
	}

	fmt.Fprintln(stdout, f("Assembly complete: %d instructions written to %v", len(prog.Instructions), output))

	return 0
}
