// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command qmdd builds the QMDD for a reversible or quantum circuit described
// in the ".tfc" dialect and writes it on the standard output in Graphviz DOT
// format. The command takes the input file path as its single positional
// argument and exits with a nonzero status on any failure.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dalzilio/qmdd"
	"github.com/rs/zerolog"
)

func main() {
	var trace = flag.Bool("trace", false, "log every gate before it is composed")
	var stats = flag.Bool("stats", false, "report table and cache usage on stderr")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [options] <input>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if *trace {
		qmdd.SetLogger(qmdd.Logger().Level(zerolog.DebugLevel))
	}
	log := qmdd.Logger()

	infile := flag.Arg(0)
	f, err := os.Open(infile)
	if err != nil {
		log.Error().Err(err).Str("file", infile).Msg("cannot open input")
		os.Exit(1)
	}
	defer f.Close()

	prog, err := qmdd.Parse(f)
	if err != nil {
		log.Error().Err(err).Str("file", infile).Msg("parse error")
		os.Exit(1)
	}

	b, err := qmdd.New(prog.NumVars())
	if err != nil {
		log.Error().Err(err).Msg("cannot initialize diagram")
		os.Exit(1)
	}
	root, err := b.Run(prog)
	if err != nil {
		log.Error().Err(err).Msg("cannot evaluate circuit")
		os.Exit(1)
	}
	if err := b.FPrintDot("-", root); err != nil {
		log.Error().Err(err).Msg("cannot write output")
		os.Exit(1)
	}
	if *stats {
		fmt.Fprintln(os.Stderr, b.Stats())
	}
}
