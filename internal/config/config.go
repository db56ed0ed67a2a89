/*
	Copyright 2015 Franc[e]sco (lolisamurai@tfwno.gf)
	This file is part of go-hachi.
	go-hachi is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.
	go-hachi is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.
	You should have received a copy of the GNU General Public License
	along with go-hachi. If not, see <http://www.gnu.org/licenses/>.
*/


// Package config handles command line options and logger setup.
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AhmadJanjua/Emulator/hachi"
	"github.com/retroenv/retrogolib/log"
)

// Options holds the parsed command line.
type Options struct {
	// Program is the path of the program image to run.
	Program string
	Driver  string

	Cycles       int
	LogicKeepsVF bool
	VFWrites     bool
	Seed         int64
	Trace        bool

	Debug bool
	Quiet bool

	Disasm bool
	Dump   bool
}

// Settings converts the options to emulator settings.
func (o Options) Settings() hachi.Settings {
	s := hachi.DefaultSettings()
	s.CyclesPerFrame = o.Cycles
	s.Quirks.LogicResetsFlag = !o.LogicKeepsVF
	s.Quirks.GuardFlagRegister = !o.VFWrites
	s.Seed = o.Seed
	s.Trace = o.Trace
	return s
}

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// ParseFlags parses the arguments following the program name. Exactly one
// positional argument, the program image, is accepted.
func ParseFlags(name string, args []string) (Options, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var opts Options
	readOptionFlags(flags, &opts)

	if err := flags.Parse(args); err != nil {
		return opts, &UsageError{flags: flags, name: name, msg: err.Error()}
	}

	rest := flags.Args()
	switch {
	case len(rest) == 0:
		return opts, &UsageError{flags: flags, name: name, msg: "no program given"}
	case len(rest) > 1:
		return opts, &UsageError{flags: flags, name: name,
			msg: fmt.Sprintf("expected one program, got %d arguments", len(rest))}
	}
	opts.Program = rest[0]

	if opts.Cycles < 1 {
		return opts, fmt.Errorf("invalid cycle count %d, must be at least 1", opts.Cycles)
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	name  string
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage line and the flag defaults to stderr.
func (e *UsageError) ShowUsage() {
	e.flags.SetOutput(os.Stderr)
	fmt.Fprintf(os.Stderr, "usage: %s [options] path/to/program\n\n", filepath.Base(e.name))
	e.flags.PrintDefaults()
	fmt.Fprintln(os.Stderr)
}

func readOptionFlags(flags *flag.FlagSet, opts *Options) {
	defaults := hachi.DefaultSettings()

	flags.StringVar(&opts.Driver, "driver", "termloop", fmt.Sprintf("driver to run the program with %v", hachi.Drivers()))
	flags.IntVar(&opts.Cycles, "cycles", defaults.CyclesPerFrame, "instructions executed per 1/60 s frame")
	flags.BoolVar(&opts.LogicKeepsVF, "logic-keeps-vf", false, "OR, AND and XOR leave VF unchanged")
	flags.BoolVar(&opts.VFWrites, "vf-writes", false, "ALU results land in VF after the flag when VF is the destination")
	flags.Int64Var(&opts.Seed, "seed", 0, "random number seed, 0 picks one from the clock")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction (needs -debug)")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Disasm, "disasm", false, "print a disassembly of the program and exit")
	flags.BoolVar(&opts.Dump, "dump", false, "print the non-zero memory words after loading and exit")
}
