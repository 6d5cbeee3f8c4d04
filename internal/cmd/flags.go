// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
	"runtime/debug"
)

// Set on build.
var version = "dev"

// Flags holds the parsed command line arguments.
type Flags struct {
	// OutputDir is the destination directory the payload is extracted to.
	OutputDir string

	name        string
	debugFlag   bool
	versionFlag bool
	flagSet     *flag.FlagSet
}

func NewFlags(name string, output io.Writer) *Flags {
	flags := &Flags{
		name:      name,
		OutputDir: ".",
	}

	flags.initFlagSet(output)

	return flags
}

func (f *Flags) initFlagSet(output io.Writer) {
	fs := flag.NewFlagSet(f.name, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags...] [OUTPUT_DIR]\n\n",
			f.name)
		fmt.Fprintln(fs.Output(),
			"Extracts the archive embedded in this binary to OUTPUT_DIR.")
		fmt.Fprintln(fs.Output(),
			"OUTPUT_DIR defaults to the current directory.")
		fmt.Fprintln(fs.Output(), "\nFlags:")
		fs.PrintDefaults()
	}

	fs.BoolVar(
		&f.debugFlag,
		"debug",
		f.debugFlag,
		"enable debug output",
	)

	fs.BoolVar(
		&f.versionFlag,
		"version",
		f.versionFlag,
		"show version and exit",
	)

	f.flagSet = fs
}

// Fail fails like flag does. It prints the error first and then usage.
func (f *Flags) Fail(msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

func (f *Flags) Debug() bool {
	return f.debugFlag
}

func (f *Flags) printVersionInformation() {
	fmt.Fprintf(f.flagSet.Output(), "%s: %s\n", f.name, version)

	buildInfo, ok := debug.ReadBuildInfo()
	if ok {
		fmt.Fprintln(f.flagSet.Output(), buildInfo.String())
	}
}

// ParseArgs parses the given arguments, without the program name.
//
// The only positional argument is the optional output directory.
func (f *Flags) ParseArgs(args []string) error {
	if err := f.flagSet.Parse(args); err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	// With version flag, just print the version and exit. Using
	// [flag.ErrHelp] the main binary is supposed to return with a non error
	// exit code.
	if f.versionFlag {
		f.printVersionInformation()
		return &ParseArgsError{msg: "version requested", err: flag.ErrHelp}
	}

	positionalArgs := f.flagSet.Args()

	switch len(positionalArgs) {
	case 0:
	case 1:
		f.OutputDir = positionalArgs[0]
	default:
		return f.Fail("too many arguments", nil)
	}

	if f.OutputDir == "" {
		return f.Fail("empty output directory", nil)
	}

	return nil
}
