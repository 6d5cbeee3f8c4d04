// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/aibor/expand/internal/extract"
	"github.com/aibor/expand/internal/payload"
)

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run is the main entry point for the CLI command.
//
// It expects the complete argument list including the program name and
// returns the process exit code.
func Run(args []string, cfg IO) int {
	flags := NewFlags(filepath.Base(args[0]), cfg.Stderr)

	err := flags.ParseArgs(args[1:])
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.Debug())

	return run(flags, cfg)
}

func run(flags *Flags, cfg IO) int {
	source, err := payload.Open()
	if err != nil {
		slog.Error("Failed to open embedded payload",
			slog.Any("error", err))

		return 1
	}
	defer source.Close()

	// The output directory is created only once the payload is known to be
	// present.
	err = extract.MkdirChain(flags.OutputDir)
	if err != nil {
		slog.Error("Failed to create output directory",
			slog.String("path", flags.OutputDir),
			slog.Any("error", err))

		return 1
	}

	logFreeSpace(flags.OutputDir)

	fmt.Fprintf(cfg.Stdout, "Expanding to %s …\n", flags.OutputDir)

	extractor := extract.Extractor{
		Fsys: source.FS(),
		Dest: flags.OutputDir,
		Out:  cfg.Stdout,
	}

	result := extractor.Extract()

	slog.Debug("Extraction finished",
		slog.Int("extracted", result.Extracted),
		slog.Int("errors", result.Errors))

	if result.Errors > 0 {
		fmt.Fprintf(cfg.Stderr, "%s: completed with %d error(s)\n",
			flags.name, result.Errors)

		return 1
	}

	fmt.Fprintln(cfg.Stdout, "Done.")

	return 0
}

func handleParseArgsError(err error) int {
	// [flag.ErrHelp] is returned when help or version output is requested.
	// So exit without error in this case.
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}

	// ParseArgs already prints errors, so we just exit.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return 1
}
