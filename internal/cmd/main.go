// Copyright (c) The webperms Authors
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"

	"github.com/mitchellh/cli"
	"github.com/webperms/webperms/internal/cmd/commands/actionscmd"
	"github.com/webperms/webperms/internal/cmd/commands/checkcmd"
)

// Version is reported by -version and the help output.
const Version = "0.1.0"

// Run parses args, dispatches to the matching command and returns the
// process exit code.
func Run(args []string) int {
	ui := &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	c := cli.NewCLI("webperms", Version)
	c.Args = args
	c.Commands = map[string]cli.CommandFactory{
		"check": func() (cli.Command, error) {
			return &checkcmd.Command{UI: ui}, nil
		},
		"actions": func() (cli.Command, error) {
			return &actionscmd.Command{UI: ui}, nil
		},
	}

	exitCode, err := c.Run()
	if err != nil {
		ui.Error(err.Error())
		return 2
	}
	return exitCode
}
