// Copyright (c) The webperms Authors
// SPDX-License-Identifier: MPL-2.0

package actionscmd

import (
	"flag"
	"io"
	"strings"

	"github.com/mitchellh/cli"
	"github.com/posener/complete"
	"github.com/webperms/webperms/internal/perms"
)

var (
	_ cli.Command             = (*Command)(nil)
	_ cli.CommandAutocomplete = (*Command)(nil)
)

type Command struct {
	UI cli.Ui

	flagActions string
}

func (c *Command) Synopsis() string {
	return "Print the canonical form of an HTTP method spec"
}

func (c *Command) Help() string {
	return strings.TrimSpace(`
Usage: webperms actions -spec <methods>

  Canonicalize a comma separated HTTP method spec: duplicates collapse,
  methods sort ascending, and the full recognized set (or an empty spec)
  prints as "(all methods)". Exception list specs ("!...") have no
  canonical actions rendering and also print "(all methods)". Example:

    $ webperms actions -spec "POST,GET,GET"
    GET,POST

Options:

  -spec=<methods>  The HTTP method spec to canonicalize.
`) + "\n"
}

func (c *Command) Flags() *flag.FlagSet {
	f := flag.NewFlagSet("actions", flag.ContinueOnError)
	f.SetOutput(io.Discard)
	f.StringVar(&c.flagActions, "spec", "", "")
	return f
}

func (c *Command) AutocompleteArgs() complete.Predictor {
	return complete.PredictNothing
}

func (c *Command) AutocompleteFlags() complete.Flags {
	return complete.Flags{
		"-spec": complete.PredictAnything,
	}
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(err.Error())
		return 2
	}

	p, err := perms.New(perms.DefaultPattern, c.flagActions)
	if err != nil {
		c.UI.Error(err.Error())
		return 2
	}

	if actions := p.Actions(); actions != "" {
		c.UI.Output(actions)
	} else {
		c.UI.Output("(all methods)")
	}
	return 0
}
