// Copyright (c) The webperms Authors
// SPDX-License-Identifier: MPL-2.0

package checkcmd

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/go-secure-stdlib/strutil"
	"github.com/mitchellh/cli"
	"github.com/posener/complete"
	"github.com/webperms/webperms/internal/perms"
	"github.com/webperms/webperms/internal/types/method"
)

// Exit codes, stable for scripts wrapping the tool.
const (
	ExitImplied    = 0
	ExitNotImplied = 1
	ExitUserError  = 2
)

var (
	_ cli.Command             = (*Command)(nil)
	_ cli.CommandAutocomplete = (*Command)(nil)
)

type Command struct {
	UI cli.Ui

	flagName           string
	flagActions        string
	flagAgainstName    string
	flagAgainstActions string
	flagVerbose        bool
}

func (c *Command) Synopsis() string {
	return "Check whether one web resource permission implies another"
}

func (c *Command) Help() string {
	return strings.TrimSpace(`
Usage: webperms check [options]

  Parse two permissions and report whether the first implies the second.
  Exits 0 when it does, 1 when it does not. Example:

    $ webperms check -name "/foo/*" -actions "GET,POST" \
        -against-name "/foo/bar" -against-actions "GET"

Options:

  -name=<spec>                URL pattern spec of the granting permission.
  -actions=<methods>          HTTP method spec of the granting permission.
                              Empty grants all methods; a leading "!" makes
                              the remainder an exception list.
  -against-name=<spec>        URL pattern spec of the requested permission.
  -against-actions=<methods>  HTTP method spec of the requested permission.
  -verbose                    Log the decision at debug level.
`) + "\n"
}

func (c *Command) Flags() *flag.FlagSet {
	f := flag.NewFlagSet("check", flag.ContinueOnError)
	f.SetOutput(io.Discard)
	f.StringVar(&c.flagName, "name", "", "")
	f.StringVar(&c.flagActions, "actions", "", "")
	f.StringVar(&c.flagAgainstName, "against-name", "", "")
	f.StringVar(&c.flagAgainstActions, "against-actions", "", "")
	f.BoolVar(&c.flagVerbose, "verbose", false, "")
	return f
}

func (c *Command) AutocompleteArgs() complete.Predictor {
	return complete.PredictNothing
}

func (c *Command) AutocompleteFlags() complete.Flags {
	return complete.Flags{
		"-name":            complete.PredictAnything,
		"-actions":         complete.PredictAnything,
		"-against-name":    complete.PredictAnything,
		"-against-actions": complete.PredictAnything,
		"-verbose":         complete.PredictNothing,
	}
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(err.Error())
		return ExitUserError
	}

	logger := hclog.NewNullLogger()
	if c.flagVerbose {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:  "webperms",
			Level: hclog.Debug,
		})
	}

	var parseErrs *multierror.Error
	granted, err := perms.New(c.flagName, c.flagActions)
	if err != nil {
		parseErrs = multierror.Append(parseErrs, err)
	}
	requested, err := perms.New(c.flagAgainstName, c.flagAgainstActions)
	if err != nil {
		parseErrs = multierror.Append(parseErrs, err)
	}
	if err := parseErrs.ErrorOrNil(); err != nil {
		c.UI.Error(err.Error())
		return ExitUserError
	}

	// methods outside the recognized registry are legal but usually typos
	for _, m := range unrecognizedMethods(c.flagActions, c.flagAgainstActions) {
		c.UI.Warn(fmt.Sprintf("unrecognized method %q", m))
	}

	logger.Debug("parsed permissions",
		"granted", granted.Name(),
		"granted-actions", granted.Actions(),
		"requested", requested.Name(),
		"requested-actions", requested.Actions())

	if !granted.Implies(requested) {
		c.UI.Output(fmt.Sprintf("%q does not imply %q", granted.Name(), requested.Name()))
		return ExitNotImplied
	}

	logger.Debug("implication holds", "equal", granted.Equals(requested))
	c.UI.Output(fmt.Sprintf("%q implies %q", granted.Name(), requested.Name()))
	return ExitImplied
}

// unrecognizedMethods collects the tokens of the given method specs that are
// outside the recognized method registry, in input order, deduplicated.
func unrecognizedMethods(specs ...string) []string {
	var out []string
	seen := map[string]bool{}
	for _, spec := range specs {
		for _, m := range strutil.ParseStringSlice(strings.TrimPrefix(spec, "!"), ",") {
			if method.IsRecognized(m) || seen[m] {
				continue
			}
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}
