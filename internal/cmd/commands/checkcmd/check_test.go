// Copyright (c) The webperms Authors
// SPDX-License-Identifier: MPL-2.0

package checkcmd

import (
	"testing"

	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
)

func Test_CheckCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
		wantErr  string
	}{
		{
			name: "implied",
			args: []string{
				"-name", "/foo/*", "-actions", "GET,POST",
				"-against-name", "/foo/bar", "-against-actions", "GET",
			},
			wantCode: ExitImplied,
			wantOut:  `"/foo/*" implies "/foo/bar"`,
		},
		{
			name: "not implied",
			args: []string{
				"-name", "/foo/bar", "-actions", "GET",
				"-against-name", "/foo/*", "-against-actions", "GET,POST",
			},
			wantCode: ExitNotImplied,
			wantOut:  `"/foo/bar" does not imply "/foo/*"`,
		},
		{
			name:     "empty specs default to the root grant of all methods",
			args:     []string{"-against-name", "/anything"},
			wantCode: ExitImplied,
			wantOut:  `"/" implies "/anything"`,
		},
		{
			name: "malformed spec",
			args: []string{
				"-name", "/login:/logout", "-actions", "GET",
				"-against-name", "/login", "-against-actions", "GET",
			},
			wantCode: ExitUserError,
			wantErr:  "admits no pattern list",
		},
		{
			name: "unrecognized methods are warned about but allowed",
			args: []string{
				"-name", "/foo/*", "-actions", "GET,FOO",
				"-against-name", "/foo/bar", "-against-actions", "FOO",
			},
			wantCode: ExitImplied,
			wantOut:  `"/foo/*" implies "/foo/bar"`,
			wantErr:  `unrecognized method "FOO"`,
		},
		{
			name:     "unknown flag",
			args:     []string{"-bogus"},
			wantCode: ExitUserError,
			wantErr:  "flag provided but not defined",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)
			ui := cli.NewMockUi()
			c := &Command{UI: ui}
			assert.Equal(tt.wantCode, c.Run(tt.args))
			if tt.wantOut != "" {
				assert.Contains(ui.OutputWriter.String(), tt.wantOut)
			}
			if tt.wantErr != "" {
				assert.Contains(ui.ErrorWriter.String(), tt.wantErr)
			}
		})
	}
}
