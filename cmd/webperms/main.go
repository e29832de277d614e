// Copyright (c) The webperms Authors
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"os"

	"github.com/webperms/webperms/internal/cmd"
)

func main() {
	os.Exit(cmd.Run(os.Args[1:]))
}
