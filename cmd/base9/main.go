// base9 - A nine colour palette theme generator
//
// base9 expands a palette code of nine colours into shaded, named colour
// variables and renders them into configuration files for your applications.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/base9/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
