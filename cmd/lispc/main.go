// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The lispc tool reads, expands, and evaluates programs written in the
// embedded Lisp dialect implemented by the lisp package. Run
// "lispc help" for a list of commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lispc",
	Short: "Run and inspect programs in the embedded Lisp dialect",
	Long: `lispc drives the lisp package from the command line: evaluate a
file or expression, or inspect what the reader and expander produce along
the way, without writing a line of Go.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newExpandCmd())
	rootCmd.AddCommand(newReplCmd())
}
