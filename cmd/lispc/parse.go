// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/dataronio/lisp-interpreter/lisp"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a program and print its value tree, unexpanded",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args[0])
		},
	}
}

func runParse(path string) error {
	ctx := lisp.NewReader()
	defer ctx.Shutdown()

	form, err := ctx.ReadPath(path)
	if err != lisp.ErrNone {
		return fmt.Errorf("read %s: %w", path, err)
	}
	lisp.Print(form)
	fmt.Println()
	return nil
}

func newExpandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expand <file>",
		Short: "Parse and macro-expand a program, printing the core form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpand(args[0])
		},
	}
}

func runExpand(path string) error {
	ctx := lisp.NewReader()
	defer ctx.Shutdown()

	form, err := ctx.ReadPath(path)
	if err != lisp.ErrNone {
		return fmt.Errorf("read %s: %w", path, err)
	}
	expanded, err := ctx.Expand(form)
	if err != lisp.ErrNone {
		return fmt.Errorf("expand %s: %w", path, err)
	}
	lisp.Print(expanded)
	fmt.Println()
	return nil
}
