// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/dataronio/lisp-interpreter/lisp"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <file>",
		Short: "Read, expand, and evaluate a program, printing its result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(args[0])
		},
	}
}

func runEval(path string) error {
	ctx := lisp.NewInterpreter()
	defer ctx.Shutdown()

	form, err := ctx.ReadPath(path)
	if err != lisp.ErrNone {
		return fmt.Errorf("read %s: %w", path, err)
	}
	expanded, err := ctx.Expand(form)
	if err != lisp.ErrNone {
		return fmt.Errorf("expand %s: %w", path, err)
	}
	result, err := ctx.Eval(expanded, ctx.GlobalEnv())
	if err != lisp.ErrNone {
		return fmt.Errorf("eval %s: %w", path, err)
	}
	lisp.Print(result)
	fmt.Println()
	return nil
}
