// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/dataronio/lisp-interpreter/lisp"
	"github.com/spf13/cobra"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive read-eval-print loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl()
		},
	}
}

func runRepl() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "lisp> ",
		HistoryFile:     historyFilePath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "bye",
	})
	if err != nil {
		return fmt.Errorf("start line editor: %w", err)
	}
	defer rl.Close()

	ctx := lisp.NewInterpreter()
	defer ctx.Shutdown()

	for {
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}
		if line == "" {
			continue
		}
		evalLine(ctx, line)
	}
}

func evalLine(ctx *lisp.Context, line string) {
	form, err := ctx.Read(line)
	if err != lisp.ErrNone {
		fmt.Printf("read error: %v\n", err)
		return
	}
	expanded, err := ctx.Expand(form)
	if err != lisp.ErrNone {
		fmt.Printf("expand error: %v\n", err)
		return
	}
	result, err := ctx.Eval(expanded, ctx.GlobalEnv())
	if err != lisp.ErrNone {
		fmt.Printf("eval error: %v\n", err)
		return
	}
	lisp.Print(result)
	fmt.Println()
}

func historyFilePath() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return ".lispc_history"
	}
	return dir + "/.lispc_history"
}
