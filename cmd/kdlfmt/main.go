// Copyright 2020-2023 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package main provides the CLI entry point for kdlfmt, a formatter and
// diagnostic checker for kdl documents.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kralicky/kdl/format"
	"github.com/kralicky/kdl/parser"
)

var (
	ErrReadInput   = errors.New("read input")
	ErrWriteOutput = errors.New("write output")
	ErrParse       = errors.New("parse failed")
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "kdlfmt",
		Short: "Format and validate kdl documents",
		Long: `kdlfmt parses kdl documents with a format-preserving parser and either
reports every diagnostic found in one pass, or renders the document back
to text.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	var write bool
	fmtCmd := &cobra.Command{
		Use:   "fmt [flags] <file> [file2 ...]",
		Short: "Render documents back to text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runFmt(args, write)
		},
	}
	fmtCmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to each file instead of stdout")

	checkCmd := &cobra.Command{
		Use:   "check <file> [file2 ...]",
		Short: "Report every diagnostic found in each document",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCheck(args)
		},
	}

	rootCmd.AddCommand(fmtCmd, checkCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func readFile(arg string) ([]byte, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %w", ErrReadInput, err)
		}
		return data, nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadInput, arg, err)
	}
	return data, nil
}

func runFmt(args []string, write bool) error {
	for _, arg := range args {
		data, err := readFile(arg)
		if err != nil {
			return err
		}
		doc, failure := parser.ParseDocument(string(data))
		if failure != nil {
			return fmt.Errorf("%w: %s:\n%w", ErrParse, arg, failure)
		}
		out := format.Render(doc)
		if write && arg != "-" {
			if err := os.WriteFile(arg, []byte(out), 0o644); err != nil {
				return fmt.Errorf("%w: %s: %w", ErrWriteOutput, arg, err)
			}
			continue
		}
		if _, err := os.Stdout.WriteString(out); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
	}
	return nil
}

func runCheck(args []string) error {
	failed := false
	for _, arg := range args {
		data, err := readFile(arg)
		if err != nil {
			return err
		}
		_, failure := parser.ParseDocument(string(data))
		if failure == nil {
			continue
		}
		failed = true
		for _, d := range failure.Diagnostics {
			fmt.Fprintf(os.Stderr, "%s: %s\n", arg, d.Error())
		}
	}
	if failed {
		return ErrParse
	}
	return nil
}
