// SPDX-License-Identifier: Apache-2.0

// predict-mcp turns dataset schemas and model reports into validated
// prediction requests, either as an MCP server or from the command line.
//
// Usage:
//
//	predict-mcp serve
//	predict-mcp normalize --schema <file> [--target <column>]
//	predict-mcp predict --schema <file> --report <file> (--dataset-id <id> | --dataset-response <file>) [--values <file>] [--model <name>]
//	predict-mcp report --report <file> [--output yaml|json]
package main

import (
	"fmt"
	"os"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
