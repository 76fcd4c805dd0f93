package main

import (
	"fmt"
	"os"
	"strings"
)

const usage = `treeline — git worktrees and branches at a glance

Usage:
  treeline [list] [--full] [--ci] [-i]
  treeline version
  treeline update

Commands:
  list     print the worktree/branch table (default)
  version  print the version and check for updates
  update   download and install the latest release

List flags:
  --full   include the branch-vs-main line diff column
  --ci     query CI status for each branch
  -i       interactive picker; enter prints the selected path
`

func main() {
	args := os.Args[1:]

	sub := "list"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		sub = args[0]
		args = args[1:]
	}

	var err error
	switch sub {
	case "list":
		err = runList(args)
	case "version":
		runVersion()
	case "update":
		err = runUpdate()
	case "help", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", sub, usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
