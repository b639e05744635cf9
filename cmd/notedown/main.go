package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/gerunddev/notedown/internal/commands"
	"github.com/gerunddev/notedown/internal/config"
	"github.com/gerunddev/notedown/internal/logger"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	lg := logger.NewWithLevel(os.Stderr, log.WarnLevel)
	if verbose(args) {
		lg = logger.NewWithLevel(os.Stderr, log.DebugLevel)
		args = dropFlag(args, "-v")
	}

	switch command {
	case "fmt":
		write := hasFlag(args, "-w")
		args = dropFlag(args, "-w")
		err = withFile(args, func(path string) error {
			return commands.Fmt(path, write, lg)
		})
	case "check":
		err = withFile(args, func(path string) error {
			return commands.Check(path, lg)
		})
	case "preview":
		err = withFile(args, func(path string) error {
			return commands.Preview(path, lg)
		})
	case "tree":
		err = withFile(args, func(path string) error {
			return commands.Tree(path, lg)
		})
	case "apply":
		write := hasFlag(args, "-w")
		args = dropFlag(args, "-w")
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Error: apply needs a file and at least one command")
			os.Exit(1)
		}
		err = commands.Apply(args[0], args[1:], write, cfg, lg)
	case "version", "-v", "--version":
		fmt.Printf("notedown v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func withFile(args []string, fn func(path string) error) error {
	if len(args) == 0 {
		return fmt.Errorf("no input file specified")
	}
	return fn(args[0])
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

func verbose(args []string) bool {
	return hasFlag(args, "-v")
}

func dropFlag(args []string, flag string) []string {
	out := args[:0:0]
	for _, a := range args {
		if a != flag {
			out = append(out, a)
		}
	}
	return out
}

func printUsage() {
	usage := `notedown - Structured markdown note editing core

Usage:
  notedown <command> [options]

Commands:
  fmt [-w] <file>            Reformat a note to its canonical serialization
  check <file>               Verify the note survives a round-trip unchanged
  preview <file>             Render a note for the terminal
  tree <file>                Dump the note's block structure
  apply [-w] <file> <cmd>..  Run scripted editing commands against a note
  version                    Show version information
  help                       Show this help message

Apply commands use name[:arg]@index or name[:arg]@start-end with character
indexes over the note's text:
  enter@12  indent@5  outdent@5  backspace@7  delete@7
  list:bullet@0-24  list:decimal@0-24  bold@3-10  italic@3-10

Examples:
  notedown fmt -w notes/inbox.md
  notedown check notes/inbox.md
  notedown apply notes/inbox.md "list:bullet@0-40" "indent@25"
`
	fmt.Print(usage)
}
