package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/taxokit"
	"github.com/erraggy/taxokit/cmd/taxokit/commands"
	"github.com/erraggy/taxokit/internal/cliutil"
	"github.com/erraggy/taxokit/internal/mcpserver"
)

// commandNames lists the commands suggestCommand matches against.
var commandNames = []string{
	"validate", "case", "words", "keys", "slice", "splice", "generate", "mcp", "version", "help",
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	os.Exit(run(os.Args[1], os.Args[2:]))
}

// run dispatches a command and returns the process exit code.
func run(command string, args []string) int {
	var handler func([]string) error
	switch command {
	case "version", "--version":
		cliutil.Writef(commands.Stdout, "taxokit v%s\n", taxokit.Version())
		if len(args) > 0 && (args[0] == "-v" || args[0] == "--verbose") {
			cliutil.Writef(commands.Stdout, "%s\n", taxokit.BuildInfo())
		}
		return 0
	case "help", "-h", "--help":
		printUsage()
		return 0
	case "validate":
		handler = commands.HandleValidate
	case "case":
		handler = commands.HandleCase
	case "words":
		handler = commands.HandleWords
	case "keys":
		handler = commands.HandleKeys
	case "slice":
		handler = commands.HandleSlice
	case "splice":
		handler = commands.HandleSplice
	case "generate":
		handler = commands.HandleGenerate
	case "mcp":
		handler = handleMCP
	default:
		cliutil.Writef(commands.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			cliutil.Writef(commands.Stderr, "Did you mean: %s?\n", suggestion)
		}
		cliutil.Writef(commands.Stderr, "\n")
		printUsage()
		return 1
	}

	if err := handler(args); err != nil {
		if !errors.Is(err, commands.ErrValidationFailed) {
			cliutil.Writef(commands.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func handleMCP(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("mcp command takes no arguments")
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}

// suggestCommand returns the known command closest to input, or "" when
// none is within an edit distance of 2.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// levenshtein returns the edit distance between a and b.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	w := commands.Stdout
	cliutil.Writef(w, "taxokit - naming conventions for TypeScript taxonomies\n\n")
	cliutil.Writef(w, "Usage:\n")
	cliutil.Writef(w, "  taxokit <command> [flags] [arguments]\n\n")
	cliutil.Writef(w, "Commands:\n")
	cliutil.Writef(w, "  validate  Validate taxonomy values in *taxonomy*.d.ts files\n")
	cliutil.Writef(w, "  case      Convert text to camel, pascal, kebab, snake or screaming-snake case\n")
	cliutil.Writef(w, "  words     Split identifiers into words\n")
	cliutil.Writef(w, "  keys      Rename the object keys of a JSON or YAML document\n")
	cliutil.Writef(w, "  slice     Compute Array.prototype.slice on an array shape\n")
	cliutil.Writef(w, "  splice    Compute Array.prototype.splice on an array shape\n")
	cliutil.Writef(w, "  generate  Generate Go string enums from taxonomy declarations\n")
	cliutil.Writef(w, "  mcp       Run the MCP server over stdio\n")
	cliutil.Writef(w, "  version   Show version information\n")
	cliutil.Writef(w, "  help      Show this help message\n\n")
	cliutil.Writef(w, "Run 'taxokit <command> --help' for more information on a command.\n")
}
