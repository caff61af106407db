package commands

import (
	"flag"
	"fmt"
	"path/filepath"

	"github.com/erraggy/taxokit/generator"
	"github.com/erraggy/taxokit/internal/cliutil"
	"github.com/erraggy/taxokit/taxonomy"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	Output      string
	PackageName string
	Config      string
	NoWarnings  bool
	NoColor     bool
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(Stderr)
	flags := &GenerateFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file (default: write to stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file (default: write to stdout)")
	fs.StringVar(&flags.PackageName, "p", generator.DefaultPackageName, "Go package name for generated code")
	fs.StringVar(&flags.PackageName, "package", generator.DefaultPackageName, "Go package name for generated code")
	fs.StringVar(&flags.Config, "config", "", "YAML file with naming rules")
	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress warning and info messages")
	fs.BoolVar(&flags.NoColor, "no-color", false, "disable colored output")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: taxokit generate [flags] [root]\n\n")
		cliutil.Writef(fs.Output(), "Generate Go string enums from the taxonomy declarations below root (default %s).\n\n", taxonomy.DefaultRoot)
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  taxokit generate -o internal/taxonomies/taxonomies_gen.go src\n")
		cliutil.Writef(fs.Output(), "  taxokit generate -p events --config taxonomy-rules.yaml > events_gen.go\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - The generated Parse functions accept custom values that satisfy the naming rules\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	fs, flags := SetupGenerateFlags()
	if done, err := parseFlags(fs, args); done {
		return err
	}

	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("generate command accepts at most one root directory")
	}
	root := taxonomy.DefaultRoot
	if fs.NArg() == 1 {
		root = fs.Arg(0)
	}

	opts := []generator.Option{
		generator.WithRoot(root),
		generator.WithPackageName(flags.PackageName),
	}
	if flags.Output != "" {
		opts = append(opts, generator.WithFileName(filepath.Base(flags.Output)))
	}
	if flags.Config != "" {
		rules, err := taxonomy.LoadRules(flags.Config)
		if err != nil {
			return err
		}
		opts = append(opts, generator.WithRules(rules))
	}

	result, err := generator.GenerateWithOptions(opts...)
	if err != nil {
		return fmt.Errorf("generating code: %w", err)
	}

	if !flags.NoWarnings {
		p := cliutil.NewPrinter(Stderr, cliutil.ColorEnabled(flags.NoColor))
		for _, issue := range result.Issues {
			p.Issue(issue)
		}
	}

	file := result.Files[0]
	if flags.Output == "" {
		_, err := Stdout.Write(file.Content)
		return err
	}
	if err := file.WriteFile(flags.Output); err != nil {
		return err
	}
	cliutil.Writef(Stderr, "Generated %d type(s), %d constant(s) in %s (%v)\n",
		result.GeneratedTypes, result.GeneratedConstants, flags.Output, result.GenerateTime)
	return nil
}
