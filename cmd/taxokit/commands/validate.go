package commands

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/erraggy/taxokit"
	"github.com/erraggy/taxokit/internal/cliutil"
	"github.com/erraggy/taxokit/internal/watch"
	"github.com/erraggy/taxokit/taxonomy"
)

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	NoWarnings bool
	Quiet      bool
	Format     string
	Config     string
	Watch      bool
	Verbose    bool
	NoColor    bool
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
// Returns the FlagSet and a ValidateFlags struct with bound flag variables.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(Stderr)
	flags := &ValidateFlags{}

	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress warning messages (only show errors)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only set the exit code, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only set the exit code, no diagnostic messages")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Config, "config", "", "YAML file with naming rules")
	fs.BoolVar(&flags.Watch, "watch", false, "re-validate whenever a taxonomy file changes")
	fs.BoolVar(&flags.Verbose, "v", false, "verbose logging")
	fs.BoolVar(&flags.Verbose, "verbose", false, "verbose logging")
	fs.BoolVar(&flags.NoColor, "no-color", false, "disable colored output")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: taxokit validate [flags] [root]\n\n")
		cliutil.Writef(fs.Output(), "Validate the values of TypeScript taxonomy declarations below root (default %s).\n\n", taxonomy.DefaultRoot)
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nOutput Formats:\n")
		cliutil.Writef(fs.Output(), "  text (default)  Human-readable text output\n")
		cliutil.Writef(fs.Output(), "  json            JSON format for programmatic processing\n")
		cliutil.Writef(fs.Output(), "  yaml            YAML format for programmatic processing\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  taxokit validate\n")
		cliutil.Writef(fs.Output(), "  taxokit validate --config taxonomy-rules.yaml packages/types\n")
		cliutil.Writef(fs.Output(), "  taxokit validate --format json src | jq '.errors'\n")
		cliutil.Writef(fs.Output(), "  taxokit validate --watch\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    No naming errors (warnings are allowed)\n")
		cliutil.Writef(fs.Output(), "  1    Naming errors were found, or the tree could not be read\n")
	}

	return fs, flags
}

// HandleValidate executes the validate command
func HandleValidate(args []string) error {
	fs, flags := SetupValidateFlags()
	if done, err := parseFlags(fs, args); done {
		return err
	}

	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("validate command accepts at most one root directory")
	}
	root := taxonomy.DefaultRoot
	if fs.NArg() == 1 {
		root = fs.Arg(0)
	}

	// Validate format flag early to fail fast before walking the tree
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	cliutil.SetupLogging(Stderr, flags.Verbose)

	rules := taxonomy.DefaultRules()
	if flags.Config != "" {
		loaded, err := taxonomy.LoadRules(flags.Config)
		if err != nil {
			return err
		}
		rules = loaded
	}

	run := func() (*taxonomy.ValidationResult, error) {
		startTime := time.Now()
		result, err := taxonomy.ValidateWithOptions(
			taxonomy.WithRoot(root),
			taxonomy.WithRules(rules),
			taxonomy.WithIncludeWarnings(!flags.NoWarnings),
		)
		if err != nil {
			return nil, fmt.Errorf("validating %s: %w", root, err)
		}
		if err := printValidation(result, flags, time.Since(startTime)); err != nil {
			return nil, err
		}
		return result, nil
	}

	if flags.Watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watchAndValidate(ctx, root, rules, 0, func() {
			if _, err := run(); err != nil {
				cliutil.Writef(Stderr, "Error: %v\n", err)
			}
		})
	}

	result, err := run()
	if err != nil {
		return err
	}
	if !result.Valid {
		return ErrValidationFailed
	}
	return nil
}

// watchAndValidate runs validate once, then again after every debounced batch
// of taxonomy file changes below root, until ctx is done.
func watchAndValidate(ctx context.Context, root string, rules *taxonomy.Rules, debounce time.Duration, validate func()) error {
	validate()

	w, err := watch.New(watch.Config{
		Root:     root,
		Debounce: debounce,
		Match: func(path string) bool {
			return rules.IsTaxonomyFile(filepath.Base(path))
		},
		SkipDir: rules.SkipDir,
	}, func(paths []string) {
		slog.Info("taxonomy files changed", "count", len(paths))
		validate()
	})
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()

	<-ctx.Done()
	return nil
}

// printValidation writes a validation result in the requested format.
func printValidation(result *taxonomy.ValidationResult, flags *ValidateFlags, totalTime time.Duration) error {
	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		return OutputStructured(Stdout, result, flags.Format)
	}
	if flags.Quiet {
		return nil
	}

	p := cliutil.NewPrinter(Stderr, cliutil.ColorEnabled(flags.NoColor))
	cliutil.Writef(Stderr, "Taxonomy Validator\n")
	cliutil.Writef(Stderr, "==================\n\n")
	cliutil.Writef(Stderr, "taxokit version: %s\n", taxokit.Version())
	cliutil.Writef(Stderr, "Root: %s\n", result.Root)
	cliutil.Writef(Stderr, "Files: %d\n", result.Stats.FilesScanned)
	cliutil.Writef(Stderr, "Taxonomies: %d\n", result.Stats.Taxonomies)
	cliutil.Writef(Stderr, "Values: %d\n", result.Stats.Values)
	cliutil.Writef(Stderr, "Total Time: %v\n\n", totalTime)

	if len(result.Errors) > 0 {
		cliutil.Writef(Stderr, "Errors (%d):\n", result.ErrorCount)
		for _, e := range result.Errors {
			cliutil.Writef(Stderr, "  ")
			p.Issue(e)
		}
		cliutil.Writef(Stderr, "\n")
	}
	if len(result.Warnings) > 0 {
		cliutil.Writef(Stderr, "Warnings (%d):\n", result.WarningCount)
		for _, w := range result.Warnings {
			cliutil.Writef(Stderr, "  ")
			p.Issue(w)
		}
		cliutil.Writef(Stderr, "\n")
	}
	for _, info := range result.Infos {
		p.Issue(info)
	}

	if result.Valid {
		msg := "✓ All taxonomy values are valid"
		if result.WarningCount > 0 {
			msg += fmt.Sprintf(" (%d warning(s))", result.WarningCount)
		}
		p.Success(msg)
	} else {
		msg := fmt.Sprintf("✗ Validation failed: %d error(s)", result.ErrorCount)
		if result.WarningCount > 0 {
			msg += fmt.Sprintf(", %d warning(s)", result.WarningCount)
		}
		p.Error(msg)
	}
	return nil
}
