package commands

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/taxokit/casing"
	"github.com/erraggy/taxokit/internal/cliutil"
	"github.com/erraggy/taxokit/keycase"
)

// KeysFlags contains flags for the keys command
type KeysFlags struct {
	Shallow           bool
	PreserveUppercase bool
	Input             string
	Format            string
	MaxDepth          int
}

// SetupKeysFlags creates and configures a FlagSet for the keys command.
func SetupKeysFlags() (*flag.FlagSet, *KeysFlags) {
	fs := flag.NewFlagSet("keys", flag.ContinueOnError)
	fs.SetOutput(Stderr)
	flags := &KeysFlags{}

	fs.BoolVar(&flags.Shallow, "shallow", false, "only rename top-level keys")
	fs.BoolVar(&flags.PreserveUppercase, "preserve-uppercase", false, "keep runs of uppercase letters (acronyms) as written")
	fs.StringVar(&flags.Input, "input", FormatJSON, "input format: json or yaml")
	fs.StringVar(&flags.Format, "format", "", "output format: json or yaml (default: same as input)")
	fs.IntVar(&flags.MaxDepth, "max-depth", keycase.DefaultMaxDepth, "maximum nesting depth")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: taxokit keys [flags] <style> <file|->\n\n")
		cliutil.Writef(fs.Output(), "Rename the object keys of a JSON or YAML document to a naming style.\n\n")
		cliutil.Writef(fs.Output(), "Styles: %s\n\n", styleList())
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  taxokit keys camel response.json\n")
		cliutil.Writef(fs.Output(), "  taxokit keys --input yaml --format json snake config.yaml\n")
		cliutil.Writef(fs.Output(), "  curl -s $URL | taxokit keys --shallow kebab -\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - JSON to JSON conversion keeps the member order of the input\n")
	}

	return fs, flags
}

// HandleKeys executes the keys command
func HandleKeys(args []string) error {
	fs, flags := SetupKeysFlags()
	if done, err := parseFlags(fs, args); done {
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("keys command requires a style and one file path or '-' for stdin")
	}
	if flags.Format == "" {
		flags.Format = flags.Input
	}
	if err := ValidateDataFormat("input", flags.Input); err != nil {
		return err
	}
	if err := ValidateDataFormat("format", flags.Format); err != nil {
		return err
	}
	style, err := casing.ParseStyle(fs.Arg(0))
	if err != nil {
		return err
	}
	data, err := ReadInput(fs.Arg(1))
	if err != nil {
		return err
	}

	out, err := convertKeys(data, style.Converter(casing.PreserveConsecutiveUppercase(flags.PreserveUppercase)), flags)
	if err != nil {
		return err
	}
	_, err = Stdout.Write(out)
	return err
}

func convertKeys(data []byte, conv casing.Converter, flags *KeysFlags) ([]byte, error) {
	depth := keycase.WithMaxDepth(flags.MaxDepth)

	if flags.Input == FormatJSON && flags.Format == FormatJSON {
		compact, err := keycase.JSON(data, conv, !flags.Shallow, depth)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, compact, "", "  "); err != nil {
			return nil, fmt.Errorf("formatting output: %w", err)
		}
		buf.WriteByte('\n')
		return buf.Bytes(), nil
	}

	var doc any
	if flags.Input == FormatJSON {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing JSON input: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML input: %w", err)
	}

	if flags.Shallow {
		doc = keycase.Shallow(doc, conv)
	} else {
		converted, err := keycase.Deep(doc, conv, depth)
		if err != nil {
			return nil, err
		}
		doc = converted
	}

	var buf bytes.Buffer
	if err := OutputStructured(&buf, doc, flags.Format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
