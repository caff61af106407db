package commands

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"strings"

	"github.com/erraggy/taxokit/casing"
	"github.com/erraggy/taxokit/internal/cliutil"
)

// CaseFlags contains flags for the case and words commands
type CaseFlags struct {
	PreserveUppercase bool
	NoSplitNumbers    bool
}

func (f *CaseFlags) options() []casing.Option {
	return []casing.Option{
		casing.PreserveConsecutiveUppercase(f.PreserveUppercase),
		casing.SplitOnNumbers(!f.NoSplitNumbers),
	}
}

// SetupCaseFlags creates and configures a FlagSet for the case command.
func SetupCaseFlags() (*flag.FlagSet, *CaseFlags) {
	fs := flag.NewFlagSet("case", flag.ContinueOnError)
	fs.SetOutput(Stderr)
	flags := &CaseFlags{}

	fs.BoolVar(&flags.PreserveUppercase, "preserve-uppercase", false, "keep runs of uppercase letters (acronyms) as written")
	fs.BoolVar(&flags.NoSplitNumbers, "no-split-numbers", false, "keep digits attached to adjacent letters")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: taxokit case [flags] <style> <text...|->\n\n")
		cliutil.Writef(fs.Output(), "Convert each text argument, or each line of stdin, to a naming style.\n\n")
		cliutil.Writef(fs.Output(), "Styles: %s\n\n", styleList())
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  taxokit case camel foo-bar            # fooBar\n")
		cliutil.Writef(fs.Output(), "  taxokit case --preserve-uppercase camel foo-BAR-baz   # fooBARBaz\n")
		cliutil.Writef(fs.Output(), "  printf 'userId\\n' | taxokit case snake -\n")
	}

	return fs, flags
}

// HandleCase executes the case command
func HandleCase(args []string) error {
	fs, flags := SetupCaseFlags()
	if done, err := parseFlags(fs, args); done {
		return err
	}

	if fs.NArg() < 2 {
		fs.Usage()
		return fmt.Errorf("case command requires a style and at least one text argument")
	}
	style, err := casing.ParseStyle(fs.Arg(0))
	if err != nil {
		return err
	}

	inputs, err := textInputs(fs.Args()[1:])
	if err != nil {
		return err
	}
	conv := style.Converter(flags.options()...)
	for _, in := range inputs {
		cliutil.Writef(Stdout, "%s\n", conv(in))
	}
	return nil
}

// SetupWordsFlags creates and configures a FlagSet for the words command.
func SetupWordsFlags() (*flag.FlagSet, *CaseFlags) {
	fs := flag.NewFlagSet("words", flag.ContinueOnError)
	fs.SetOutput(Stderr)
	flags := &CaseFlags{}

	fs.BoolVar(&flags.NoSplitNumbers, "no-split-numbers", false, "keep digits attached to adjacent letters")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: taxokit words [flags] <text...|->\n\n")
		cliutil.Writef(fs.Output(), "Print the words of each text argument, space separated, one line per argument.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  taxokit words PDFLoader    # PDF Loader\n")
	}

	return fs, flags
}

// HandleWords executes the words command
func HandleWords(args []string) error {
	fs, flags := SetupWordsFlags()
	if done, err := parseFlags(fs, args); done {
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("words command requires at least one text argument")
	}
	inputs, err := textInputs(fs.Args())
	if err != nil {
		return err
	}
	for _, in := range inputs {
		cliutil.Writef(Stdout, "%s\n", strings.Join(casing.SplitWords(in, flags.options()...), " "))
	}
	return nil
}

// textInputs returns args, or the lines of stdin when args is just "-".
func textInputs(args []string) ([]string, error) {
	if len(args) != 1 || args[0] != StdinFilePath {
		return args, nil
	}
	data, err := ReadInput(StdinFilePath)
	if err != nil {
		return nil, err
	}
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

func styleList() string {
	names := make([]string, 0, len(casing.Styles()))
	for _, s := range casing.Styles() {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}
