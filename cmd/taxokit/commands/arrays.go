package commands

import (
	"flag"
	"fmt"
	"slices"
	"strings"

	"github.com/erraggy/taxokit/arrays"
	"github.com/erraggy/taxokit/internal/cliutil"
)

// ArrayFlags contains flags shared by the slice and splice commands
type ArrayFlags struct {
	Start  optionalInt
	End    optionalInt
	Delete int
	Insert string
	Rest   string
	Suffix string
	Format string
}

func (f *ArrayFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.Rest, "rest", "", "element repeated an unknown number of times after the items")
	fs.StringVar(&f.Suffix, "suffix", "", "comma-separated elements after the rest element")
	fs.StringVar(&f.Format, "format", FormatText, "output format: text, json, or yaml")
}

// tuple builds the array shape described by items and the shape flags.
func (f *ArrayFlags) tuple(items []string) arrays.Tuple[string] {
	suffix := splitList(f.Suffix)
	if f.Rest == "" {
		return arrays.Fixed(slices.Concat(items, suffix)...)
	}
	return arrays.Variadic(items, f.Rest, suffix...)
}

// SetupSliceFlags creates and configures a FlagSet for the slice command.
func SetupSliceFlags() (*flag.FlagSet, *ArrayFlags) {
	fs := flag.NewFlagSet("slice", flag.ContinueOnError)
	fs.SetOutput(Stderr)
	flags := &ArrayFlags{}

	fs.Var(&flags.Start, "start", "start index (inclusive); negative counts from the end")
	fs.Var(&flags.End, "end", "end index (exclusive); negative counts from the end (default: through the end)")
	flags.register(fs)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: taxokit slice [flags] <items...>\n\n")
		cliutil.Writef(fs.Output(), "Print the result of Array.prototype.slice on the items.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  taxokit slice --end -1 0 1 2 3 4          # [0, 1, 2, 3]\n")
		cliutil.Writef(fs.Output(), "  taxokit slice --start 1 --rest tag id name  # [name, ...tag[]]\n")
	}

	return fs, flags
}

// HandleSlice executes the slice command
func HandleSlice(args []string) error {
	fs, flags := SetupSliceFlags()
	if done, err := parseFlags(fs, args); done {
		return err
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	t := flags.tuple(fs.Args())
	start, end := arrays.Omit, arrays.Omit
	if flags.Start.set {
		start = arrays.At(flags.Start.value)
	}
	if flags.End.set {
		end = arrays.At(flags.End.value)
		if err := arrays.CheckExpand(t, arrays.MaxExpand, flags.End.value); err != nil {
			return err
		}
	}
	return printTuple(arrays.Slice(t, start, end), flags.Format)
}

// SetupSpliceFlags creates and configures a FlagSet for the splice command.
func SetupSpliceFlags() (*flag.FlagSet, *ArrayFlags) {
	fs := flag.NewFlagSet("splice", flag.ContinueOnError)
	fs.SetOutput(Stderr)
	flags := &ArrayFlags{}

	fs.Var(&flags.Start, "start", "index at which to start changing the array (required)")
	fs.IntVar(&flags.Delete, "delete", 0, "number of elements to remove at start")
	fs.StringVar(&flags.Insert, "insert", "", "comma-separated elements to insert at start")
	flags.register(fs)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: taxokit splice --start N [flags] <items...>\n\n")
		cliutil.Writef(fs.Output(), "Print the array produced by Array.prototype.splice on the items.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  taxokit splice --start 1 --insert Feb,March January April June\n")
		cliutil.Writef(fs.Output(), "  taxokit splice --start -1 --delete 1 a b c   # [a, b]\n")
	}

	return fs, flags
}

// HandleSplice executes the splice command
func HandleSplice(args []string) error {
	fs, flags := SetupSpliceFlags()
	if done, err := parseFlags(fs, args); done {
		return err
	}
	if !flags.Start.set {
		fs.Usage()
		return fmt.Errorf("splice command requires --start")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	t := flags.tuple(fs.Args())
	if err := arrays.CheckExpand(t, arrays.MaxExpand, flags.Start.value); err != nil {
		return err
	}
	return printTuple(arrays.Splice(t, flags.Start.value, flags.Delete, splitList(flags.Insert)...), flags.Format)
}

// tupleView is the structured output of slice and splice.
type tupleView struct {
	Fixed  bool     `json:"fixed" yaml:"fixed"`
	Items  []string `json:"items" yaml:"items"`
	Rest   *string  `json:"rest,omitempty" yaml:"rest,omitempty"`
	Suffix []string `json:"suffix,omitempty" yaml:"suffix,omitempty"`
}

func printTuple(t arrays.Tuple[string], format string) error {
	if format != FormatText {
		items := t.Prefix
		if items == nil {
			items = []string{}
		}
		return OutputStructured(Stdout, tupleView{Fixed: t.IsFixed(), Items: items, Rest: t.Rest, Suffix: t.Suffix}, format)
	}
	cliutil.Writef(Stdout, "%s\n", FormatTuple(t))
	return nil
}

// FormatTuple renders t in TypeScript tuple notation, e.g. [a, ...b[], c].
func FormatTuple(t arrays.Tuple[string]) string {
	parts := make([]string, 0, len(t.Prefix)+len(t.Suffix)+1)
	parts = append(parts, t.Prefix...)
	if t.Rest != nil {
		parts = append(parts, "..."+*t.Rest+"[]")
	}
	parts = append(parts, t.Suffix...)
	return "[" + strings.Join(parts, ", ") + "]"
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
