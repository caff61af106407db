package mcpserver

import (
	"context"
	"slices"

	"github.com/erraggy/taxokit/arrays"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// newTuple builds a fixed array (rest nil) or a variable-length array shape
// [...items, ...rest[], ...suffix].
func newTuple(items []string, rest *string, suffix []string) arrays.Tuple[string] {
	if rest == nil {
		return arrays.Fixed(slices.Concat(items, suffix)...)
	}
	return arrays.Variadic(items, *rest, suffix...)
}

type tupleOutput struct {
	Fixed  bool     `json:"fixed"`
	Items  []string `json:"items"`
	Rest   *string  `json:"rest,omitempty"`
	Suffix []string `json:"suffix,omitempty"`
}

func newTupleOutput(t arrays.Tuple[string]) tupleOutput {
	out := tupleOutput{Fixed: t.IsFixed(), Items: t.Prefix, Rest: t.Rest, Suffix: t.Suffix}
	if out.Items == nil {
		out.Items = []string{}
	}
	return out
}

type arraySliceInput struct {
	Items  []string `json:"items,omitempty"  jsonschema:"Elements of a fixed array, or the known prefix of a variable-length array"`
	Rest   *string  `json:"rest,omitempty"   jsonschema:"Element repeated an unknown number of times; makes the array variable-length"`
	Suffix []string `json:"suffix,omitempty" jsonschema:"Known elements after the rest element"`
	Start  *int     `json:"start,omitempty"  jsonschema:"Start index (inclusive); negative counts from the end"`
	End    *int     `json:"end,omitempty"    jsonschema:"End index (exclusive); negative counts from the end; omitted means through the end"`
}

func handleArraySlice(_ context.Context, _ *mcp.CallToolRequest, input arraySliceInput) (*mcp.CallToolResult, tupleOutput, error) {
	t := newTuple(input.Items, input.Rest, input.Suffix)
	start, end := arrays.Omit, arrays.Omit
	if input.Start != nil {
		start = arrays.At(*input.Start)
	}
	if input.End != nil {
		end = arrays.At(*input.End)
		if err := arrays.CheckExpand(t, expandLimit(), *input.End); err != nil {
			return errResult(err), tupleOutput{}, nil
		}
	}
	return nil, newTupleOutput(arrays.Slice(t, start, end)), nil
}

type arraySpliceInput struct {
	Items       []string `json:"items,omitempty"        jsonschema:"Elements of a fixed array, or the known prefix of a variable-length array"`
	Rest        *string  `json:"rest,omitempty"         jsonschema:"Element repeated an unknown number of times; makes the array variable-length"`
	Suffix      []string `json:"suffix,omitempty"       jsonschema:"Known elements after the rest element"`
	Start       int      `json:"start"                  jsonschema:"Index at which to start changing the array; negative counts from the end"`
	DeleteCount int      `json:"delete_count,omitempty" jsonschema:"Number of elements to remove at start"`
	Insert      []string `json:"insert,omitempty"       jsonschema:"Elements inserted at start"`
}

func handleArraySplice(_ context.Context, _ *mcp.CallToolRequest, input arraySpliceInput) (*mcp.CallToolResult, tupleOutput, error) {
	t := newTuple(input.Items, input.Rest, input.Suffix)
	if err := arrays.CheckExpand(t, expandLimit(), input.Start); err != nil {
		return errResult(err), tupleOutput{}, nil
	}
	return nil, newTupleOutput(arrays.Splice(t, input.Start, input.DeleteCount, input.Insert...)), nil
}

// expandLimit caps how many times a rest element may be repeated in a result.
func expandLimit() int {
	return min(cfg.MaxExpand, arrays.MaxExpand)
}
