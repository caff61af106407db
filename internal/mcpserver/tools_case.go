package mcpserver

import (
	"context"

	"github.com/erraggy/taxokit/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertCaseInput struct {
	Text              string `json:"text"                         jsonschema:"The text to convert"`
	Style             string `json:"style"                        jsonschema:"Target style: camel, pascal, kebab, snake or screaming-snake"`
	PreserveUppercase bool   `json:"preserve_uppercase,omitempty" jsonschema:"Keep runs of uppercase letters (acronyms) as written"`
	SplitNumbers      *bool  `json:"split_numbers,omitempty"      jsonschema:"Treat letter/digit boundaries as word breaks (default true)"`
}

type convertCaseOutput struct {
	Result string `json:"result"`
	Style  string `json:"style"`
}

func handleConvertCase(_ context.Context, _ *mcp.CallToolRequest, input convertCaseInput) (*mcp.CallToolResult, convertCaseOutput, error) {
	style, err := casing.ParseStyle(input.Style)
	if err != nil {
		return errResult(err), convertCaseOutput{}, nil
	}
	opts := caseOptions(input.PreserveUppercase, input.SplitNumbers)
	return nil, convertCaseOutput{
		Result: style.Convert(input.Text, opts...),
		Style:  style.String(),
	}, nil
}

type splitWordsInput struct {
	Text         string `json:"text"                    jsonschema:"The identifier to split"`
	SplitNumbers *bool  `json:"split_numbers,omitempty" jsonschema:"Treat letter/digit boundaries as word breaks (default true)"`
}

type splitWordsOutput struct {
	Words []string `json:"words"`
	Count int      `json:"count"`
}

func handleSplitWords(_ context.Context, _ *mcp.CallToolRequest, input splitWordsInput) (*mcp.CallToolResult, splitWordsOutput, error) {
	words := casing.SplitWords(input.Text, caseOptions(false, input.SplitNumbers)...)
	if words == nil {
		words = []string{}
	}
	return nil, splitWordsOutput{Words: words, Count: len(words)}, nil
}

func caseOptions(preserve bool, splitNumbers *bool) []casing.Option {
	var opts []casing.Option
	if preserve {
		opts = append(opts, casing.PreserveConsecutiveUppercase(true))
	}
	if splitNumbers != nil {
		opts = append(opts, casing.SplitOnNumbers(*splitNumbers))
	}
	return opts
}
