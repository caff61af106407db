package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/taxokit/casing"
	"github.com/erraggy/taxokit/keycase"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertKeysInput struct {
	JSON              string `json:"json"                         jsonschema:"The JSON document whose keys are renamed"`
	Style             string `json:"style"                        jsonschema:"Target key style: camel, pascal, kebab, snake or screaming-snake"`
	Shallow           bool   `json:"shallow,omitempty"            jsonschema:"Only rename top-level keys"`
	PreserveUppercase bool   `json:"preserve_uppercase,omitempty" jsonschema:"Keep runs of uppercase letters (acronyms) as written"`
}

type convertKeysOutput struct {
	Result string `json:"result"`
	Style  string `json:"style"`
}

func handleConvertKeys(_ context.Context, _ *mcp.CallToolRequest, input convertKeysInput) (*mcp.CallToolResult, convertKeysOutput, error) {
	if input.JSON == "" {
		return errResult(fmt.Errorf("json must not be empty")), convertKeysOutput{}, nil
	}
	style, err := casing.ParseStyle(input.Style)
	if err != nil {
		return errResult(err), convertKeysOutput{}, nil
	}
	conv := style.Converter(caseOptions(input.PreserveUppercase, nil)...)
	out, err := keycase.JSON([]byte(input.JSON), conv, !input.Shallow, keycase.WithMaxDepth(cfg.MaxDepth))
	if err != nil {
		return errResult(err), convertKeysOutput{}, nil
	}
	return nil, convertKeysOutput{Result: string(out), Style: style.String()}, nil
}
