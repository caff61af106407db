package mcpserver

import (
	"context"

	"github.com/erraggy/taxokit/internal/options"
	"github.com/erraggy/taxokit/taxonomy"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type sourceInput struct {
	Name    string `json:"name"    jsonschema:"File name used in finding locations, e.g. auth-taxonomy.d.ts"`
	Content string `json:"content" jsonschema:"TypeScript declaration source"`
}

type validateInput struct {
	Root       string        `json:"root,omitempty"        jsonschema:"Directory tree to scan (default src)"`
	Sources    []sourceInput `json:"sources,omitempty"     jsonschema:"Inline declaration files to validate instead of a directory"`
	RulesFile  string        `json:"rules_file,omitempty"  jsonschema:"YAML naming rules file (overrides TAXOKIT_RULES_FILE)"`
	NoWarnings *bool         `json:"no_warnings,omitempty" jsonschema:"Suppress warnings from output"`
	Offset     int           `json:"offset,omitempty"      jsonschema:"Skip the first N errors/warnings (for pagination)"`
	Limit      int           `json:"limit,omitempty"       jsonschema:"Maximum number of errors/warnings to return (default 100). Applied independently to errors and warnings arrays."`
}

type validateFinding struct {
	Location string `json:"location,omitempty"`
	Taxonomy string `json:"taxonomy,omitempty"`
	Value    string `json:"value,omitempty"`
	Rule     string `json:"rule,omitempty"`
	Message  string `json:"message"`
}

type validateOutput struct {
	Valid        bool              `json:"valid"`
	ErrorCount   int               `json:"error_count"`
	WarningCount int               `json:"warning_count"`
	FilesScanned int               `json:"files_scanned"`
	Taxonomies   int               `json:"taxonomies"`
	Values       int               `json:"values"`
	Returned     int               `json:"returned"`
	Errors       []validateFinding `json:"errors,omitempty"`
	Warnings     []validateFinding `json:"warnings,omitempty"`
}

func handleValidate(_ context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	noWarnings := cfg.ValidateNoWarnings
	if input.NoWarnings != nil {
		noWarnings = *input.NoWarnings
	}
	if err := options.ValidateAtMostOneSource("input", "provide either root or sources, not both",
		input.Root != "", len(input.Sources) > 0); err != nil {
		return errResult(err), validateOutput{}, nil
	}

	opts := []taxonomy.Option{taxonomy.WithIncludeWarnings(!noWarnings)}
	if input.Root != "" {
		opts = append(opts, taxonomy.WithRoot(input.Root))
	}
	for _, src := range input.Sources {
		opts = append(opts, taxonomy.WithSource(src.Name, []byte(src.Content)))
	}
	rulesFile := cfg.RulesFile
	if input.RulesFile != "" {
		rulesFile = input.RulesFile
	}
	if rulesFile != "" {
		opts = append(opts, taxonomy.WithRulesFile(rulesFile))
	}
	if cfg.CacheEnabled {
		opts = append(opts, taxonomy.WithFileCache(fileCache))
	}

	result, err := taxonomy.ValidateWithOptions(opts...)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	output := validateOutput{
		Valid:        result.Valid,
		ErrorCount:   result.ErrorCount,
		WarningCount: result.WarningCount,
		FilesScanned: result.Stats.FilesScanned,
		Taxonomies:   result.Stats.Taxonomies,
		Values:       result.Stats.Values,
		Errors:       paginate(toFindings(result.Errors), input.Offset, input.Limit),
		Warnings:     paginate(toFindings(result.Warnings), input.Offset, input.Limit),
	}
	output.Returned = len(output.Errors) + len(output.Warnings)

	return nil, output, nil
}

func toFindings(in []taxonomy.Finding) []validateFinding {
	out := makeSlice[validateFinding](len(in))
	for _, f := range in {
		out = append(out, validateFinding{
			Location: f.Location(),
			Taxonomy: f.Taxonomy,
			Value:    f.Value,
			Rule:     f.Rule,
			Message:  f.Message,
		})
	}
	return out
}
