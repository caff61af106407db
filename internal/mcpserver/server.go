// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes taxokit capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/taxokit"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `taxokit MCP server: converts identifier casing and object keys, computes array slice/splice results, and validates TypeScript taxonomy declaration files.

Configuration: All defaults are configurable via TAXOKIT_* environment variables set in your MCP client config.

Key settings:
- TAXOKIT_RESULT_LIMIT (default: 100): default page size for validation findings
- TAXOKIT_MAX_DEPTH (default: 100): maximum nesting depth for convert_keys
- TAXOKIT_MAX_EXPAND (default: 10000): how far past the known items array_slice and array_splice may index into a rest element
- TAXOKIT_VALIDATE_NO_WARNINGS (default: false): suppress warnings by default
- TAXOKIT_RULES_FILE: YAML naming rules used by validate_taxonomies
- TAXOKIT_CACHE_ENABLED (default: true): cache extracted taxonomy files
- TAXOKIT_CACHE_TTL (default: 15m): cache entry lifetime
- TAXOKIT_CACHE_MAX_SIZE (default: 32): maximum cached files

Caching: Extracted taxonomy files are cached per session, keyed by path, size and mtime, so edits are picked up on the next call. A background sweeper removes expired entries.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if cfg.CacheEnabled {
		fileCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}
	return newServer(taxokit.Version()).Run(ctx, &mcp.StdioTransport{})
}

func newServer(version string) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "taxokit", Version: version},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_case",
		Description: "Convert text to a naming style: camel, pascal, kebab, snake or screaming-snake. Words are split on separators, lower-to-upper humps and digit boundaries. Use preserve_uppercase to keep acronyms (foo-BAR-baz -> fooBARBaz in camel). Set split_numbers=false to keep digits attached to letters.",
	}, handleConvertCase)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "split_words",
		Description: "Split an identifier into the words used by convert_case. Useful to preview how a name will be converted.",
	}, handleSplitWords)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_keys",
		Description: "Rename the object keys of a JSON document to a naming style. Member order and all values are preserved. With shallow=true only top-level keys are renamed. Nesting is limited by TAXOKIT_MAX_DEPTH.",
	}, handleConvertKeys)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "array_slice",
		Description: "Compute Array.prototype.slice on an array shape. Provide items for a fixed array, or items plus rest (and optional suffix) for a variable-length array such as [a, ...b[], c]. Negative start/end count from the end of fixed arrays; omitted end means through the end.",
	}, handleArraySlice)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "array_splice",
		Description: "Compute the array produced by Array.prototype.splice without mutating the input: delete_count elements are removed at start and insert is placed there. Accepts fixed or variable-length array shapes like array_slice.",
	}, handleArraySplice)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_taxonomies",
		Description: "Validate string literal union values in TypeScript taxonomy declaration files (*taxonomy*.d.ts). Provide a root directory or inline sources. Values must be lowercase kebab-case, at most 30 characters and not reserved words. Returns errors and warnings with file:line:column locations. Use offset/limit to paginate; warnings can be suppressed with no_warnings.",
	}, handleValidate)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ResultLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ResultLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
