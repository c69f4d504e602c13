// Package tools defines the operations the server exposes to a calling
// agent: schema discovery, type description, bounded preview, aggregation
// and passthrough execution. Each operation declares its parameters as
// data so the transport layer can publish them without knowing GraphQL.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/querylab/gqlagent/introspection"
)

// Executor executes one GraphQL document against the backend.
type Executor interface {
	Execute(ctx context.Context, operationName, query string, variables map[string]any) (json.RawMessage, error)
}

// SchemaSource supplies the cached introspected schema.
type SchemaSource interface {
	Get(ctx context.Context) (*introspection.Schema, error)
}

// Deps are the collaborators every operation draws on.
type Deps struct {
	Exec   Executor
	Schema SchemaSource
	Logger *slog.Logger
}

// Param declares one operation parameter for the transport layer.
type Param struct {
	Name        string
	Type        string // string, integer, boolean, object
	Description string
	Required    bool
	Default     any
	Enum        []string
	Minimum     *float64
	Maximum     *float64
}

// Result is one operation's outcome: a JSON text payload, plus the error
// flag for the single operation that reports failure as data.
type Result struct {
	Content string
	IsError bool
}

// Tool is one exposed operation.
type Tool struct {
	Name        string
	Description string
	Params      []Param
	Execute     func(ctx context.Context, args map[string]any) (*Result, error)
}

// All builds the full operation set.
func All(deps *Deps) []Tool {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	return []Tool{
		healthCheck(deps),
		listTables(deps),
		describeTable(deps),
		listRootFields(deps),
		previewTable(deps),
		aggregateData(deps),
		runQuery(deps),
		runMutation(deps),
	}
}

func jsonResult(payload any) (*Result, error) {
	content, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}

	return &Result{Content: string(content)}, nil
}

func float64ptr(v float64) *float64 {
	return &v
}
