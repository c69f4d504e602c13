package tools

import (
	"context"
	"encoding/json"

	"github.com/querylab/gqlagent/introspection"
	"github.com/querylab/gqlagent/limits"
	"github.com/querylab/gqlagent/querygen"
)

// previewTable returns a bounded row preview over one table, selecting
// only scalar and enum fields. The limit ceiling is enforced before any
// request is sent.
func previewTable(deps *Deps) Tool {
	return Tool{
		Name: "preview_table",
		Description: "Preview rows from a table. Selects only scalar and enum " +
			"columns. The limit must stay at or under 100 unless allow_large is set.",
		Params: []Param{
			{Name: "table", Type: "string", Description: "Name of the table to preview.", Required: true},
			{
				Name: "limit", Type: "integer",
				Description: "Number of rows to return.",
				Default:     10, Minimum: float64ptr(1),
			},
			{Name: "offset", Type: "integer", Description: "Number of rows to skip.", Default: 0, Minimum: float64ptr(0)},
			{Name: "allow_large", Type: "boolean", Description: "Allow a limit above the 100-row ceiling.", Default: false},
		},
		Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
			table := stringArg(args, "table", "")
			limit := intArg(args, "limit", 10)
			offset := intArg(args, "offset", 0)
			allowLarge := boolArg(args, "allow_large", false)

			// Pre-flight ceiling: checked before the schema is even consulted.
			if err := limits.EnforceCeiling(limit, allowLarge); err != nil {
				return nil, err
			}

			schema, err := deps.Schema.Get(ctx)
			if err != nil {
				return nil, err
			}
			typ := schema.TypeByName(table)
			if typ == nil {
				return nil, querygen.NewValidationError("table %q not found in the schema, use list_tables to see what exists", table)
			}
			fields, err := introspection.ProjectableFields(typ)
			if err != nil {
				return nil, err
			}

			query, err := querygen.Preview(table, fields, limit, offset)
			if err != nil {
				return nil, err
			}

			data, err := deps.Exec.Execute(ctx, "PreviewTable", query.Document, query.Variables)
			if err != nil {
				return nil, err
			}

			var decoded any
			if err := json.Unmarshal(data, &decoded); err != nil {
				return nil, err
			}

			return jsonResult(map[string]any{"data": decoded})
		},
	}
}
