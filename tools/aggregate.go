package tools

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/querylab/gqlagent/querygen"
)

// aggregateData runs a count/sum/avg/min/max aggregate over one table
// with an optional where filter.
func aggregateData(deps *Deps) Tool {
	return Tool{
		Name: "aggregate_data",
		Description: "Aggregate over a table: count, or sum/avg/min/max of one " +
			"field. Accepts an optional where filter in the backend's boolean " +
			"expression format.",
		Params: []Param{
			{Name: "table", Type: "string", Description: "Name of the table to aggregate.", Required: true},
			{
				Name: "function", Type: "string",
				Description: "Aggregate function to apply.",
				Required:    true,
				Enum:        querygen.AggregateFunctions,
			},
			{Name: "field", Type: "string", Description: "Field to aggregate. Required for every function except count."},
			{Name: "where", Type: "object", Description: "Optional filter, e.g. {\"status\": {\"_eq\": \"open\"}}."},
		},
		Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
			table := stringArg(args, "table", "")
			function := strings.ToLower(stringArg(args, "function", ""))
			field := stringArg(args, "field", "")
			where := objectArg(args, "where")

			// Build first: function/field validation must fire before any
			// network round-trip, including the schema fetch.
			query, err := querygen.Aggregate(table, function, field, where)
			if err != nil {
				return nil, err
			}

			schema, err := deps.Schema.Get(ctx)
			if err != nil {
				return nil, err
			}
			if schema.TypeByName(table) == nil {
				return nil, querygen.NewValidationError("table %q not found in the schema, use list_tables to see what exists", table)
			}

			data, err := deps.Exec.Execute(ctx, "AggregateData", query.Document, query.Variables)
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
