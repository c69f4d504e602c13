package tools

import (
	"context"
	"sort"

	"github.com/querylab/gqlagent/introspection"
	"github.com/querylab/gqlagent/querygen"
)

type fieldArgEntry struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type fieldEntry struct {
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Description string          `json:"description,omitempty"`
	Args        []fieldArgEntry `json:"args,omitempty"`
}

// describeTable renders one type's fields with canonical display type
// strings, alphabetically.
func describeTable(deps *Deps) Tool {
	return Tool{
		Name: "describe_table",
		Description: "Describe one table (object type): every field with its " +
			"GraphQL type (e.g. [String]!), description and arguments.",
		Params: []Param{
			{Name: "table", Type: "string", Description: "Name of the table (object type) to describe.", Required: true},
		},
		Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
			table := stringArg(args, "table", "")

			schema, err := deps.Schema.Get(ctx)
			if err != nil {
				return nil, err
			}

			typ := schema.TypeByName(table)
			if typ == nil {
				return nil, querygen.NewValidationError("table %q not found in the schema, use list_tables to see what exists", table)
			}

			fields := make([]fieldEntry, 0, len(typ.Fields))
			for _, field := range typ.Fields {
				resolved, err := introspection.ResolveRef(&field.Type)
				if err != nil {
					return nil, err
				}

				entry := fieldEntry{Name: field.Name, Type: resolved.String()}
				if field.Description != nil {
					entry.Description = *field.Description
				}
				for _, arg := range field.Args {
					argResolved, err := introspection.ResolveRef(&arg.Type)
					if err != nil {
						return nil, err
					}
					entry.Args = append(entry.Args, fieldArgEntry{Name: arg.Name, Type: argResolved.String()})
				}
				fields = append(fields, entry)
			}

			sort.Slice(fields, func(i, j int) bool { return fields[i].Name < fields[j].Name })

			payload := map[string]any{
				"table":  table,
				"fields": fields,
			}
			if typ.Description != nil && *typ.Description != "" {
				payload["description"] = *typ.Description
			}

			return jsonResult(payload)
		},
	}
}
