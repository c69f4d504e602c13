package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/querylab/gqlagent/introspection"
)

// tableEntry is one queryable table in a listing.
type tableEntry struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// listTables lists the object types reachable from the query root. Root
// fields that resolve to the same type (a table and its _by_pk lookup)
// collapse into one entry; aggregate wrapper types are skipped.
func listTables(deps *Deps) Tool {
	return Tool{
		Name: "list_tables",
		Description: "List the queryable tables (object types reachable from the " +
			"query root), alphabetically, with their descriptions.",
		Execute: func(ctx context.Context, _ map[string]any) (*Result, error) {
			schema, err := deps.Schema.Get(ctx)
			if err != nil {
				return nil, err
			}

			roots := introspection.ClassifyRoots(schema)
			if roots.Query == "" {
				return nil, fmt.Errorf("schema declares no query root: %w", introspection.ErrMalformedSchema)
			}
			queryType := schema.TypeByName(roots.Query)
			if queryType == nil {
				return nil, fmt.Errorf("query root type %q is not in the schema: %w", roots.Query, introspection.ErrMalformedSchema)
			}

			seen := make(map[string]struct{})
			tables := make([]tableEntry, 0, len(queryType.Fields))
			for _, field := range queryType.Fields {
				resolved, err := introspection.ResolveRef(&field.Type)
				if err != nil {
					return nil, err
				}
				if resolved.Kind != introspection.TypeKindObject {
					continue
				}
				if strings.HasSuffix(resolved.Name, "_aggregate") {
					continue
				}
				if _, ok := seen[resolved.Name]; ok {
					continue
				}
				seen[resolved.Name] = struct{}{}

				entry := tableEntry{Name: resolved.Name}
				if typ := schema.TypeByName(resolved.Name); typ != nil && typ.Description != nil {
					entry.Description = *typ.Description
				}
				tables = append(tables, entry)
			}

			sort.Slice(tables, func(i, j int) bool { return tables[i].Name < tables[j].Name })

			return jsonResult(map[string]any{"tables": tables})
		},
	}
}
