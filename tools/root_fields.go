package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/querylab/gqlagent/introspection"
	"github.com/querylab/gqlagent/querygen"
)

type rootFieldEntry struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// listRootFields lists the fields of the declared operation roots,
// optionally filtered to one kind, and annotates the result with any
// root-like types the schema left unbound.
func listRootFields(deps *Deps) Tool {
	return Tool{
		Name: "list_root_fields",
		Description: "List the fields of the query/mutation/subscription roots. " +
			"Optionally filter by kind. Root-like types not registered as a root " +
			"are reported as a warning.",
		Params: []Param{
			{
				Name: "kind", Type: "string",
				Description: "Restrict the listing to one root kind.",
				Enum:        []string{"query", "mutation", "subscription"},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
			kind := stringArg(args, "kind", "")
			if kind != "" && kind != "query" && kind != "mutation" && kind != "subscription" {
				return nil, querygen.NewValidationError("unknown root kind %q, expected query, mutation or subscription", kind)
			}

			schema, err := deps.Schema.Get(ctx)
			if err != nil {
				return nil, err
			}

			roots := introspection.ClassifyRoots(schema)
			bindings := []struct {
				kind     string
				typeName string
			}{
				{"query", roots.Query},
				{"mutation", roots.Mutation},
				{"subscription", roots.Subscription},
			}

			payload := map[string]any{}
			for _, binding := range bindings {
				if kind != "" && binding.kind != kind {
					continue
				}
				if binding.typeName == "" {
					continue
				}
				typ := schema.TypeByName(binding.typeName)
				if typ == nil {
					return nil, fmt.Errorf("%s root type %q is not in the schema: %w",
						binding.kind, binding.typeName, introspection.ErrMalformedSchema)
				}

				entries := make([]rootFieldEntry, 0, len(typ.Fields))
				for _, field := range typ.Fields {
					resolved, err := introspection.ResolveRef(&field.Type)
					if err != nil {
						return nil, err
					}
					entry := rootFieldEntry{Name: field.Name, Type: resolved.String()}
					if field.Description != nil {
						entry.Description = *field.Description
					}
					entries = append(entries, entry)
				}
				sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
				payload[binding.kind] = entries
			}

			if len(roots.Suspects) > 0 {
				parts := make([]string, 0, len(roots.Suspects))
				for _, suspect := range roots.Suspects {
					parts = append(parts, fmt.Sprintf("%s (%d fields)", suspect.Name, suspect.FieldCount))
				}
				payload["warning"] = "root-like types not registered as an operation root: " + strings.Join(parts, ", ")
			}

			return jsonResult(payload)
		},
	}
}
