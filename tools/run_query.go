package tools

import (
	"context"
	"encoding/json"

	"github.com/querylab/gqlagent/limits"
	"github.com/querylab/gqlagent/querygen"
)

// runQuery executes a caller-supplied read-only document verbatim. The
// response is trimmed recursively when any array exceeds the ceiling,
// unless allow_large_result is set.
func runQuery(deps *Deps) Tool {
	return Tool{
		Name: "run_graphql_query",
		Description: "Run an arbitrary read-only GraphQL query with bound " +
			"variables. Mutations are rejected; use run_graphql_mutation. Arrays " +
			"over 100 entries are trimmed unless allow_large_result is set.",
		Params: []Param{
			{Name: "query", Type: "string", Description: "The GraphQL query document.", Required: true},
			{Name: "variables", Type: "object", Description: "Variables bound to the document."},
			{Name: "allow_large_result", Type: "boolean", Description: "Return the response untrimmed.", Default: false},
		},
		Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
			document := stringArg(args, "query", "")
			variables := objectArg(args, "variables")
			allowLarge := boolArg(args, "allow_large_result", false)

			if err := querygen.CheckRole(document, querygen.RoleQuery); err != nil {
				return nil, err
			}

			data, err := deps.Exec.Execute(ctx, "", document, variables)
			if err != nil {
				return nil, err
			}

			var decoded any
			if err := json.Unmarshal(data, &decoded); err != nil {
				return nil, err
			}

			trimmed, truncations := limits.Trim(decoded, allowLarge)
			payload := map[string]any{"data": trimmed}
			if len(truncations) > 0 {
				payload["warning"] = limits.Warning(truncations)
				deps.Logger.Info("query result trimmed", "truncations", len(truncations))
			}

			return jsonResult(payload)
		},
	}
}
