package tools

import (
	"context"
	"encoding/json"

	"github.com/querylab/gqlagent/querygen"
)

// runMutation executes a caller-supplied mutation document verbatim.
// Mutation responses are small by construction, so no trimming applies.
func runMutation(deps *Deps) Tool {
	return Tool{
		Name: "run_graphql_mutation",
		Description: "Run an arbitrary GraphQL mutation with bound variables. " +
			"The document must start with the mutation keyword.",
		Params: []Param{
			{Name: "mutation", Type: "string", Description: "The GraphQL mutation document.", Required: true},
			{Name: "variables", Type: "object", Description: "Variables bound to the document."},
		},
		Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
			document := stringArg(args, "mutation", "")
			variables := objectArg(args, "variables")

			if err := querygen.CheckRole(document, querygen.RoleMutation); err != nil {
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

			return jsonResult(map[string]any{"data": decoded})
		},
	}
}
