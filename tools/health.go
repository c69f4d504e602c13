package tools

import (
	"context"
	"time"
)

const healthProbe = `query HealthCheck { __typename }`

// healthCheck reports backend reachability as data rather than aborting
// the caller: a down backend is a finding, not a crash.
func healthCheck(deps *Deps) Tool {
	return Tool{
		Name: "health_check",
		Description: "Check connectivity to the GraphQL endpoint. Returns " +
			"{healthy, duration_ms} and, on failure, the error as data instead of raising.",
		Execute: func(ctx context.Context, _ map[string]any) (*Result, error) {
			start := time.Now()
			_, err := deps.Exec.Execute(ctx, "HealthCheck", healthProbe, nil)
			elapsed := time.Since(start)

			payload := map[string]any{
				"healthy":     err == nil,
				"duration_ms": elapsed.Milliseconds(),
			}
			if err != nil {
				payload["error"] = err.Error()
				deps.Logger.Warn("health check failed", "error", err)
			}

			return jsonResult(payload)
		},
	}
}
