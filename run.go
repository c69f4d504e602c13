package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/querylab/gqlagent/client"
	"github.com/querylab/gqlagent/config"
	"github.com/querylab/gqlagent/introspection"
	"github.com/querylab/gqlagent/tools"
)

// run wires the configured endpoint into the tool set and serves it over
// stdio. Stdout carries the protocol, so logs go to stderr.
func run(ctx context.Context, configDir string, debug bool) error {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.LoadDefault(configDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	gqlClient := client.NewClient(cfg.Endpoint.URL,
		client.WithHeaders(cfg.Endpoint.HeaderMap()),
		client.WithLogger(logger),
	)
	cache := introspection.NewCache(gqlClient.FetchSchema, logger)

	srv := server.NewMCPServer("gqlagent", version)
	for _, tool := range tools.All(&tools.Deps{Exec: gqlClient, Schema: cache, Logger: logger}) {
		srv.AddTool(toolDefinition(tool), toolHandler(tool))
	}

	logger.Info("serving", "endpoint", cfg.Endpoint.URL)
	if err := server.ServeStdio(srv); err != nil {
		return fmt.Errorf("stdio server stopped: %w", err)
	}

	return nil
}

// toolDefinition maps one operation's declarative parameter set onto the
// wire tool description.
func toolDefinition(tool tools.Tool) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(tool.Description)}
	for _, param := range tool.Params {
		var propOpts []mcp.PropertyOption
		if param.Description != "" {
			propOpts = append(propOpts, mcp.Description(param.Description))
		}
		if param.Required {
			propOpts = append(propOpts, mcp.Required())
		}
		if len(param.Enum) > 0 {
			propOpts = append(propOpts, mcp.Enum(param.Enum...))
		}

		switch param.Type {
		case "integer":
			if def, ok := param.Default.(int); ok {
				propOpts = append(propOpts, mcp.DefaultNumber(float64(def)))
			}
			if param.Minimum != nil {
				propOpts = append(propOpts, mcp.Min(*param.Minimum))
			}
			if param.Maximum != nil {
				propOpts = append(propOpts, mcp.Max(*param.Maximum))
			}
			opts = append(opts, mcp.WithNumber(param.Name, propOpts...))
		case "boolean":
			if def, ok := param.Default.(bool); ok {
				propOpts = append(propOpts, mcp.DefaultBool(def))
			}
			opts = append(opts, mcp.WithBoolean(param.Name, propOpts...))
		case "object":
			opts = append(opts, mcp.WithObject(param.Name, propOpts...))
		default:
			if def, ok := param.Default.(string); ok {
				propOpts = append(propOpts, mcp.DefaultString(def))
			}
			opts = append(opts, mcp.WithString(param.Name, propOpts...))
		}
	}

	return mcp.NewTool(tool.Name, opts...)
}

func toolHandler(tool tools.Tool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := tool.Execute(ctx, request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		out := mcp.NewToolResultText(result.Content)
		out.IsError = result.IsError

		return out, nil
	}
}
