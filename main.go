package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

const version = "0.3.0"

var versionCmd = &cli.Command{
	Name:  "version",
	Usage: "print the version",
	Action: func(ctx *cli.Context) error {
		fmt.Println(version)
		return nil
	},
}

var serveCmd = &cli.Command{
	Name:  "serve",
	Usage: "serve the GraphQL exploration tools over stdio",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "configdir", Aliases: []string{"c"}, Usage: "the directory with configuration file", Value: "."},
		&cli.BoolFlag{Name: "debug", Usage: "enable debug logging"},
	},
	Action: func(ctx *cli.Context) error {
		return run(ctx.Context, ctx.String("configdir"), ctx.Bool("debug"))
	},
}

func main() {
	app := cli.NewApp()
	app.Name = "gqlagent"
	app.Description = "Tool server that lets an agent explore and query a GraphQL backend without GraphQL expertise"
	app.Usage = serveCmd.Usage
	app.DefaultCommand = "serve"
	app.Commands = []*cli.Command{
		versionCmd,
		serveCmd,
	}

	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprint(os.Stderr, err.Error()+"\n")
		os.Exit(1)
	}
}
