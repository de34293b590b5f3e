package main

import (
	"context"
	"os"

	"github.com/dukex/contractflow/pkg/log"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:                  "contractflow",
		Usage:                 "Define contract blueprints and move contracts through approval",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			APICommand(),
			DashboardCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.WithModule("main").Error("Command failed", "error", err)
		os.Exit(1)
	}
}
