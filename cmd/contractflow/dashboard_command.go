package main

import (
	"context"
	"io"
	"os"

	"github.com/dukex/contractflow/pkg/client"
	"github.com/dukex/contractflow/pkg/dashboard"
	"github.com/dukex/contractflow/pkg/services"
	"github.com/urfave/cli/v3"
)

const defaultServer = "http://localhost:9091"

func DashboardCommand() *cli.Command {
	return &cli.Command{
		Name:    "dashboard",
		Aliases: []string{"ls"},
		Usage:   "List contracts from a running API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Usage:   "Base URL of the contractflow API",
				Value:   defaultServer,
				Sources: cli.EnvVars("CONTRACTFLOW_SERVER"),
			},
			&cli.StringFlag{
				Name:    "status",
				Aliases: []string{"s"},
				Usage:   "Show only contracts in this status (All, Created, Approved, Sent, Signed, Locked, Revoked)",
				Value:   "All",
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			return runDashboard(ctx, client.New(command.String("server")), command.String("status"), output(command))
		},
	}
}

func runDashboard(ctx context.Context, c *client.Client, status string, w io.Writer) error {
	filter, err := services.ParseStatusFilter(status)
	if err != nil {
		return err
	}

	views, err := c.ListContracts(ctx, filter)
	if err != nil {
		return err
	}

	dashboard.FormatTable(w, views, filter)

	return nil
}

func output(command *cli.Command) io.Writer {
	if w := command.Root().Writer; w != nil {
		return w
	}

	return os.Stdout
}
