package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dukex/contractflow/pkg/cmd"
	"github.com/dukex/contractflow/pkg/log"
	"github.com/dukex/contractflow/pkg/services"
	"github.com/urfave/cli/v3"
)

const defaultPort = 9091

func APICommand() *cli.Command {
	return &cli.Command{
		Name:    "api",
		Aliases: []string{"serve"},
		Usage:   "Start the REST API",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to run the API server on",
				Value:   defaultPort,
				Sources: cli.EnvVars("PORT"),
			},
			&cli.StringFlag{
				Name:    "event-bus",
				Usage:   "Event bus type (gochannel, kafka)",
				Value:   cmd.EventBusGoChannel,
				Sources: cli.EnvVars("EVENT_BUS_TYPE"),
			},
			&cli.StringFlag{
				Name:    "kafka-brokers",
				Usage:   "Comma-separated Kafka broker addresses",
				Sources: cli.EnvVars("KAFKA_BROKERS"),
			},
			&cli.BoolFlag{
				Name:    "tracing",
				Usage:   "Export traces over OTLP/HTTP",
				Sources: cli.EnvVars("TRACING_ENABLED"),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))

			logger := log.WithModule("api")
			logger.InfoContext(ctx, "Initializing Contractflow API")

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			tracer, shutdownTracing, err := cmd.NewTracing(ctx, command.Bool("tracing"), "contractflow")
			if err != nil {
				return err
			}

			defer func() {
				if err := shutdownTracing(context.Background()); err != nil {
					logger.Error("Failed to shut down tracing", "error", err)
				}
			}()

			eventBus, err := cmd.NewEventBus(command.String("event-bus"), command.String("kafka-brokers"), logger)
			if err != nil {
				return err
			}

			defer func() {
				if err := eventBus.Close(); err != nil {
					logger.Error("Failed to close event bus", "error", err)
				}
			}()

			if err := subscribeActivityLog(ctx, eventBus, log.WithModule("activity")); err != nil {
				return err
			}

			session := services.NewSession(
				services.WithPublisher(eventBus),
				services.WithTracer(tracer),
				services.WithLogger(log.WithModule("services")),
			)
			defer session.Close()

			return NewAPI(logger, session).Start(ctx, command.Int("port"))
		},
	}
}
