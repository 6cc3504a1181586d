package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/solatis/cronconv/internal/core/api"
	"github.com/solatis/cronconv/internal/core/server"
)

func newServeCmd(c *cli) *cobra.Command {
	var withCatalog bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the gRPC conversion service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger, err := c.newLogger(cmd)
			if err != nil {
				return err
			}
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			converter, err := newConverter(cfg)
			if err != nil {
				return err
			}

			var schedules api.ScheduleStore
			if withCatalog {
				store, database, err := openCatalog(ctx, cfg, converter)
				if err != nil {
					return err
				}
				defer database.Close()
				schedules = store
			}

			service, err := api.NewConverterService(converter, schedules)
			if err != nil {
				return fmt.Errorf("failed to create service: %w", err)
			}

			grpcServer, err := server.NewGRPCServer(&cfg.Server, service, logger)
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}

			logger.Info("starting cronconv", "version", Version, "host", cfg.Server.Host, "port", cfg.Server.Port, "catalog", withCatalog)
			errChan := make(chan error, 1)
			go func() {
				errChan <- grpcServer.Start(ctx)
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case err := <-errChan:
				return err
			case <-sigChan:
				logger.Info("shutting down gracefully")
				return grpcServer.Shutdown(context.Background())
			}
		},
	}
	cmd.Flags().String("host", "", "gRPC server host")
	cmd.Flags().Int("port", 0, "gRPC server port")
	cmd.Flags().BoolVar(&withCatalog, "catalog", false, "serve GetSchedule from the catalog database")
	addConverterFlags(cmd)
	return cmd
}
