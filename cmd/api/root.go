package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joefazee/holidays/app"
	"github.com/joefazee/holidays/internal/logger"
)

var version = "dev"

type rootOptions struct {
	configFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "holidays",
		Short:        "Country facts and public holiday calendars",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "path to a YAML config file (environment variables still apply)")

	cmd.AddCommand(
		newServeCmd(opts),
		newMigrateCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

func (o *rootOptions) load() (*app.Config, logger.Logger, error) {
	cfg, err := app.LoadConfig(o.configFile)
	if err != nil {
		return nil, nil, err
	}
	log := logger.NewZeroLogger(os.Stdout, logger.ParseLevel(cfg.LogLevel), logger.Fields{
		"service": "holidays",
		"env":     cfg.Env,
		"version": cfg.Version,
	})
	return cfg, log, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("holidays version %s\n", version)
		},
	}
}
