package main

import (
	"github.com/spf13/cobra"

	"github.com/joefazee/holidays/app/database"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or revert the postgres schema migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down"},
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}

			up := args[0] == "up"
			if err := database.Migrate(&cfg.DB, dir, up); err != nil {
				log.Error(err, map[string]interface{}{"direction": args[0]})
				return err
			}
			log.Info("migrations applied", map[string]interface{}{"direction": args[0], "dir": dir})
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "migrations", "directory holding the SQL migrations")
	return cmd
}
