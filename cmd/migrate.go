package main

import (
	"github.com/spf13/cobra"

	"assetmgmt/pkg/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the assets table if it does not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		cfg.ApplySchemaOnStart = true

		pool, err := db.Connect(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		pool.Close()
		return nil
	},
}
