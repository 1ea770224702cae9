package main

import (
	"github.com/spf13/cobra"

	"assetmgmt/pkg/assets"
	"assetmgmt/pkg/db"
	"assetmgmt/pkg/seed"
)

var seedCount int

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert random assets for local development",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("count") {
			seedCount = cfg.SeedCount
		}

		pool, err := db.Connect(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer pool.Close()

		_, err = seed.Run(cmd.Context(), assets.NewPostgresAssetRepository(pool), seedCount, logger)
		return err
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedCount, "count", 99, "number of assets to insert")
}
