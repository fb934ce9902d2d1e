package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go-maps-review-scraper/settings"
)

// RegisterCommands attaches every subcommand to the root.
func RegisterCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(GetScrapeCmdDef())
	rootCmd.AddCommand(GetCleanCmdDef())
	rootCmd.AddCommand(GetConvertCmdDef())
}

func newLogger(config settings.AppConfig) *zap.Logger {
	var log *zap.Logger
	var err error
	if config.Debug || config.IsDevelopment {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return log
}
