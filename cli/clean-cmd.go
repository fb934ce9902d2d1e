package cli

import (
	"github.com/spf13/cobra"

	"go-maps-review-scraper/pipeline"
	"go-maps-review-scraper/settings"
)

// GetCleanCmdDef builds the offline cleaning command.
func GetCleanCmdDef() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "clean",
		Short: "Deduplicate and normalize a collected review CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.Flag("in").Value.String()
			out := cmd.Flag("out").Value.String()
			dict := cmd.Flag("dict").Value.String()

			config := settings.GetAppSettings()
			log := newLogger(config)
			defer log.Sync()

			return pipeline.CleanFile(in, out, dict, log)
		},
	}
	cmd.PersistentFlags().StringP("in", "i", "", "collected reviews CSV.")
	cmd.PersistentFlags().StringP("out", "o", "", "cleaned CSV destination.")
	cmd.PersistentFlags().String("dict", "", "optional data dictionary markdown destination.")
	cmd.MarkPersistentFlagRequired("in")
	cmd.MarkPersistentFlagRequired("out")
	return cmd
}
