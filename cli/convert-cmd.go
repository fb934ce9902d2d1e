package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"go-maps-review-scraper/settings"
	"go-maps-review-scraper/urlconv"
)

// GetConvertCmdDef builds the share link expansion command.
func GetConvertCmdDef() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "convert-url <share-url>",
		Short: "Expand a share.google link to a full Maps place URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := settings.GetAppSettings()
			log := newLogger(config)
			defer log.Sync()

			conv := urlconv.NewConverter(30*time.Second, log)
			full, err := conv.Convert(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), full)
			return nil
		},
	}
	return cmd
}
