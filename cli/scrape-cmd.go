package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go-maps-review-scraper/scraper"
	"go-maps-review-scraper/services/apify"
	"go-maps-review-scraper/settings"
)

// GetScrapeCmdDef builds the batch collection command.
func GetScrapeCmdDef() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "scrape",
		Short: "Collect reviews for every restaurant in the input lists",
		Long: "Run the hosted scraping actor for every restaurant descriptor, " +
			"rotating accounts as credits run out, and write the collected " +
			"reviews as CSV and JSON.",
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir := cmd.Flag("rest-data").Value.String()
			outPrefix := cmd.Flag("output").Value.String()
			return runScrape(cmd.Context(), dataDir, outPrefix)
		},
	}
	cmd.PersistentFlags().StringP("rest-data", "d", "", "directory holding the restaurant list files.")
	cmd.PersistentFlags().StringP("output", "o", "manhattan_reviews_final", "basename for the final CSV/JSON files.")
	return cmd
}

func runScrape(ctx context.Context, dataDir, outPrefix string) error {
	config := settings.GetAppSettings()
	log := newLogger(config)
	defer log.Sync()

	if dataDir == "" {
		dataDir = config.RestDataDir
	}
	if len(config.ApifyTokens) == 0 {
		return errors.New("at least one API token is required, set APIFY_TOKENS")
	}

	restaurants, err := scraper.LoadRestaurants(dataDir, scraper.DefaultRestaurantFiles)
	if err != nil {
		return err
	}
	log.Info("loaded restaurants",
		zap.Int("count", len(restaurants)),
		zap.Int("files", len(scraper.DefaultRestaurantFiles)))

	clients := make([]*apify.Client, 0, len(config.ApifyTokens))
	for _, token := range config.ApifyTokens {
		clients = append(clients, apify.NewClient(config.ApifyBaseURL, token))
	}

	exporter, err := scraper.NewExporter(config.OutputDir, log)
	if err != nil {
		return err
	}

	s, err := scraper.NewMultiAccountScraper(clients, exporter, scraper.Options{
		ActorID:              config.ApifyActorID,
		MaxRetries:           config.MaxRetries,
		RetryDelay:           config.RetryDelay(),
		PollInterval:         config.PollInterval(),
		RunTimeout:           config.RunTimeout(),
		ReviewsPerRestaurant: config.ReviewsPerRestaurant,
		ReviewsSort:          config.ReviewsSort,
		SaveInterval:         config.SaveInterval,
		DelayMin:             config.DelayMin(),
		DelayMax:             config.DelayMax(),
	}, log)
	if err != nil {
		return err
	}
	log.Info("initialized accounts",
		zap.Int("accounts", len(clients)),
		zap.Int("estimated_capacity", len(clients)*10000),
		zap.Int("max_retries", config.MaxRetries))

	reviews, err := s.Run(ctx, restaurants)
	if err != nil {
		log.Error("fatal error during scraping", zap.Error(err))
		// best effort dump of whatever made it in before the failure
		if saveErr := exporter.SaveCSV(reviews, outPrefix+"_emergency_save.csv"); saveErr != nil {
			log.Error("emergency save failed", zap.Error(saveErr))
		}
		return err
	}

	if err := exporter.SaveCSV(reviews, outPrefix+".csv"); err != nil {
		return err
	}
	if err := exporter.SaveJSON(reviews, outPrefix+".json"); err != nil {
		return err
	}

	logSummary(log, scraper.Summarize(reviews))
	return nil
}

func logSummary(log *zap.Logger, sum scraper.Summary) {
	log.Info("summary statistics",
		zap.Int("total_reviews", sum.TotalReviews),
		zap.Any("by_neighborhood", sum.ByNeighborhood),
		zap.Any("by_cuisine", sum.ByCuisine),
		zap.Float64("average_rating", sum.AverageRating),
		zap.Float64("average_review_length", sum.AverageLength),
		zap.Int("owner_responses", sum.OwnerResponses),
		zap.Int("local_guide_reviews", sum.LocalGuideReviews))
}
