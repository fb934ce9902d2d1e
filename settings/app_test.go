package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetAppSettingsDefaults(t *testing.T) {
	config := GetAppSettings()
	require.Equal(t, "https://api.apify.com", config.ApifyBaseURL)
	require.Equal(t, "compass~google-maps-reviews-scraper", config.ApifyActorID)
	require.Equal(t, 3, config.MaxRetries)
	require.Equal(t, 5, config.SaveInterval)
	require.Equal(t, 50, config.ReviewsPerRestaurant)
	require.Equal(t, "newest", config.ReviewsSort)
	require.Equal(t, "rest_data", config.RestDataDir)
	require.Equal(t, "output", config.OutputDir)
	require.Equal(t, 2*time.Second, config.RetryDelay())
	require.Equal(t, 5*time.Second, config.PollInterval())
	require.Equal(t, 10*time.Minute, config.RunTimeout())
	require.Equal(t, 3*time.Second, config.DelayMin())
	require.Equal(t, 7*time.Second, config.DelayMax())
}

func TestGetAppSettingsTokenList(t *testing.T) {
	t.Setenv("APIFY_TOKENS", "apify_api_one,apify_api_two,apify_api_three")
	t.Setenv("SAVE_INTERVAL", "10")

	config := GetAppSettings()
	require.Equal(t, []string{"apify_api_one", "apify_api_two", "apify_api_three"}, config.ApifyTokens)
	require.Equal(t, 10, config.SaveInterval)
}
