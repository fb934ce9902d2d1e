package settings

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// AppConfig type AppConfig
type AppConfig struct {
	IsDevelopment bool   `envconfig:"IS_DEVELOPMENT"`
	Debug         bool   `envconfig:"DEBUG"`
	Env           string `envconfig:"APP_ENV"`

	ApifyTokens  []string `envconfig:"APIFY_TOKENS"`
	ApifyBaseURL string   `envconfig:"APIFY_BASE_URL" default:"https://api.apify.com"`
	ApifyActorID string   `envconfig:"APIFY_ACTOR_ID" default:"compass~google-maps-reviews-scraper"`

	MaxRetries           int    `envconfig:"MAX_RETRIES" default:"3"`
	RetryDelaySeconds    int    `envconfig:"RETRY_DELAY_SECONDS" default:"2"`
	SaveInterval         int    `envconfig:"SAVE_INTERVAL" default:"5"`
	ReviewsPerRestaurant int    `envconfig:"REVIEWS_PER_RESTAURANT" default:"50"`
	ReviewsSort          string `envconfig:"REVIEWS_SORT" default:"newest"`
	DelayMinSeconds      int    `envconfig:"DELAY_MIN_SECONDS" default:"3"`
	DelayMaxSeconds      int    `envconfig:"DELAY_MAX_SECONDS" default:"7"`
	PollIntervalSeconds  int    `envconfig:"POLL_INTERVAL_SECONDS" default:"5"`
	RunTimeoutSeconds    int    `envconfig:"RUN_TIMEOUT_SECONDS" default:"600"`

	RestDataDir string `envconfig:"REST_DATA_DIR" default:"rest_data"`
	OutputDir   string `envconfig:"OUTPUT_DIR" default:"output"`
}

func (me AppConfig) RetryDelay() time.Duration {
	return time.Duration(me.RetryDelaySeconds) * time.Second
}

func (me AppConfig) PollInterval() time.Duration {
	return time.Duration(me.PollIntervalSeconds) * time.Second
}

func (me AppConfig) RunTimeout() time.Duration {
	return time.Duration(me.RunTimeoutSeconds) * time.Second
}

func (me AppConfig) DelayMin() time.Duration {
	return time.Duration(me.DelayMinSeconds) * time.Second
}

func (me AppConfig) DelayMax() time.Duration {
	return time.Duration(me.DelayMaxSeconds) * time.Second
}

// GetAppSettings Collects all configs
func GetAppSettings() AppConfig {
	_ = godotenv.Load()

	AllConfig := AppConfig{}

	err := envconfig.Process("", &AllConfig)
	if err != nil {
		panic(err)
	}

	return AllConfig
}
