package config

import (
	"errors"
	"fmt"
	"leaguelookup/pkg/regions"
	queuevalues "leaguelookup/pkg/riotvalues/queue"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Single rate limit window.
type LimitWindow struct {
	Count         int
	ResetInterval time.Duration
}

// Riot rate limit windows for the development/production key.
type LimitsConfiguration struct {
	Lower  LimitWindow
	Higher LimitWindow
}

// RiotConfiguration contains everything the remote client needs.
type RiotConfiguration struct {
	ApiKey         string
	Region         regions.SubRegion
	BaseURL        string
	RequestTimeout time.Duration
	Limits         LimitsConfiguration
}

// HistoryConfiguration controls the match history window.
type HistoryConfiguration struct {
	// Pause before the match detail fan-out, keeps the burst inside the key budget.
	Cooldown time.Duration
	// Number of recent matches requested.
	Window int
	// Queues accepted on the match list.
	Queues []int
}

// LiveConfiguration controls the live match aggregation.
type LiveConfiguration struct {
	FailFast bool
}

// Redis configuration struct.
type RedisConfiguration struct {
	Host     string
	Port     string
	Password string
}

// Enabled reports if a redis host was configured.
func (r RedisConfiguration) Enabled() bool {
	return r.Host != ""
}

// Bucket configuration for the log uploads.
type BucketConfiguration struct {
	Region       string
	AccessKey    string
	AccessSecret string
	Endpoint     string
	LogBucket    string
}

// Enabled reports if the bucket can be used.
func (b BucketConfiguration) Enabled() bool {
	return b.LogBucket != "" && b.AccessKey != "" && b.AccessSecret != ""
}

// MetricsConfiguration for the pushgateway.
type MetricsConfiguration struct {
	PushgatewayURL string
	Job            string
}

// Config is the full application configuration.
type Config struct {
	Riot     RiotConfiguration
	History  HistoryConfiguration
	Live     LiveConfiguration
	Redis    RedisConfiguration
	Bucket   BucketConfiguration
	Metrics  MetricsConfiguration
	LogLevel string
}

// Default returns a configuration with the default values and no API key.
func Default() *Config {
	return &Config{
		Riot: RiotConfiguration{
			Region:         "NA1",
			RequestTimeout: 10 * time.Second,
			Limits: LimitsConfiguration{
				Lower:  LimitWindow{Count: 20, ResetInterval: time.Second},
				Higher: LimitWindow{Count: 100, ResetInterval: 2 * time.Minute},
			},
		},
		History: HistoryConfiguration{
			Cooldown: 300 * time.Millisecond,
			Window:   20,
			Queues:   append([]int(nil), queuevalues.HistoryQueues...),
		},
		Metrics: MetricsConfiguration{
			Job: "leaguelookup",
		},
		LogLevel: "info",
	}
}

// LoadOptions are the values given by the caller, like command line flags.
type LoadOptions struct {
	// Region replaces RIOT_REGION when set.
	Region string
	// Commands that never call the Riot API can run without a key.
	SkipAPIKey bool
}

// Load the .env file (outside docker) and the environment variables.
func Load(opts LoadOptions) (*Config, error) {
	if os.Getenv("ENVIRONMENT") != "docker" {
		// The .env is optional, the variables can come from the environment.
		_ = godotenv.Load()
	}

	cfg := Default()

	cfg.Riot.ApiKey = os.Getenv("RIOT_API_KEY")
	if cfg.Riot.ApiKey == "" && !opts.SkipAPIKey {
		return nil, errors.New("RIOT_API_KEY is required")
	}

	// The option wins over the environment, only the chosen one is validated.
	region := opts.Region
	if region == "" {
		region = os.Getenv("RIOT_REGION")
	}
	if region != "" {
		cfg.Riot.Region = regions.SubRegion(strings.ToUpper(region))
	}
	if !regions.IsSubRegion(cfg.Riot.Region) {
		return nil, fmt.Errorf("invalid region %s", cfg.Riot.Region)
	}

	cfg.Riot.BaseURL = os.Getenv("RIOT_BASE_URL")

	var err error
	if cfg.Riot.RequestTimeout, err = getDuration("RIOT_REQUEST_TIMEOUT", cfg.Riot.RequestTimeout); err != nil {
		return nil, err
	}
	if cfg.Riot.Limits.Lower.Count, err = getInt("RIOT_LIMIT_LOWER_COUNT", cfg.Riot.Limits.Lower.Count); err != nil {
		return nil, err
	}
	if cfg.Riot.Limits.Lower.ResetInterval, err = getDuration("RIOT_LIMIT_LOWER_INTERVAL", cfg.Riot.Limits.Lower.ResetInterval); err != nil {
		return nil, err
	}
	if cfg.Riot.Limits.Higher.Count, err = getInt("RIOT_LIMIT_HIGHER_COUNT", cfg.Riot.Limits.Higher.Count); err != nil {
		return nil, err
	}
	if cfg.Riot.Limits.Higher.ResetInterval, err = getDuration("RIOT_LIMIT_HIGHER_INTERVAL", cfg.Riot.Limits.Higher.ResetInterval); err != nil {
		return nil, err
	}

	if cfg.History.Cooldown, err = getDuration("HISTORY_COOLDOWN", cfg.History.Cooldown); err != nil {
		return nil, err
	}
	if cfg.History.Window, err = getInt("HISTORY_WINDOW", cfg.History.Window); err != nil {
		return nil, err
	}
	if cfg.History.Window <= 0 || cfg.History.Window > 100 {
		return nil, fmt.Errorf("HISTORY_WINDOW must be between 1 and 100, got %d", cfg.History.Window)
	}

	if raw := os.Getenv("LIVE_FAIL_FAST"); raw != "" {
		cfg.Live.FailFast, err = strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid LIVE_FAIL_FAST: %w", err)
		}
	}

	// Load the Redis configuration.
	cfg.Redis.Host = os.Getenv("REDIS_HOST")
	cfg.Redis.Port = getEnv("REDIS_PORT", "6379")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")

	// Load the bucket configuration.
	cfg.Bucket.Region = getEnv("BUCKET_REGION", "auto")
	cfg.Bucket.AccessKey = os.Getenv("BUCKET_ACCESS_KEY")
	cfg.Bucket.AccessSecret = os.Getenv("BUCKET_ACCESS_SECRET")
	cfg.Bucket.Endpoint = os.Getenv("BUCKET_ENDPOINT")
	cfg.Bucket.LogBucket = os.Getenv("BUCKET_LOG_BUCKET")

	cfg.Metrics.PushgatewayURL = os.Getenv("PUSHGATEWAY_URL")
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	return cfg, nil
}

// BaseURLFor returns the platform host, or the override when set.
func (r RiotConfiguration) BaseURLFor() string {
	if r.BaseURL != "" {
		return strings.TrimRight(r.BaseURL, "/")
	}
	return fmt.Sprintf("https://%s.api.riotgames.com", strings.ToLower(string(r.Region)))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
