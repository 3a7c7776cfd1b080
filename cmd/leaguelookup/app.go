package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"leaguelookup/fetcher/assets"
	"leaguelookup/fetcher/data"
	"leaguelookup/fetcher/requests"
	"leaguelookup/lookup"
	"leaguelookup/lookup/cache"
	"leaguelookup/pkg/config"
	"leaguelookup/pkg/logger"
	"leaguelookup/pkg/metrics"
	"leaguelookup/pkg/redis"
)

// Everything a command needs, built from the configuration.
type app struct {
	cfg     *config.Config
	logger  *logger.NewLogger
	metrics *metrics.Service
	redis   *redis.RedisClient
	lookup  *lookup.Service
	assets  *assets.AssetFetcher
}

// Options for the commands that call the Riot API.
func riotOptions() config.LoadOptions {
	return config.LoadOptions{Region: region}
}

// Options for the commands that only use the Data Dragon.
func assetOptions() config.LoadOptions {
	return config.LoadOptions{Region: region, SkipAPIKey: true}
}

// Create the app, the caller must close it.
func newApp(ctx context.Context, opts config.LoadOptions) (*app, error) {
	cfg, err := config.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("couldn't load the configuration: %w", err)
	}

	log, err := logger.CreateLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("couldn't create the logger: %w", err)
	}

	a := &app{
		cfg:     cfg,
		logger:  log,
		metrics: metrics.NewService(),
	}

	var matchCache cache.MatchCache
	var championCache cache.ChampionCache
	if cfg.Redis.Enabled() {
		a.redis = redis.NewClient(cfg)

		// Redis is only a cache, keep going without it.
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := a.redis.Ping(pingCtx).Err()
		cancel()

		if err != nil {
			log.Warnf("Redis unavailable, running without cache: %v", err)
			a.redis.Close()
			a.redis = nil
		} else {
			matchCache = cache.NewMatchCache(a.redis)
			championCache = cache.NewChampionCache(a.redis)
		}
	}

	limiter := requests.CreateRateLimiter(cfg.Riot.Limits)
	fetcher := data.CreateMainFetcher(cfg, limiter, a.metrics)

	a.lookup = lookup.NewService(&lookup.ServiceDeps{
		Config:     cfg,
		Source:     fetcher,
		MatchCache: matchCache,
		Logger:     log,
		Metrics:    a.metrics,
	})
	a.assets = assets.CreateAssetFetcher(assets.DDragonURL, championCache, log)

	log.Debugf("Using region %s", cfg.Riot.Region)
	return a, nil
}

// Champion names for the tables, empty when the Data Dragon can't be reached.
func (a *app) championNames(ctx context.Context) map[int]string {
	names, err := a.assets.ChampionNames(ctx)
	if err != nil {
		a.logger.Warnf("Couldn't get the champion names: %v", err)
		return nil
	}
	return names
}

// Flush the metrics and the log, then release everything.
func (a *app) close() error {
	// The lookup context may be cancelled already.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var errs []error

	if pushMetrics {
		if a.cfg.Metrics.PushgatewayURL == "" {
			errs = append(errs, errors.New("PUSHGATEWAY_URL is not set"))
		} else if err := a.metrics.Push(ctx, a.cfg.Metrics.PushgatewayURL, a.cfg.Metrics.Job); err != nil {
			errs = append(errs, err)
		}
	}

	if uploadLog {
		if !a.cfg.Bucket.Enabled() {
			errs = append(errs, errors.New("the log bucket is not configured"))
		} else {
			key := fmt.Sprintf("leaguelookup/%s.log", time.Now().UTC().Format("20060102T150405Z"))
			if err := a.logger.UploadToS3Bucket(ctx, key); err != nil {
				errs = append(errs, err)
			} else {
				a.logger.Infof("Uploaded %s to %s", a.logger.FilePath(), key)
			}
		}
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if err := a.logger.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Run a command with the app, closing it afterwards.
func withApp(ctx context.Context, opts config.LoadOptions, run func(a *app) error) (err error) {
	a, err := newApp(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := a.close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	return run(a)
}
