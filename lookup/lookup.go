package lookup

import (
	"context"
	"errors"
	"leaguelookup/lookup/cache"
	historyservice "leaguelookup/lookup/services/history"
	liveservice "leaguelookup/lookup/services/live"
	profileservice "leaguelookup/lookup/services/profile"
	rankservice "leaguelookup/lookup/services/rank"
	roleservice "leaguelookup/lookup/services/role"
	"leaguelookup/pkg/config"
	"leaguelookup/pkg/logger"
	"leaguelookup/pkg/metrics"
	"leaguelookup/pkg/models"
	"strings"
	"time"
)

// ErrEmptyUsername is returned before any request is made.
var ErrEmptyUsername = errors.New("username can't be empty")

// Source is the Riot API as seen by the lookups.
type Source interface {
	GetAccount(ctx context.Context, name string) (*models.Account, error)
	GetLeagueEntries(ctx context.Context, summonerID string) ([]models.Rank, error)
	GetActiveGame(ctx context.Context, summonerID string) (*models.ActiveGame, error)
	GetMatchList(ctx context.Context, accountID string) ([]models.MatchSummary, error)
	GetMatchDetail(ctx context.Context, gameID int64) (*models.MatchDetail, error)
}

// Service exposes the three lookups.
type Service struct {
	profile *profileservice.ProfileService
	live    *liveservice.LiveService
	history *historyservice.HistoryService

	logger  *logger.NewLogger
	metrics metrics.Metrics
}

type ServiceDeps struct {
	Config     *config.Config
	Source     Source
	MatchCache cache.MatchCache // Optional.
	Logger     *logger.NewLogger
	Metrics    metrics.Metrics
}

// NewService wires the services over the source.
func NewService(deps *ServiceDeps) *Service {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.Default()
	}

	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	m := deps.Metrics
	if m == nil {
		m = metrics.Nop{}
	}

	ranks := rankservice.NewRankService(deps.Source)
	roles := roleservice.NewRoleService(deps.Source)

	return &Service{
		profile: profileservice.NewProfileService(&profileservice.ProfileServiceDeps{
			Source: deps.Source,
			Ranks:  ranks,
			Roles:  roles,
		}),
		live: liveservice.NewLiveService(&liveservice.LiveServiceDeps{
			Source:   deps.Source,
			Ranks:    ranks,
			Logger:   log,
			Metrics:  m,
			FailFast: cfg.Live.FailFast,
		}),
		history: historyservice.NewHistoryService(&historyservice.HistoryServiceDeps{
			Source:   deps.Source,
			Cache:    deps.MatchCache,
			Logger:   log,
			Metrics:  m,
			Cooldown: cfg.History.Cooldown,
		}),
		logger:  log,
		metrics: m,
	}
}

// LookupProfile returns the level, solo queue rank and main role of the player.
func (s *Service) LookupProfile(ctx context.Context, username string) (*models.UserAccount, error) {
	username, err := normalizeUsername(username)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	profile, err := s.profile.LookupProfile(ctx, username)
	s.record("profile", username, start, err)
	return profile, err
}

// LookupLiveMatch returns both teams of the game the player is in.
func (s *Service) LookupLiveMatch(ctx context.Context, username string) (*models.LiveMatch, error) {
	username, err := normalizeUsername(username)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	match, err := s.live.AggregateLiveMatch(ctx, username)
	s.record("live", username, start, err)
	return match, err
}

// LookupHistory returns the recent matches of the player.
func (s *Service) LookupHistory(ctx context.Context, username string) (*models.HistoryReport, error) {
	username, err := normalizeUsername(username)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	report, err := s.history.AggregateHistory(ctx, username)
	s.record("history", username, start, err)
	return report, err
}

// Log and count a finished lookup.
func (s *Service) record(kind string, username string, start time.Time, err error) {
	s.metrics.IncAggregation(kind, err != nil)

	if err != nil {
		// The caller reports the error, keep it out of the console.
		s.logger.Debug().Err(err).Str("kind", kind).Str("username", username).Msg("Lookup failed")
		return
	}
	s.logger.Info().Str("kind", kind).Str("username", username).Dur("took", time.Since(start)).Msg("Lookup finished")
}

func normalizeUsername(username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", ErrEmptyUsername
	}
	return username, nil
}
