package historyservice

import (
	"context"
	"errors"
	"fmt"
	"leaguelookup/fetcher/requests"
	"leaguelookup/lookup/cache"
	roleservice "leaguelookup/lookup/services/role"
	"leaguelookup/pkg/logger"
	"leaguelookup/pkg/metrics"
	"leaguelookup/pkg/models"
	"time"

	"golang.org/x/sync/errgroup"
)

// Value of MatchTeam.Win for the winning side.
const teamWin = "Win"

// HistorySource resolves the account, its recent matches and their details.
type HistorySource interface {
	GetAccount(ctx context.Context, name string) (*models.Account, error)
	GetMatchList(ctx context.Context, accountID string) ([]models.MatchSummary, error)
	GetMatchDetail(ctx context.Context, gameID int64) (*models.MatchDetail, error)
}

// HistoryService builds the match history report.
type HistoryService struct {
	source   HistorySource
	cache    cache.MatchCache
	logger   *logger.NewLogger
	metrics  metrics.Metrics
	cooldown time.Duration
}

type HistoryServiceDeps struct {
	Source  HistorySource
	Cache   cache.MatchCache // Optional.
	Logger  *logger.NewLogger
	Metrics metrics.Metrics

	// Pause between the match list and the detail requests.
	Cooldown time.Duration
}

// NewHistoryService creates a service for the match history lookups.
func NewHistoryService(deps *HistoryServiceDeps) *HistoryService {
	hs := &HistoryService{
		source:   deps.Source,
		cache:    deps.Cache,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
		cooldown: deps.Cooldown,
	}
	if hs.logger == nil {
		hs.logger = logger.Nop()
	}
	if hs.metrics == nil {
		hs.metrics = metrics.Nop{}
	}
	return hs
}

// AggregateHistory returns the recent matches of the player with their outcome.
// A match whose detail can't be read is kept as Unavailable.
func (hs *HistoryService) AggregateHistory(ctx context.Context, username string) (*models.HistoryReport, error) {
	account, err := hs.source.GetAccount(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("couldn't resolve the account %s: %w", username, err)
	}

	summaries, err := hs.source.GetMatchList(ctx, account.AccountID)
	if err != nil {
		return nil, fmt.Errorf("couldn't get the match list of %s: %w", username, err)
	}

	// The detail burst comes right after the list, give the rate limit some room.
	if err := requests.Pause(ctx, hs.cooldown); err != nil {
		return nil, err
	}

	details := hs.fetchDetails(ctx, summaries)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &models.HistoryReport{
		Username: account.Name,
		Records:  make([]models.UserMatchRecord, len(summaries)),
	}
	if report.Username == "" {
		report.Username = username
	}

	for i, summary := range summaries {
		record := models.UserMatchRecord{
			GameID:   summary.GameID,
			Role:     roleservice.DetermineRole(summary.Lane, summary.Role),
			Queue:    summary.Queue,
			Champion: summary.Champion,
			Outcome:  models.OutcomeUnavailable,
		}

		if details[i] != nil {
			record.Outcome = DetermineOutcome(details[i], account.AccountID)
			if record.Outcome == models.OutcomeUnavailable {
				hs.logger.Warnf("Couldn't find %s on match %d", username, summary.GameID)
				hs.metrics.IncDegraded("history")
			}
		}
		report.Records[i] = record
	}

	return report, nil
}

// Fetch every detail at once, a failed one is left nil.
func (hs *HistoryService) fetchDetails(ctx context.Context, summaries []models.MatchSummary) []*models.MatchDetail {
	details := make([]*models.MatchDetail, len(summaries))

	var g errgroup.Group
	for i := range summaries {
		g.Go(func() error {
			detail, err := hs.matchDetail(ctx, summaries[i].GameID)
			if err != nil {
				hs.logger.Warnf("Couldn't get the match %d: %v", summaries[i].GameID, err)
				hs.metrics.IncDegraded("history")
				return nil
			}
			details[i] = detail
			return nil
		})
	}
	_ = g.Wait()

	return details
}

// Get the match from the cache, falling back to the API.
// Cache failures never fail the match.
func (hs *HistoryService) matchDetail(ctx context.Context, gameID int64) (*models.MatchDetail, error) {
	if hs.cache != nil {
		detail, err := hs.cache.GetMatchDetail(ctx, gameID)
		if err == nil {
			return detail, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			hs.logger.Warnf("Match cache read failed: %v", err)
		}
	}

	detail, err := hs.source.GetMatchDetail(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if hs.cache != nil {
		if err := hs.cache.SetMatchDetail(ctx, detail); err != nil {
			hs.logger.Warnf("Match cache write failed: %v", err)
		}
	}
	return detail, nil
}

// DetermineOutcome finds if the account won the match.
// The participant id of the account is found on the identities, its team on the participants.
func DetermineOutcome(detail *models.MatchDetail, accountID string) models.Outcome {
	if detail == nil || len(detail.Teams) == 0 {
		return models.OutcomeUnavailable
	}

	participantID := 0
	found := false
	for _, identity := range detail.ParticipantIdentities {
		if identity.Player.AccountID == accountID {
			participantID = identity.ParticipantID
			found = true
			break
		}
	}
	if !found {
		return models.OutcomeUnavailable
	}

	teams := make(map[int]int, len(detail.Participants))
	for _, participant := range detail.Participants {
		teams[participant.ParticipantID] = participant.TeamID
	}

	teamID, ok := teams[participantID]
	if !ok {
		return models.OutcomeUnavailable
	}

	// Blue won iff the first listed team has the win, whatever its team id.
	blueWon := detail.Teams[0].Win == teamWin

	won := blueWon
	if teamID != models.BlueTeamID {
		won = !blueWon
	}

	if won {
		return models.OutcomeWin
	}
	return models.OutcomeLoss
}
