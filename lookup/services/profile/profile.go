package profileservice

import (
	"context"
	"fmt"
	"leaguelookup/pkg/models"

	"golang.org/x/sync/errgroup"
)

// AccountSource resolves a summoner name.
type AccountSource interface {
	GetAccount(ctx context.Context, name string) (*models.Account, error)
}

// RankResolver returns the solo queue rank of a summoner.
type RankResolver interface {
	ResolveRank(ctx context.Context, summonerID string) (models.Rank, error)
}

// RoleClassifier returns the most played role of a account.
type RoleClassifier interface {
	ClassifyTopRole(ctx context.Context, accountID string) (models.Role, error)
}

// ProfileService builds the profile report.
type ProfileService struct {
	source AccountSource
	ranks  RankResolver
	roles  RoleClassifier
}

type ProfileServiceDeps struct {
	Source AccountSource
	Ranks  RankResolver
	Roles  RoleClassifier
}

// NewProfileService creates a service for the profile lookups.
func NewProfileService(deps *ProfileServiceDeps) *ProfileService {
	return &ProfileService{
		source: deps.Source,
		ranks:  deps.Ranks,
		roles:  deps.Roles,
	}
}

// LookupProfile resolves the account, then the rank and role at the same time.
func (ps *ProfileService) LookupProfile(ctx context.Context, username string) (*models.UserAccount, error) {
	account, err := ps.source.GetAccount(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("couldn't resolve the account %s: %w", username, err)
	}

	var (
		rank models.Rank
		role models.Role
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rank, err = ps.ranks.ResolveRank(gCtx, account.ID)
		return err
	})
	g.Go(func() error {
		var err error
		role, err = ps.roles.ClassifyTopRole(gCtx, account.AccountID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &models.UserAccount{
		Account: *account,
		Rank:    rank,
		TopRole: role,
	}, nil
}
