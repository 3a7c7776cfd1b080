package roleservice

import (
	"context"
	"errors"
	"fmt"
	"leaguelookup/fetcher/requests"
	"leaguelookup/pkg/models"
)

// MatchListSource returns the recent matches of a account, most recent first.
type MatchListSource interface {
	GetMatchList(ctx context.Context, accountID string) ([]models.MatchSummary, error)
}

// RoleService finds the most played role of a player.
type RoleService struct {
	source MatchListSource
}

// NewRoleService creates a service for classifying roles.
func NewRoleService(source MatchListSource) *RoleService {
	return &RoleService{
		source: source,
	}
}

// ClassifyTopRole returns the most played role on the recent matches.
// A player without history is RoleUnknown.
func (rs *RoleService) ClassifyTopRole(ctx context.Context, accountID string) (models.Role, error) {
	matches, err := rs.source.GetMatchList(ctx, accountID)
	if errors.Is(err, requests.ErrNoMatchHistory) {
		return models.RoleUnknown, nil
	}
	if err != nil {
		return models.RoleUnknown, fmt.Errorf("couldn't get the match list of %s: %w", accountID, err)
	}

	return CountRoles(matches).TopRole(), nil
}

// DetermineRole maps the lane and role of a single match.
// Bottom is split between the carry and the support, everything else is the lane.
func DetermineRole(lane string, role string) models.Role {
	if lane != models.LaneBottom {
		return models.Role(lane)
	}
	if role == models.RoleDuoCarry {
		return models.RoleADC
	}
	return models.RoleSupport
}

// RoleCount has the occurrences of each lane.
type RoleCount struct {
	Lanes   map[string]int
	Carry   int
	Support int

	// Lanes in the order they were first seen, used to break ties.
	order []string
}

// CountRoles counts the lanes of the matches.
func CountRoles(matches []models.MatchSummary) RoleCount {
	count := RoleCount{Lanes: make(map[string]int)}

	for _, match := range matches {
		if _, seen := count.Lanes[match.Lane]; !seen {
			count.order = append(count.order, match.Lane)
		}
		count.Lanes[match.Lane]++

		if match.Lane != models.LaneBottom {
			continue
		}
		if match.Role == models.RoleDuoCarry {
			count.Carry++
		} else {
			count.Support++
		}
	}

	return count
}

// TopRole returns the role with most occurrences.
func (c RoleCount) TopRole() models.Role {
	topLane := ""
	topCount := 0

	// Only a strictly bigger count replaces the current one, so ties keep the most recent lane.
	for _, lane := range c.order {
		if c.Lanes[lane] > topCount {
			topLane = lane
			topCount = c.Lanes[lane]
		}
	}

	if topCount == 0 {
		return models.RoleUnknown
	}

	if topLane == models.LaneBottom {
		if c.Carry > c.Support {
			return models.RoleADC
		}
		return models.RoleSupport
	}
	return models.Role(topLane)
}
