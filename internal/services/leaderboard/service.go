package leaderboard

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/model"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/storage"
)

// Service ranks users by the combined value of their completed teams.
// Entries are computed from live player values on every call, so a stat
// edit reorders the board without any invalidation machinery.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new leaderboard service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Entry is one ranked row on the leaderboard
type Entry struct {
	Rank       int    `json:"rank"`
	Username   string `json:"username"`
	TotalValue int    `json:"total_value"`
	IsSelf     bool   `json:"is_self"`
}

// Ranking returns the board ordered by total team value descending, with
// username ascending as the tie-break. Only users holding a complete team
// of 11 appear; viewerID marks the caller's own row when present.
func (s *Service) Ranking(ctx context.Context, viewerID model.UserID) ([]Entry, error) {
	users, err := s.storage.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(users))
	for _, user := range users {
		if len(user.Roster) != model.TeamSize {
			continue
		}

		total, complete, err := s.teamValue(ctx, user.Roster)
		if err != nil {
			return nil, err
		}
		if !complete {
			continue
		}

		entries = append(entries, Entry{
			Username:   user.Username,
			TotalValue: total,
			IsSelf:     user.ID == viewerID,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalValue != entries[j].TotalValue {
			return entries[i].TotalValue > entries[j].TotalValue
		}
		return entries[i].Username < entries[j].Username
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries, nil
}

// teamValue sums the current value of a roster. A roster referencing a
// player deleted mid-call is treated as incomplete and left off the board.
func (s *Service) teamValue(ctx context.Context, roster []model.PlayerID) (int, bool, error) {
	total := 0
	for _, id := range roster {
		player, err := s.storage.GetPlayer(ctx, id)
		if err != nil {
			if errors.Is(err, model.ErrPlayerNotFound) {
				return 0, false, nil
			}
			return 0, false, err
		}
		total += player.Value
	}
	return total, true, nil
}
