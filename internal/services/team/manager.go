package team

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/metrics"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/model"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/storage"
)

// maxRetries bounds optimistic retries on concurrent roster mutations.
// Validation failures are never retried.
const maxRetries = 3

// Manager enforces the per-user roster invariants: at most 11 players, no
// duplicates, contiguous slots, and live budget within the user's total.
//
// Add and Remove are read-check-write over one user aggregate, so every
// write goes through the store's versioned conditional update; a mutation
// that keeps losing the race surfaces model.ErrRosterConflict.
type Manager struct {
	storage storage.Storage
	metrics metrics.Metrics
	logger  *slog.Logger
}

// New creates a new team manager
func New(storage storage.Storage, metrics metrics.Metrics, logger *slog.Logger) *Manager {
	return &Manager{
		storage: storage,
		metrics: metrics,
		logger:  logger,
	}
}

// Slot is one of the 11 team positions; Player is nil for an open slot
type Slot struct {
	Position int
	Player   *model.Player
}

// Team is a user's roster rendered across all 11 slots. TotalPoints is
// only present once the team is complete.
type Team struct {
	Username    string
	Slots       []Slot
	TotalPoints *int
}

// Budget is a live snapshot of a user's spending
type Budget struct {
	Total     int
	Used      int
	Remaining int
}

// AddPlayer assigns the player to the next open slot
func (m *Manager) AddPlayer(ctx context.Context, userID model.UserID, playerID model.PlayerID) (*Team, error) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		user, err := m.storage.GetUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		player, err := m.storage.GetPlayer(ctx, playerID)
		if err != nil {
			return nil, err
		}

		if len(user.Roster) >= model.TeamSize {
			return nil, model.ErrTeamFull
		}
		if user.RosterSlot(playerID) != 0 {
			return nil, model.ErrAlreadyInRoster
		}

		used, err := m.usedBudget(ctx, user.Roster)
		if err != nil {
			return nil, err
		}
		if used+player.BudgetCost > user.TotalBudget {
			return nil, model.ErrInsufficientBudget
		}

		user.Roster = append(user.Roster, playerID)

		err = m.storage.UpdateUserRoster(ctx, user, user.RosterVersion)
		if errors.Is(err, model.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}

		m.logger.Info("player added to team",
			slog.String("user_id", string(userID)),
			slog.Int("player_id", int(playerID)),
			slog.Int("slot", len(user.Roster)),
		)

		return m.buildTeam(ctx, user)
	}

	m.metrics.IncRosterConflicts()
	return nil, model.ErrRosterConflict
}

// RemovePlayer removes the player and renumbers the remaining entries into
// contiguous slots, preserving their relative order
func (m *Manager) RemovePlayer(ctx context.Context, userID model.UserID, playerID model.PlayerID) (*Team, error) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		user, err := m.storage.GetUser(ctx, userID)
		if err != nil {
			return nil, err
		}

		slot := user.RosterSlot(playerID)
		if slot == 0 {
			return nil, model.ErrNotInRoster
		}

		user.Roster = append(user.Roster[:slot-1], user.Roster[slot:]...)

		err = m.storage.UpdateUserRoster(ctx, user, user.RosterVersion)
		if errors.Is(err, model.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}

		m.logger.Info("player removed from team",
			slog.String("user_id", string(userID)),
			slog.Int("player_id", int(playerID)),
		)

		return m.buildTeam(ctx, user)
	}

	m.metrics.IncRosterConflicts()
	return nil, model.ErrRosterConflict
}

// GetTeam returns the user's roster across all 11 slots
func (m *Manager) GetTeam(ctx context.Context, userID model.UserID) (*Team, error) {
	user, err := m.storage.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return m.buildTeam(ctx, user)
}

// GetBudget returns the user's live budget snapshot
func (m *Manager) GetBudget(ctx context.Context, userID model.UserID) (*Budget, error) {
	user, err := m.storage.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	used, err := m.usedBudget(ctx, user.Roster)
	if err != nil {
		return nil, err
	}

	return &Budget{
		Total:     user.TotalBudget,
		Used:      used,
		Remaining: user.TotalBudget - used,
	}, nil
}

// usedBudget sums the current budget cost of the rostered players. Costs
// are read live from the catalog: a later stat edit changes what a held
// player counts against the budget.
func (m *Manager) usedBudget(ctx context.Context, roster []model.PlayerID) (int, error) {
	used := 0
	for _, id := range roster {
		player, err := m.storage.GetPlayer(ctx, id)
		if err != nil {
			if errors.Is(err, model.ErrPlayerNotFound) {
				// Mid-flight catalog delete; the cascade will repair the roster
				continue
			}
			return 0, err
		}
		used += player.BudgetCost
	}
	return used, nil
}

func (m *Manager) buildTeam(ctx context.Context, user *model.User) (*Team, error) {
	team := &Team{
		Username: user.Username,
		Slots:    make([]Slot, model.TeamSize),
	}

	totalPoints := 0
	filled := 0
	for i := 0; i < model.TeamSize; i++ {
		team.Slots[i] = Slot{Position: i + 1}
		if i >= len(user.Roster) {
			continue
		}

		player, err := m.storage.GetPlayer(ctx, user.Roster[i])
		if err != nil {
			if errors.Is(err, model.ErrPlayerNotFound) {
				continue
			}
			return nil, err
		}
		team.Slots[i].Player = player
		totalPoints += player.Value
		filled++
	}

	// Total points are revealed only for a complete team
	if filled == model.TeamSize {
		team.TotalPoints = &totalPoints
	}

	return team, nil
}
