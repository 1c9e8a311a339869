package catalog

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/model"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/storage"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/valuation"
)

// Errors
var (
	ErrNameRequired  = errors.New("player name is required")
	ErrNegativeStats = errors.New("runs and wickets must not be negative")
)

// cascadeRetries bounds the per-user optimistic retries while removing a
// deleted player from rosters.
const cascadeRetries = 3

// Service manages the shared player catalog. Ids come from the store's
// atomic counter and derived stats are recomputed on every stat change.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new catalog service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// CreateParams holds the admin-supplied fields for a new player
type CreateParams struct {
	Name       string
	University string
	Category   model.Category
	Runs       int
	Wickets    int
}

// UpdateParams holds a partial update; nil fields are left unchanged
type UpdateParams struct {
	Name       *string
	University *string
	Category   *model.Category
	Runs       *int
	Wickets    *int
}

// Create adds a player to the catalog with a freshly assigned id
func (s *Service) Create(ctx context.Context, p CreateParams) (*model.Player, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, ErrNameRequired
	}
	if p.Runs < 0 || p.Wickets < 0 {
		return nil, ErrNegativeStats
	}

	id, err := s.storage.NextPlayerID(ctx)
	if err != nil {
		return nil, err
	}

	player := &model.Player{
		ID:         id,
		Name:       p.Name,
		University: p.University,
		Category:   p.Category,
		Runs:       p.Runs,
		Wickets:    p.Wickets,
	}
	applyStats(player)

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player created",
		slog.Int("player_id", int(id)),
		slog.String("name", p.Name),
		slog.String("category", string(p.Category)),
	)

	return player, nil
}

// Update applies a partial update. A change to runs or wickets recomputes
// every derived field; name, university and category update independently.
func (s *Service) Update(ctx context.Context, id model.PlayerID, p UpdateParams) (*model.Player, error) {
	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.Name != nil {
		player.Name = *p.Name
	}
	if p.University != nil {
		player.University = *p.University
	}
	if p.Category != nil {
		player.Category = *p.Category
	}

	if p.Runs != nil || p.Wickets != nil {
		if p.Runs != nil {
			if *p.Runs < 0 {
				return nil, ErrNegativeStats
			}
			player.Runs = *p.Runs
		}
		if p.Wickets != nil {
			if *p.Wickets < 0 {
				return nil, ErrNegativeStats
			}
			player.Wickets = *p.Wickets
		}
		applyStats(player)
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	return player, nil
}

// Delete removes a player and cascades the removal into every roster that
// held it, so no roster ever references a nonexistent player. Remaining
// entries keep their relative order and are renumbered contiguously.
func (s *Service) Delete(ctx context.Context, id model.PlayerID) error {
	if _, err := s.storage.GetPlayer(ctx, id); err != nil {
		return err
	}

	if err := s.storage.DeletePlayer(ctx, id); err != nil {
		return err
	}

	users, err := s.storage.ListUsers(ctx)
	if err != nil {
		return err
	}

	for _, user := range users {
		if user.RosterSlot(id) == 0 {
			continue
		}
		if err := s.evictFromRoster(ctx, user.ID, id); err != nil {
			return err
		}
	}

	s.logger.Info("player deleted", slog.Int("player_id", int(id)))
	return nil
}

// evictFromRoster removes the player from one user's roster under the same
// optimistic scheme as team mutations.
func (s *Service) evictFromRoster(ctx context.Context, userID model.UserID, id model.PlayerID) error {
	for attempt := 0; attempt < cascadeRetries; attempt++ {
		user, err := s.storage.GetUser(ctx, userID)
		if err != nil {
			if errors.Is(err, model.ErrUserNotFound) {
				return nil
			}
			return err
		}

		slot := user.RosterSlot(id)
		if slot == 0 {
			return nil // Already gone
		}

		user.Roster = append(user.Roster[:slot-1], user.Roster[slot:]...)

		err = s.storage.UpdateUserRoster(ctx, user, user.RosterVersion)
		if err == nil {
			return nil
		}
		if !errors.Is(err, model.ErrVersionConflict) {
			return err
		}
	}
	return model.ErrRosterConflict
}

// Get retrieves a single player
func (s *Service) Get(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, id)
}

// List returns the full catalog ordered by id
func (s *Service) List(ctx context.Context) ([]*model.Player, error) {
	return s.storage.ListPlayers(ctx)
}

// Summary aggregates tournament-wide stats over the catalog
type Summary struct {
	TotalRuns      int
	TotalWickets   int
	TopRunScorer   *model.Player
	TopWicketTaker *model.Player
}

// TournamentSummary computes totals and the leading players. The top
// entries are nil when the catalog is empty.
func (s *Service) TournamentSummary(ctx context.Context) (*Summary, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	for _, p := range players {
		summary.TotalRuns += p.Runs
		summary.TotalWickets += p.Wickets

		if summary.TopRunScorer == nil || p.Runs > summary.TopRunScorer.Runs {
			summary.TopRunScorer = p
		}
		if summary.TopWicketTaker == nil || p.Wickets > summary.TopWicketTaker.Wickets {
			summary.TopWicketTaker = p
		}
	}

	return summary, nil
}

// applyStats recomputes every derived field from runs and wickets
func applyStats(p *model.Player) {
	stats := valuation.Compute(p.Runs, p.Wickets)
	p.Value = stats.Value
	p.BudgetCost = stats.BudgetCost
	p.BattingStrikeRate = stats.BattingStrikeRate
	p.BowlingStrikeRate = stats.BowlingStrikeRate
	p.BattingAverage = stats.BattingAverage
	p.Economy = stats.Economy
}
