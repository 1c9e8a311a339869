package oracle

import (
	"context"

	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/model"
)

// Request carries the context handed to the assistant alongside the user's
// free-text question. Catalog entries are described to the assistant without
// their point values.
type Request struct {
	Query           string
	Catalog         []*model.Player
	Roster          []*model.Player
	RemainingBudget int
}

// Oracle produces free-text fantasy advice for questions the suggestion
// filter's own category logic does not cover.
type Oracle interface {
	Advise(ctx context.Context, req Request) (string, error)
}
