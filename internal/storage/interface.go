package storage

import (
	"context"

	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Player catalog operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error
	// NextPlayerID atomically increments and returns the player id counter.
	// Concurrent creates never observe the same id.
	NextPlayerID(ctx context.Context) (model.PlayerID, error)

	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
	// UpdateUserRoster conditionally writes the user's roster: the write
	// succeeds only if the stored RosterVersion still equals expectedVersion,
	// otherwise model.ErrVersionConflict is returned. On success the stored
	// version is expectedVersion+1.
	UpdateUserRoster(ctx context.Context, user *model.User, expectedVersion int64) error

	// Session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id string) (*model.Session, error)
	DeleteSession(ctx context.Context, id string) error
}
