package redis

import (
	"fmt"

	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/model"
)

// Key prefix for all fantasy-league data
const keyPrefix = "spirit11"

// playerKey returns the Redis key for a catalog Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%d", keyPrefix, id)
}

// playerIndexKey returns the Redis key for the SET of all player ids
func playerIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// playerIDSeqKey returns the Redis key for the player id counter
func playerIDSeqKey() string {
	return fmt.Sprintf("%s:player_id_seq", keyPrefix)
}

// userKey returns the Redis key for a User
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}

// userIndexKey returns the Redis key for the SET of all user ids
func userIndexKey() string {
	return fmt.Sprintf("%s:idx:users", keyPrefix)
}

// usernameIndexKey returns the Redis key for the username -> user_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// sessionKey returns the Redis key for a Session
func sessionKey(id string) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}
