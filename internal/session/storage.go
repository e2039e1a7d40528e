package session

import (
	"context"
	"errors"
)

const (
	KeyToken = "auth_token"
	KeyUser  = "auth_user"
)

// ErrCorruptStorage is returned by reads when the stored data cannot be parsed.
var ErrCorruptStorage = errors.New("session storage is corrupt")

// Storage is a small string key/value store holding the session pair.
type Storage interface {
	GetItem(ctx context.Context, key string) (value string, found bool, err error)
	SetItem(ctx context.Context, key, value string) error
	// SetItems stores all pairs at once, either all of them are written or none.
	SetItems(ctx context.Context, items map[string]string) error
	RemoveItem(ctx context.Context, key string) error
}
