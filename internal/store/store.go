// Package store defines the durable key/value contract that holds session
// credentials. Values must survive process restarts; that is what makes the
// startup session check meaningful on a cold start.
//
// Implementations live in sub-packages (redisstore, sqlstore) and in
// internal/keychain for the OS credential store.
package store

import "context"

// Keys written by the session controller.
const (
	// KeyUserToken holds the opaque session token. Presence means signed in.
	KeyUserToken = "userToken"
	// KeyUserPhone holds the phone number used by the last sign-in.
	KeyUserPhone = "userPhone"
	// KeyUserData holds the JSON-serialized profile recorded at sign-up.
	KeyUserData = "userData"
)

// SessionKeys lists every key the controller may write.
var SessionKeys = []string{KeyUserToken, KeyUserPhone, KeyUserData}

// Store is a durable string key/value store.
type Store interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
