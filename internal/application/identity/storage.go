package identity

import "context"

// AvatarStorage abstracts the object store that holds avatar images.
type AvatarStorage interface {
	// EnsureBucket creates the backing bucket if it doesn't exist
	EnsureBucket(ctx context.Context) error

	// Upload stores an object under the given key
	Upload(ctx context.Context, storageKey string, data []byte, contentType string) error

	// PublicURL returns the publicly reachable URL for a stored object
	PublicURL(storageKey string) string
}
