// Package storage provides object storage implementations for avatar uploads.
package storage

import (
	"context"
	"errors"

	identityapp "github.com/taskflow/backend/internal/application/identity"
)

// StubAvatarStorage is a placeholder implementation of AvatarStorage.
// Use this for development until a real storage backend is configured.
type StubAvatarStorage struct {
	// BaseURL is the base URL for generated object URLs
	BaseURL string
}

// NewStubAvatarStorage creates a new StubAvatarStorage
func NewStubAvatarStorage() *StubAvatarStorage {
	return &StubAvatarStorage{
		BaseURL: "https://storage.example.com",
	}
}

// Ensure StubAvatarStorage implements AvatarStorage
var _ identityapp.AvatarStorage = (*StubAvatarStorage)(nil)

// EnsureBucket is a no-op stub that always succeeds
func (s *StubAvatarStorage) EnsureBucket(ctx context.Context) error {
	return nil
}

// Upload is a no-op stub that validates the key and discards the data
func (s *StubAvatarStorage) Upload(ctx context.Context, storageKey string, data []byte, contentType string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}
	return nil
}

// PublicURL returns a deterministic stub URL for the object
func (s *StubAvatarStorage) PublicURL(storageKey string) string {
	return s.BaseURL + "/" + storageKey
}
