package identity

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Content types accepted for avatar uploads, mapped to their stored extension
var avatarContentTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// AvatarService stores avatar images and records their public URL on the
// owner's profile.
type AvatarService struct {
	storage  AvatarStorage
	profiles *ProfileService
	logger   *zap.Logger
}

// NewAvatarService creates a new avatar service
func NewAvatarService(storage AvatarStorage, profiles *ProfileService, logger *zap.Logger) *AvatarService {
	return &AvatarService{
		storage:  storage,
		profiles: profiles,
		logger:   logger,
	}
}

// UploadAvatar stores the image under avatars/<userID>/<uuid>.<ext> and
// patches the profile's avatar URL. Returns the fresh profile.
func (s *AvatarService) UploadAvatar(ctx context.Context, userID uuid.UUID, data []byte, contentType string) (*ProfileInfo, error) {
	if len(data) == 0 {
		return nil, shared.NewDomainError("INVALID_AVATAR", "Avatar image cannot be empty")
	}

	ext, ok := avatarContentTypes[strings.ToLower(contentType)]
	if !ok {
		return nil, shared.NewDomainError("UNSUPPORTED_MEDIA_TYPE", "Avatar must be a JPEG, PNG, GIF or WebP image")
	}

	key := fmt.Sprintf("avatars/%s/%s.%s", userID, uuid.New(), ext)
	if err := s.storage.Upload(ctx, key, data, contentType); err != nil {
		s.logger.Error("Failed to upload avatar",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to store avatar")
	}

	url := s.storage.PublicURL(key)
	info, err := s.profiles.SetAvatarURL(ctx, userID, url)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Avatar uploaded",
		zap.String("user_id", userID.String()),
		zap.String("key", key))

	return info, nil
}
