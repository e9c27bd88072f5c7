package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	identityapp "github.com/taskflow/backend/internal/application/identity"
)

// ProfileHandler handles profile and avatar API endpoints
type ProfileHandler struct {
	BaseHandler
	profileService *identityapp.ProfileService
	avatarService  *identityapp.AvatarService
	maxUploadSize  int64
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(
	profileService *identityapp.ProfileService,
	avatarService *identityapp.AvatarService,
	maxUploadSize int64,
) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		avatarService:  avatarService,
		maxUploadSize:  maxUploadSize,
	}
}

// UpdateProfileRequest represents a partial profile update; absent fields
// are left unchanged
type UpdateProfileRequest struct {
	FirstName            *string `json:"first_name" binding:"omitempty,max=100"`
	LastName             *string `json:"last_name" binding:"omitempty,max=100"`
	Theme                *string `json:"theme" binding:"omitempty,oneof=light dark"`
	CompactMode          *bool   `json:"compact_mode"`
	Language             *string `json:"language" binding:"omitempty,max=50"`
	EmailNotifications   *bool   `json:"email_notifications"`
	TaskReminders        *bool   `json:"task_reminders"`
	MentionNotifications *bool   `json:"mention_notifications"`
	BrowserNotifications *bool   `json:"browser_notifications"`
	AutoSave             *bool   `json:"auto_save"`
	UsageAnalytics       *bool   `json:"usage_analytics"`
}

// GetProfile handles GET /me/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// UpdateProfile handles PATCH /me/profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	info, err := h.profileService.UpdateProfile(c.Request.Context(), identityapp.UpdateProfileInput{
		UserID:               userID,
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Theme:                req.Theme,
		CompactMode:          req.CompactMode,
		Language:             req.Language,
		EmailNotifications:   req.EmailNotifications,
		TaskReminders:        req.TaskReminders,
		MentionNotifications: req.MentionNotifications,
		BrowserNotifications: req.BrowserNotifications,
		AutoSave:             req.AutoSave,
		UsageAnalytics:       req.UsageAnalytics,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// UploadAvatar handles POST /me/avatar. Accepts a multipart form with an
// "avatar" file field.
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		h.BadRequest(c, "avatar file is required")
		return
	}

	if h.maxUploadSize > 0 && fileHeader.Size > h.maxUploadSize {
		h.Error(c, http.StatusRequestEntityTooLarge, "REQUEST_TOO_LARGE", "Avatar exceeds maximum allowed size")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Failed to read avatar file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.BadRequest(c, "Failed to read avatar file")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")

	info, err := h.avatarService.UploadAvatar(c.Request.Context(), userID, data, contentType)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}
