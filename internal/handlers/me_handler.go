package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/localskill/marketplace-api/internal/httperr"
	"github.com/localskill/marketplace-api/internal/middleware"
	"github.com/localskill/marketplace-api/internal/models"
	"github.com/localskill/marketplace-api/internal/storage"
)

type MeHandler struct {
	db       *gorm.DB
	uploader *storage.S3Uploader
}

func NewMeHandler(db *gorm.DB, uploader *storage.S3Uploader) *MeHandler {
	return &MeHandler{db: db, uploader: uploader}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	profileID := c.MustGet(middleware.ContextProfileID).(uint)

	var profile models.Profile
	if err := h.db.First(&profile, profileID).Error; err != nil {
		httperr.NotFound(c, "profile_not_found", "Profile not found.")
		return
	}

	out := gin.H{
		"profile": profile,
	}

	if profile.Role == models.RoleProvider {
		var provider models.Provider
		if err := h.db.Where("profile_id = ?", profile.ID).First(&provider).Error; err == nil {
			out["provider_id"] = provider.ID
		}
	}

	c.JSON(http.StatusOK, out)
}

// UploadAvatar accepts a multipart image, normalizes it to a capped WebP
// and stores it on S3. The profile keeps only the public URL.
func (h *MeHandler) UploadAvatar(c *gin.Context) {
	profileID := c.MustGet(middleware.ContextProfileID).(uint)

	if !h.uploader.Enabled() {
		httperr.Internal(c, "storage_not_configured", "Avatar storage is not configured.")
		return
	}

	file, _, err := c.Request.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "avatar_required", "Send the image in the 'avatar' form field.")
		return
	}
	defer file.Close()

	buf, err := storage.NormalizeAvatar(file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "The file could not be decoded as an image.")
		return
	}

	key := fmt.Sprintf("avatars/%d/%s.webp", profileID, uuid.NewString())

	url, err := h.uploader.Upload(c.Request.Context(), key, "image/webp", buf)
	if err != nil {
		httperr.Internal(c, "avatar_upload_failed", "Failed to store the avatar.")
		return
	}

	if err := h.db.Model(&models.Profile{}).
		Where("id = ?", profileID).
		Update("avatar_url", url).Error; err != nil {

		httperr.Internal(c, "failed_to_update_profile", "Failed to save the avatar URL.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}
