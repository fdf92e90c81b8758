package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	catalogdomain "github.com/ttsbooking/consult-platform/internal/domain/catalog"
	"github.com/ttsbooking/consult-platform/internal/httperr"
	"github.com/ttsbooking/consult-platform/internal/httpresp"
)

// UploadPresigner is implemented by the object storage adapter.
type UploadPresigner interface {
	UploadURL(ctx context.Context, consultantID uint) (url string, key string, err error)
}

type ConsultantHandler struct {
	catalog   catalogdomain.Repository
	presigner UploadPresigner
}

func NewConsultantHandler(
	catalog catalogdomain.Repository,
	presigner UploadPresigner,
) *ConsultantHandler {
	return &ConsultantHandler{
		catalog:   catalog,
		presigner: presigner,
	}
}

func (h *ConsultantHandler) List(c *gin.Context) {
	consultants, err := h.catalog.ListConsultants(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_consultants", "Server error.")
		return
	}

	httpresp.OK(c, gin.H{"consultants": consultants})
}

func (h *ConsultantHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_consultant_id", "Invalid consultant id.")
		return
	}

	consultant, err := h.catalog.GetConsultant(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, catalogdomain.ErrNotFound) {
			httperr.NotFound(c, "consultant_not_found", "Consultant not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_consultant", "Server error.")
		return
	}

	httpresp.OK(c, gin.H{"consultant": consultant})
}

// AvatarUploadURL hands back a presigned PUT URL. The client uploads the
// image directly to object storage, then confirms via SetAvatar; nothing
// is persisted until the upload is confirmed.
func (h *ConsultantHandler) AvatarUploadURL(c *gin.Context) {
	if h.presigner == nil {
		httperr.Write(c, 503, "storage_not_configured", "Object storage is not configured.")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_consultant_id", "Invalid consultant id.")
		return
	}

	if _, err := h.catalog.GetConsultant(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, catalogdomain.ErrNotFound) {
			httperr.NotFound(c, "consultant_not_found", "Consultant not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_consultant", "Server error.")
		return
	}

	url, key, err := h.presigner.UploadURL(c.Request.Context(), uint(id))
	if err != nil {
		httperr.Internal(c, "failed_to_presign", "Could not create upload URL.")
		return
	}

	httpresp.OK(c, gin.H{
		"upload_url": url,
		"object_key": key,
	})
}

type SetAvatarRequest struct {
	ObjectKey string `json:"object_key" binding:"required"`
}

// SetAvatar stores the uploaded object key as the consultant's avatar.
func (h *ConsultantHandler) SetAvatar(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_consultant_id", "Invalid consultant id.")
		return
	}

	var req SetAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Missing object key.")
		return
	}

	if err := h.catalog.UpdateConsultantAvatar(c.Request.Context(), uint(id), req.ObjectKey); err != nil {
		if errors.Is(err, catalogdomain.ErrNotFound) {
			httperr.NotFound(c, "consultant_not_found", "Consultant not found.")
			return
		}
		httperr.Internal(c, "failed_to_update_avatar", "Server error.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Avatar updated."})
}
