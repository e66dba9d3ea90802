package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"clubnavi/portal/internal/model"
	"clubnavi/portal/internal/service"
	"clubnavi/portal/pkg/response"
)

// PreviewCookieName pairs the browser with a preview entry. The bridge
// endpoint re-sets it inside an iframe's own navigation context, because a
// cookie set by the top-level POST is not guaranteed to accompany a
// cross-context iframe GET under strict browser cookie policies.
const PreviewCookieName = "preview_id"

const bridgePath = "/preview/bridge"

type PreviewHandler struct {
	previewService service.PreviewService
	secureCookies  bool
}

func NewPreviewHandler(previewService service.PreviewService, secureCookies bool) *PreviewHandler {
	return &PreviewHandler{previewService: previewService, secureCookies: secureCookies}
}

type CreatePreviewRequest struct {
	Type         string          `json:"type" binding:"required"`
	RedirectPath string          `json:"redirect_path" binding:"required"`
	Payload      json.RawMessage `json:"payload"`
}

func (h *PreviewHandler) Create(c *gin.Context) {
	var req CreatePreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	entry, err := h.previewService.Create(c.Request.Context(), req.Type, req.RedirectPath, req.Payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPreviewTypeInvalid),
			errors.Is(err, service.ErrRedirectPathInvalid),
			errors.Is(err, service.ErrPreviewPayloadInvalid):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, "failed to create preview")
		}
		return
	}

	h.setPreviewCookie(c, entry.ID)
	response.Success(c, gin.H{
		"preview_id":   entry.ID,
		"redirect_url": entry.RedirectPath,
		"bridge_url":   bridgeURL(entry),
	})
}

// Bridge validates a preview id and 302-redirects to the target path with
// the preview cookie re-set on the redirect response, so the redirect and
// the page request share one first-party navigation lineage inside the
// iframe. A failure here leaves the original entry's TTL untouched.
func (h *PreviewHandler) Bridge(c *gin.Context) {
	id := c.Query("id")
	path := c.Query("path")
	if id == "" || path == "" {
		response.BadRequest(c, "id and path are required")
		return
	}

	entry, err := h.previewService.ValidateBridge(c.Request.Context(), id, path)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRedirectPathInvalid):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrPreviewNotFound):
			response.NotFound(c, "preview not found or expired")
		default:
			response.InternalError(c, "bridge failed")
		}
		return
	}

	h.setPreviewCookie(c, entry.ID)
	c.Redirect(http.StatusFound, path)
}

func (h *PreviewHandler) setPreviewCookie(c *gin.Context, id string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(PreviewCookieName, id, int(model.PreviewTTL.Seconds()), "/", "", h.secureCookies, true)
}

func bridgeURL(entry *model.PreviewEntry) string {
	q := url.Values{}
	q.Set("id", entry.ID)
	q.Set("path", entry.RedirectPath)
	return bridgePath + "?" + q.Encode()
}
