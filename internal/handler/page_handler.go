package handler

import (
	"github.com/gin-gonic/gin"

	"clubnavi/portal/internal/service"
	"clubnavi/portal/pkg/response"
)

type PageHandler struct {
	pageService service.PageService
}

func NewPageHandler(pageService service.PageService) *PageHandler {
	return &PageHandler{pageService: pageService}
}

func (h *PageHandler) Home(c *gin.Context) {
	// Absent cookie just means no preview; the page renders either way.
	previewID, _ := c.Cookie(PreviewCookieName)

	view, err := h.pageService.HomePage(c.Request.Context(), previewID)
	if err != nil {
		response.InternalError(c, "failed to build home page")
		return
	}
	response.Success(c, view)
}

func (h *PageHandler) Prefecture(c *gin.Context) {
	previewID, _ := c.Cookie(PreviewCookieName)

	view, err := h.pageService.PrefecturePage(c.Request.Context(), c.Param("code"), previewID)
	if err != nil {
		response.InternalError(c, "failed to build prefecture page")
		return
	}
	response.Success(c, view)
}
