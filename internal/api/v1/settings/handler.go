package settings

import (
	"net/http"

	"promptsmith-backend/internal/api/v1/common"
	"promptsmith-backend/internal/models"
	"promptsmith-backend/internal/services"
	"promptsmith-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *services.SettingsService
}

func NewHandler(svc *services.SettingsService) *Handler {
	return &Handler{svc: svc}
}

// GetSettings godoc
// @Summary Get account settings
// @Tags settings
// @Produce json
// @Success 200 {object} utils.Response{data=models.Settings}
// @Failure 500 {object} utils.Response
// @Router /settings [get]
func (h *Handler) GetSettings(c *gin.Context) {
	s, err := h.svc.Get(c.Request.Context())
	if err != nil {
		common.RespondError(c, err, "Settings not found")
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", s))
}

// UpdateSettings godoc
// @Summary Replace account settings
// @Description Theme must be light or dark. Default format must be paragraph, bullet-points, numbered-list, json or table.
// @Tags settings
// @Accept json
// @Produce json
// @Param request body models.Settings true "Settings"
// @Success 200 {object} utils.Response{data=models.Settings}
// @Failure 400 {object} utils.Response{data=utils.ValidationErrorData}
// @Router /settings [put]
func (h *Handler) UpdateSettings(c *gin.Context) {
	var req models.Settings
	if !utils.BindAndValidate(c, &req) {
		return
	}

	s, err := h.svc.Update(c.Request.Context(), req)
	if err != nil {
		common.RespondError(c, err, "Settings not found")
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Settings updated", s))
}
