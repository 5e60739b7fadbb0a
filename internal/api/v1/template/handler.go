package template

import (
	"net/http"

	"promptsmith-backend/internal/api/v1/common"
	"promptsmith-backend/internal/prompt"
	"promptsmith-backend/internal/services"
	"promptsmith-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

const notFound = "Template not found"

type Handler struct {
	svc *services.TemplateService
}

func NewHandler(svc *services.TemplateService) *Handler {
	return &Handler{svc: svc}
}

// ListTemplates godoc
// @Summary List prompt templates
// @Description Templates sorted by name, optionally filtered by category and search term
// @Tags templates
// @Produce json
// @Param category query string false "Category, or all"
// @Param search query string false "Match name, description or category"
// @Success 200 {object} utils.Response{data=TemplateListResponse}
// @Failure 500 {object} utils.Response
// @Router /templates [get]
func (h *Handler) ListTemplates(c *gin.Context) {
	templates, err := h.svc.Search(c.Request.Context(), c.Query("category"), c.Query("search"))
	if err != nil {
		common.RespondError(c, err, notFound)
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", TemplateListResponse{
		Templates: templates,
		Total:     len(templates),
	}))
}

// GetTemplate godoc
// @Summary Get a template
// @Tags templates
// @Produce json
// @Param id path int true "Template ID"
// @Success 200 {object} utils.Response{data=models.Template}
// @Failure 404 {object} utils.Response
// @Router /templates/{id} [get]
func (h *Handler) GetTemplate(c *gin.Context) {
	id, ok := common.ParseID(c)
	if !ok {
		return
	}

	t, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		common.RespondError(c, err, notFound)
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", t))
}

// DraftFromTemplate godoc
// @Summary Start a builder draft from a template
// @Description Returns prompt fields seeded with the template's name, category, tone/role and goal. Nothing is saved.
// @Tags templates
// @Produce json
// @Param id path int true "Template ID"
// @Success 200 {object} utils.Response{data=DraftResponse}
// @Failure 404 {object} utils.Response
// @Router /templates/{id}/draft [post]
func (h *Handler) DraftFromTemplate(c *gin.Context) {
	id, ok := common.ParseID(c)
	if !ok {
		return
	}

	fields, err := h.svc.NewDraft(c.Request.Context(), id)
	if err != nil {
		common.RespondError(c, err, notFound)
		return
	}

	d := prompt.NewDraft(fields)
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", DraftResponse{
		Fields:      fields,
		Variables:   prompt.FieldVariables(fields),
		State:       d.State(),
		CanGenerate: d.CanGenerate(),
	}))
}
