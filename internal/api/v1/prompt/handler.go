package prompt

import (
	"net/http"

	"promptsmith-backend/internal/api/v1/common"
	"promptsmith-backend/internal/services"
	"promptsmith-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

const notFound = "Prompt not found"

type Handler struct {
	svc *services.PromptService
}

func NewHandler(svc *services.PromptService) *Handler {
	return &Handler{svc: svc}
}

// ListPrompts godoc
// @Summary List saved prompts
// @Description Saved prompts, most recently updated first
// @Tags prompts
// @Produce json
// @Param search query string false "Match title, tags, tone/role or goal"
// @Success 200 {object} utils.Response{data=PromptListResponse}
// @Failure 500 {object} utils.Response
// @Router /prompts [get]
func (h *Handler) ListPrompts(c *gin.Context) {
	prompts, err := h.svc.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		common.RespondError(c, err, notFound)
		return
	}

	items := make([]PromptResponse, 0, len(prompts))
	for _, p := range prompts {
		items = append(items, toResponse(p))
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", PromptListResponse{
		Prompts: items,
		Total:   len(items),
	}))
}

// GetPrompt godoc
// @Summary Get a prompt
// @Tags prompts
// @Produce json
// @Param id path int true "Prompt ID"
// @Success 200 {object} utils.Response{data=PromptResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /prompts/{id} [get]
func (h *Handler) GetPrompt(c *gin.Context) {
	id, ok := common.ParseID(c)
	if !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		common.RespondError(c, err, notFound)
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", toResponse(*p)))
}

// CreatePrompt godoc
// @Summary Save a new prompt
// @Description Title is required. Set generate to assemble the prompt before saving.
// @Tags prompts
// @Accept json
// @Produce json
// @Param request body SavePromptRequest true "Prompt fields"
// @Success 201 {object} utils.Response{data=PromptResponse}
// @Failure 400 {object} utils.Response{data=utils.ValidationErrorData}
// @Router /prompts [post]
func (h *Handler) CreatePrompt(c *gin.Context) {
	var req SavePromptRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	p, err := h.svc.Create(c.Request.Context(), services.SaveInput{
		Fields:   req.ToFields(),
		Generate: req.Generate,
	})
	if err != nil {
		common.RespondError(c, err, notFound)
		return
	}
	c.JSON(http.StatusCreated, utils.NewCreatedResponse("Prompt saved", toResponse(*p)))
}

// UpdatePrompt godoc
// @Summary Update a prompt
// @Description Replaces the prompt fields. The assembled text is kept unless generate is set.
// @Tags prompts
// @Accept json
// @Produce json
// @Param id path int true "Prompt ID"
// @Param request body SavePromptRequest true "Prompt fields"
// @Success 200 {object} utils.Response{data=PromptResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /prompts/{id} [put]
func (h *Handler) UpdatePrompt(c *gin.Context) {
	id, ok := common.ParseID(c)
	if !ok {
		return
	}

	var req SavePromptRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	p, err := h.svc.Update(c.Request.Context(), id, services.SaveInput{
		Fields:   req.ToFields(),
		Generate: req.Generate,
	})
	if err != nil {
		common.RespondError(c, err, notFound)
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Prompt updated", toResponse(*p)))
}

// DeletePrompt godoc
// @Summary Delete a prompt
// @Tags prompts
// @Produce json
// @Param id path int true "Prompt ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /prompts/{id} [delete]
func (h *Handler) DeletePrompt(c *gin.Context) {
	id, ok := common.ParseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		common.RespondError(c, err, notFound)
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Prompt deleted", nil))
}

// DuplicatePrompt godoc
// @Summary Duplicate a prompt
// @Description Saves a copy under a new id with " (Copy)" appended to the title
// @Tags prompts
// @Produce json
// @Param id path int true "Prompt ID"
// @Success 201 {object} utils.Response{data=PromptResponse}
// @Failure 404 {object} utils.Response
// @Router /prompts/{id}/duplicate [post]
func (h *Handler) DuplicatePrompt(c *gin.Context) {
	id, ok := common.ParseID(c)
	if !ok {
		return
	}

	p, err := h.svc.Duplicate(c.Request.Context(), id)
	if err != nil {
		common.RespondError(c, err, notFound)
		return
	}
	c.JSON(http.StatusCreated, utils.NewCreatedResponse("Prompt duplicated", toResponse(*p)))
}

// GeneratePrompt godoc
// @Summary Re-assemble a saved prompt
// @Tags prompts
// @Produce json
// @Param id path int true "Prompt ID"
// @Success 200 {object} utils.Response{data=PromptResponse}
// @Failure 404 {object} utils.Response
// @Router /prompts/{id}/generate [post]
func (h *Handler) GeneratePrompt(c *gin.Context) {
	id, ok := common.ParseID(c)
	if !ok {
		return
	}

	p, err := h.svc.Generate(c.Request.Context(), id)
	if err != nil {
		common.RespondError(c, err, notFound)
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Prompt generated", toResponse(*p)))
}

// PreviewPrompt godoc
// @Summary Render a saved prompt with variable values
// @Tags prompts
// @Accept json
// @Produce json
// @Param id path int true "Prompt ID"
// @Param request body PreviewRequest false "Variable bindings"
// @Success 200 {object} utils.Response{data=services.Preview}
// @Failure 404 {object} utils.Response
// @Router /prompts/{id}/preview [post]
func (h *Handler) PreviewPrompt(c *gin.Context) {
	id, ok := common.ParseID(c)
	if !ok {
		return
	}

	var req PreviewRequest
	if c.Request.ContentLength != 0 && !utils.BindAndValidate(c, &req) {
		return
	}

	preview, err := h.svc.Preview(c.Request.Context(), id, req.Bindings)
	if err != nil {
		common.RespondError(c, err, notFound)
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", preview))
}

// ExportPrompt godoc
// @Summary Export a prompt
// @Description Formats: text, json, markdown, html, yaml. Pass var.<name>=value to fill placeholders.
// @Tags prompts
// @Produce plain
// @Param id path int true "Prompt ID"
// @Param format query string false "Export format" default(text)
// @Success 200 {string} string
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /prompts/{id}/export [get]
func (h *Handler) ExportPrompt(c *gin.Context) {
	id, ok := common.ParseID(c)
	if !ok {
		return
	}

	format, err := services.ParseExportFormat(c.Query("format"))
	if err != nil {
		common.RespondError(c, err, notFound)
		return
	}

	body, err := h.svc.Export(c.Request.Context(), id, format, common.QueryBindings(c))
	if err != nil {
		common.RespondError(c, err, notFound)
		return
	}
	c.Data(http.StatusOK, format.ContentType(), body)
}
