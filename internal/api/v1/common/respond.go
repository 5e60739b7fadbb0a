// Package common holds helpers shared by the v1 handlers.
package common

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"promptsmith-backend/internal/models"
	"promptsmith-backend/internal/services"
	"promptsmith-backend/internal/store"
	"promptsmith-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// BindingQueryPrefix marks query parameters that carry variable bindings,
// e.g. ?var.topic=Go
const BindingQueryPrefix = "var."

// FieldsPayload is the JSON shape of the editable prompt fields.
type FieldsPayload struct {
	Title       string   `json:"title" binding:"max=200"`
	Tags        []string `json:"tags" binding:"max=20,dive,max=40"`
	ToneRole    string   `json:"tone_role"`
	Goal        string   `json:"goal"`
	Context     string   `json:"context"`
	Instruction string   `json:"instruction"`
	Format      string   `json:"format"`
	Examples    string   `json:"examples"`
}

func (p FieldsPayload) ToFields() models.PromptFields {
	return models.PromptFields{
		Title:       p.Title,
		Tags:        p.Tags,
		ToneRole:    p.ToneRole,
		Goal:        p.Goal,
		Context:     p.Context,
		Instruction: p.Instruction,
		Format:      p.Format,
		Examples:    p.Examples,
	}
}

// ParseID reads the :id path parameter. On failure it writes a 400 and
// returns false.
func ParseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid ID"))
		return 0, false
	}
	return uint(id), true
}

// QueryBindings collects var.<name>=value query parameters.
func QueryBindings(c *gin.Context) map[string]string {
	bindings := map[string]string{}
	for key, values := range c.Request.URL.Query() {
		if name, ok := strings.CutPrefix(key, BindingQueryPrefix); ok && name != "" && len(values) > 0 {
			bindings[name] = values[0]
		}
	}
	return bindings
}

// RespondError maps service errors onto HTTP statuses. notFound is the
// message used for store.ErrNotFound.
func RespondError(c *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, notFound))
	case errors.Is(err, services.ErrInvalidSettings):
		utils.RespondValidationError(c, err)
	case errors.Is(err, services.ErrTitleRequired), errors.Is(err, services.ErrUnsupportedFormat):
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Internal server error"))
	}
}
