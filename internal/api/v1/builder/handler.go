package builder

import (
	"net/http"

	"promptsmith-backend/internal/api/v1/common"
	"promptsmith-backend/internal/services"
	"promptsmith-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type PreviewRequest struct {
	common.FieldsPayload
	Bindings map[string]string `json:"bindings"`
}

// Preview godoc
// @Summary Preview an unsaved draft
// @Description Assembles the draft, lists its variables and fills in any bindings. Nothing is stored.
// @Tags builder
// @Accept json
// @Produce json
// @Param request body PreviewRequest true "Draft fields and bindings"
// @Success 200 {object} utils.Response{data=services.Preview}
// @Failure 400 {object} utils.Response{data=utils.ValidationErrorData}
// @Router /builder/preview [post]
func Preview(c *gin.Context) {
	var req PreviewRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", services.BuildPreview(req.ToFields(), req.Bindings)))
}
