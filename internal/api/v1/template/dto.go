package template

import (
	"promptsmith-backend/internal/models"
	"promptsmith-backend/internal/prompt"
)

type TemplateListResponse struct {
	Templates []models.Template `json:"templates"`
	Total     int               `json:"total"`
}

// DraftResponse is a builder draft seeded from a template.
type DraftResponse struct {
	Fields      models.PromptFields `json:"fields"`
	Variables   []string            `json:"variables"`
	State       prompt.State        `json:"state"`
	CanGenerate bool                `json:"can_generate"`
}
