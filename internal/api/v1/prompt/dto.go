package prompt

import (
	"promptsmith-backend/internal/api/v1/common"
	"promptsmith-backend/internal/models"
	engine "promptsmith-backend/internal/prompt"
)

type SavePromptRequest struct {
	common.FieldsPayload
	// Generate assembles the prompt from the submitted fields before saving.
	Generate bool `json:"generate"`
}

type PreviewRequest struct {
	Bindings map[string]string `json:"bindings"`
}

type PromptResponse struct {
	models.SavedPrompt
	Stale bool `json:"stale"`
}

type PromptListResponse struct {
	Prompts []PromptResponse `json:"prompts"`
	Total   int              `json:"total"`
}

func toResponse(p models.SavedPrompt) PromptResponse {
	return PromptResponse{
		SavedPrompt: p,
		Stale:       engine.IsStale(p.PromptFields, p.AssembledFrom),
	}
}
