package services

import (
	"promptsmith-backend/internal/models"
	"promptsmith-backend/internal/prompt"
)

// BuildPreview runs a draft through assembly, extraction and substitution
// without saving anything.
func BuildPreview(fields models.PromptFields, bindings map[string]string) Preview {
	fields.Tags = prompt.NormalizeTags(fields.Tags)

	d := prompt.NewDraft(fields)
	assembled := d.Generate()

	state := d.State()
	if assembled == "" {
		state = prompt.StateOf(fields, "")
	}

	return Preview{
		Assembled:   assembled,
		Rendered:    prompt.Substitute(assembled, bindings),
		Variables:   prompt.FieldVariables(fields),
		Unresolved:  nonNil(prompt.Unresolved(assembled, bindings)),
		State:       state,
		CanGenerate: d.CanGenerate(),
		SourceHash:  d.AssembledFrom(),
	}
}
