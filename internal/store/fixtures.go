package store

import (
	"embed"
	"encoding/json"
	"fmt"

	"promptsmith-backend/internal/models"
	"promptsmith-backend/internal/prompt"
)

//go:embed fixtures/*.json
var fixtureFS embed.FS

// SeedPrompts loads the bundled sample prompts.
func SeedPrompts() ([]models.SavedPrompt, error) {
	var prompts []models.SavedPrompt
	if err := readFixture("fixtures/prompts.json", &prompts); err != nil {
		return nil, err
	}
	for i := range prompts {
		reconcile(&prompts[i])
	}
	return prompts, nil
}

// SeedTemplates loads the bundled template catalog.
func SeedTemplates() ([]models.Template, error) {
	var templates []models.Template
	if err := readFixture("fixtures/templates.json", &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func readFixture(name string, v interface{}) error {
	data, err := fixtureFS.ReadFile(name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// reconcile fills the derived fields a hand-written record may omit.
func reconcile(p *models.SavedPrompt) {
	p.Variables = prompt.FieldVariables(p.PromptFields)
	if p.Version == 0 {
		p.Version = 1
	}
	if p.AssembledFrom == "" && p.AssembledPrompt != "" && p.AssembledPrompt == prompt.Assemble(p.PromptFields) {
		p.AssembledFrom = prompt.SourceHash(p.PromptFields)
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
}
