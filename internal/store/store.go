// Package store persists saved prompts and settings and serves the
// read-only template catalog.
package store

import (
	"context"
	"errors"

	"promptsmith-backend/internal/models"
)

// ErrNotFound is returned when an operation references an id that does not exist.
var ErrNotFound = errors.New("record not found")

// PromptInput is what callers supply when creating or updating a prompt.
// The store derives ids, timestamps and variables itself.
type PromptInput struct {
	Fields          models.PromptFields
	AssembledPrompt string
	AssembledFrom   string
}

type PromptStore interface {
	// List returns every prompt, most recently updated first.
	List(ctx context.Context) ([]models.SavedPrompt, error)
	Get(ctx context.Context, id uint) (*models.SavedPrompt, error)
	Create(ctx context.Context, in PromptInput) (*models.SavedPrompt, error)
	// Update replaces everything except id, created_at and version.
	Update(ctx context.Context, id uint, in PromptInput) (*models.SavedPrompt, error)
	Delete(ctx context.Context, id uint) error
}

type TemplateStore interface {
	// List returns templates sorted by name.
	List(ctx context.Context) ([]models.Template, error)
	Get(ctx context.Context, id uint) (*models.Template, error)
	// ListByCategory matches category case-insensitively.
	ListByCategory(ctx context.Context, category string) ([]models.Template, error)
}

type SettingsStore interface {
	Get(ctx context.Context) (*models.Settings, error)
	Save(ctx context.Context, s models.Settings) (*models.Settings, error)
}
