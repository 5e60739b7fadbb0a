package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"promptsmith-backend/internal/models"
	"promptsmith-backend/internal/prompt"
)

// MemoryPromptStore keeps prompts in a map owned by the store value. It is
// safe for concurrent use.
type MemoryPromptStore struct {
	mu      sync.RWMutex
	prompts map[uint]*models.SavedPrompt
	lastID  uint
	now     func() time.Time
}

func NewMemoryPromptStore(seed []models.SavedPrompt) *MemoryPromptStore {
	s := &MemoryPromptStore{
		prompts: make(map[uint]*models.SavedPrompt, len(seed)),
		now:     time.Now,
	}
	for _, p := range seed {
		rec := p.Clone()
		s.prompts[rec.ID] = &rec
		if rec.ID > s.lastID {
			s.lastID = rec.ID
		}
	}
	return s
}

func (s *MemoryPromptStore) List(_ context.Context) ([]models.SavedPrompt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.SavedPrompt, 0, len(s.prompts))
	for _, p := range s.prompts {
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *MemoryPromptStore) Get(_ context.Context, id uint) (*models.SavedPrompt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.prompts[id]
	if !ok {
		return nil, ErrNotFound
	}
	rec := p.Clone()
	return &rec, nil
}

// Create assigns an id above every id the store has handed out, including
// deleted ones.
func (s *MemoryPromptStore) Create(_ context.Context, in PromptInput) (*models.SavedPrompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	now := s.now()
	rec := models.SavedPrompt{
		ID:              s.lastID,
		PromptFields:    in.Fields,
		AssembledPrompt: in.AssembledPrompt,
		AssembledFrom:   in.AssembledFrom,
		Variables:       prompt.FieldVariables(in.Fields),
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	rec = rec.Clone()
	s.prompts[rec.ID] = &rec

	out := rec.Clone()
	return &out, nil
}

func (s *MemoryPromptStore) Update(_ context.Context, id uint, in PromptInput) (*models.SavedPrompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.prompts[id]
	if !ok {
		return nil, ErrNotFound
	}
	rec := models.SavedPrompt{
		ID:              id,
		PromptFields:    in.Fields,
		AssembledPrompt: in.AssembledPrompt,
		AssembledFrom:   in.AssembledFrom,
		Variables:       prompt.FieldVariables(in.Fields),
		Version:         existing.Version,
		CreatedAt:       existing.CreatedAt,
		UpdatedAt:       s.now(),
	}
	rec = rec.Clone()
	s.prompts[id] = &rec

	out := rec.Clone()
	return &out, nil
}

func (s *MemoryPromptStore) Delete(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.prompts[id]; !ok {
		return ErrNotFound
	}
	delete(s.prompts, id)
	return nil
}

// MemoryTemplateStore serves a fixed template catalog.
type MemoryTemplateStore struct {
	templates []models.Template
}

func NewMemoryTemplateStore(templates []models.Template) *MemoryTemplateStore {
	sorted := append([]models.Template(nil), templates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return &MemoryTemplateStore{templates: sorted}
}

func (s *MemoryTemplateStore) List(_ context.Context) ([]models.Template, error) {
	return append([]models.Template(nil), s.templates...), nil
}

func (s *MemoryTemplateStore) Get(_ context.Context, id uint) (*models.Template, error) {
	for _, t := range s.templates {
		if t.ID == id {
			tmpl := t
			return &tmpl, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryTemplateStore) ListByCategory(_ context.Context, category string) ([]models.Template, error) {
	out := []models.Template{}
	for _, t := range s.templates {
		if strings.EqualFold(t.Category, category) {
			out = append(out, t)
		}
	}
	return out, nil
}

type MemorySettingsStore struct {
	mu       sync.RWMutex
	settings models.Settings
}

func NewMemorySettingsStore() *MemorySettingsStore {
	return &MemorySettingsStore{settings: models.DefaultSettings()}
}

func (s *MemorySettingsStore) Get(_ context.Context) (*models.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.settings
	return &out, nil
}

func (s *MemorySettingsStore) Save(_ context.Context, settings models.Settings) (*models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	settings.ID = 1
	settings.UpdatedAt = time.Now()
	s.settings = settings
	out := s.settings
	return &out, nil
}
