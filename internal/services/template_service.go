package services

import (
	"context"
	"strings"
	"time"

	"promptsmith-backend/internal/models"
	"promptsmith-backend/internal/store"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const TemplatesCacheKey = "templates:all"

type TemplateService struct {
	store store.TemplateStore
	cache readThrough
}

func NewTemplateService(s store.TemplateStore, cache *redis.Client, cacheTTL time.Duration, log *zap.Logger) *TemplateService {
	return &TemplateService{
		store: s,
		cache: readThrough{client: cache, ttl: cacheTTL, log: log},
	}
}

// List retrieves all templates sorted by name, with caching
func (s *TemplateService) List(ctx context.Context) ([]models.Template, error) {
	var cached []models.Template
	if s.cache.get(ctx, TemplatesCacheKey, &cached) {
		return cached, nil
	}

	templates, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.set(ctx, TemplatesCacheKey, templates)
	return templates, nil
}

func (s *TemplateService) Get(ctx context.Context, id uint) (*models.Template, error) {
	return s.store.Get(ctx, id)
}

func (s *TemplateService) ListByCategory(ctx context.Context, category string) ([]models.Template, error) {
	return s.store.ListByCategory(ctx, category)
}

// Search filters by category ("" or "all" for every category) and then by
// a case-insensitive term over name, description and category.
func (s *TemplateService) Search(ctx context.Context, category, term string) ([]models.Template, error) {
	var (
		templates []models.Template
		err       error
	)
	if category == "" || strings.EqualFold(category, "all") {
		templates, err = s.List(ctx)
	} else {
		templates, err = s.ListByCategory(ctx, category)
	}
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return templates, nil
	}
	matched := []models.Template{}
	for _, t := range templates {
		if strings.Contains(strings.ToLower(t.Name), term) ||
			strings.Contains(strings.ToLower(t.Description), term) ||
			strings.Contains(strings.ToLower(t.Category), term) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

// NewDraft seeds prompt fields from a template.
func (s *TemplateService) NewDraft(ctx context.Context, id uint) (models.PromptFields, error) {
	t, err := s.store.Get(ctx, id)
	if err != nil {
		return models.PromptFields{}, err
	}
	return models.PromptFields{
		Title:    t.Name,
		Tags:     []string{t.Category},
		ToneRole: t.ToneRole,
		Goal:     t.Goal,
	}, nil
}
