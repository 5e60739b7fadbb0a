package services

import (
	"context"
	"testing"
	"time"

	"promptsmith-backend/internal/models"
	"promptsmith-backend/internal/store"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestTemplateService(t *testing.T, cache *redis.Client) *TemplateService {
	t.Helper()
	templates, err := store.SeedTemplates()
	assert.NoError(t, err)
	return NewTemplateService(store.NewMemoryTemplateStore(templates), cache, time.Hour, zap.NewNop())
}

func templateNames(templates []models.Template) []string {
	names := []string{}
	for _, t := range templates {
		names = append(names, t.Name)
	}
	return names
}

func TestTemplateServiceListCaches(t *testing.T) {
	mr, client := setupTestRedis()
	defer mr.Close()
	svc := newTestTemplateService(t, client)
	ctx := context.Background()

	list, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, list, 7)
	assert.True(t, mr.Exists(TemplatesCacheKey))
	assert.Equal(t, time.Hour, mr.TTL(TemplatesCacheKey))

	// a hit is served from the cache
	mr.Set(TemplatesCacheKey, `[{"id":99,"name":"Cached","category":"Writing"}]`)
	list, err = svc.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Cached"}, templateNames(list))
}

func TestTemplateServiceCorruptCacheFallsBack(t *testing.T) {
	mr, client := setupTestRedis()
	defer mr.Close()
	svc := newTestTemplateService(t, client)

	mr.Set(TemplatesCacheKey, "not json")
	list, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, list, 7)
}

func TestTemplateServiceSearch(t *testing.T) {
	svc := newTestTemplateService(t, nil)
	ctx := context.Background()

	tests := []struct {
		category, term string
		want           []string
	}{
		{"all", "", []string{
			"API Documentation Writer", "Ad Copy Generator", "Blog Post Writer", "Bug Hunter",
			"Data Insight Summarizer", "Lesson Planner", "Social Media Calendar",
		}},
		{"", "writer", []string{"API Documentation Writer", "Blog Post Writer"}},
		{"coding", "", []string{"API Documentation Writer", "Bug Hunter"}},
		{"Marketing", "paid", []string{"Ad Copy Generator"}},
		{"ALL", "analysis", []string{"Data Insight Summarizer"}},
		{"education", "bug", []string{}},
	}
	for _, tt := range tests {
		got, err := svc.Search(ctx, tt.category, tt.term)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, templateNames(got), "category=%q term=%q", tt.category, tt.term)
	}
}

func TestTemplateServiceNewDraft(t *testing.T) {
	svc := newTestTemplateService(t, nil)
	ctx := context.Background()

	fields, err := svc.NewDraft(ctx, 5)
	assert.NoError(t, err)
	assert.Equal(t, "Lesson Planner", fields.Title)
	assert.Equal(t, []string{"Education"}, []string(fields.Tags))
	assert.Equal(t, "Act as a {{grade_level}} teacher", fields.ToneRole)
	assert.Empty(t, fields.Context)

	_, err = svc.NewDraft(ctx, 77)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.Get(ctx, 77)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
