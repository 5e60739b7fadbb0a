package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"promptsmith-backend/internal/models"
	"promptsmith-backend/internal/prompt"
	"promptsmith-backend/internal/store"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const PromptCacheKeyPrefix = "prompt:id:"

var ErrTitleRequired = errors.New("title is required")

// SaveInput carries a draft to be saved. When Generate is set the prompt is
// assembled from Fields before it is stored; otherwise the previously
// generated text is kept as is.
type SaveInput struct {
	Fields   models.PromptFields
	Generate bool
}

// Preview is an assembled prompt with bindings applied.
type Preview struct {
	Assembled   string       `json:"assembled"`
	Rendered    string       `json:"rendered"`
	Variables   []string     `json:"variables"`
	Unresolved  []string     `json:"unresolved"`
	Stale       bool         `json:"stale"`
	State       prompt.State `json:"state"`
	CanGenerate bool         `json:"can_generate"`
	SourceHash  string       `json:"source_hash"`
}

type PromptService struct {
	store    store.PromptStore
	cache    readThrough
	log      *zap.Logger
	inflight singleflight.Group

	// cacheGen counts invalidations per id. A Get only fills the cache if no
	// invalidation happened since it read from the store.
	cacheMu  sync.Mutex
	cacheGen map[uint]uint64
}

// NewPromptService wires a prompt store with an optional Redis cache.
func NewPromptService(s store.PromptStore, cache *redis.Client, cacheTTL time.Duration, log *zap.Logger) *PromptService {
	return &PromptService{
		store: s,
		cache:    readThrough{client: cache, ttl: cacheTTL, log: log},
		log:      log,
		cacheGen: make(map[uint]uint64),
	}
}

// List returns saved prompts, newest first. A non-empty search keeps the
// prompts whose title, tags, tone/role or goal contain it, ignoring case.
func (s *PromptService) List(ctx context.Context, search string) ([]models.SavedPrompt, error) {
	prompts, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return prompts, nil
	}

	matched := make([]models.SavedPrompt, 0, len(prompts))
	for _, p := range prompts {
		if matchesPrompt(p, term) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func matchesPrompt(p models.SavedPrompt, term string) bool {
	if strings.Contains(strings.ToLower(p.Title), term) ||
		strings.Contains(strings.ToLower(p.ToneRole), term) ||
		strings.Contains(strings.ToLower(p.Goal), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// Get retrieves a prompt by id, using cache
func (s *PromptService) Get(ctx context.Context, id uint) (*models.SavedPrompt, error) {
	key := promptCacheKey(id)

	var cached models.SavedPrompt
	if s.cache.get(ctx, key, &cached) {
		return &cached, nil
	}

	gen := s.generation(id)
	p, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.fill(ctx, id, gen, p)
	return p, nil
}

// Create saves a new prompt. Identical submissions that arrive while one is
// still being written share its result instead of creating duplicates.
func (s *PromptService) Create(ctx context.Context, in SaveInput) (*models.SavedPrompt, error) {
	fields, err := normalize(in.Fields)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("create:%s:%t", contentKey(fields), in.Generate)
	return s.once(key, func() (*models.SavedPrompt, error) {
		d := prompt.NewDraft(fields)
		if in.Generate {
			d.Generate()
		}

		p, err := s.store.Create(ctx, draftInput(d))
		if err != nil {
			return nil, fmt.Errorf("create prompt: %w", err)
		}
		d.MarkSaved(p.ID)
		s.log.Info("prompt created",
			zap.Uint("id", p.ID),
			zap.Int("variables", len(p.Variables)),
			zap.Stringer("state", d.State()),
		)
		return p, nil
	})
}

// Update replaces a prompt's fields. The assembled text only changes when
// in.Generate is set.
func (s *PromptService) Update(ctx context.Context, id uint, in SaveInput) (*models.SavedPrompt, error) {
	fields, err := normalize(in.Fields)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("update:%d:%s:%t", id, contentKey(fields), in.Generate)
	return s.once(key, func() (*models.SavedPrompt, error) {
		existing, err := s.store.Get(ctx, id)
		if err != nil {
			return nil, err
		}

		d := prompt.DraftFromSaved(*existing)
		d.Fields = fields
		if in.Generate {
			d.Generate()
		}

		p, err := s.store.Update(ctx, id, draftInput(d))
		if err != nil {
			return nil, err
		}
		s.invalidate(ctx, id)
		d.MarkSaved(id)
		s.log.Info("prompt updated",
			zap.Uint("id", id),
			zap.Bool("stale", d.Stale()),
			zap.Stringer("state", d.State()),
		)
		return p, nil
	})
}

// Generate re-assembles a stored prompt from its current fields.
func (s *PromptService) Generate(ctx context.Context, id uint) (*models.SavedPrompt, error) {
	existing, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Update(ctx, id, SaveInput{Fields: existing.PromptFields, Generate: true})
}

// Delete deletes a prompt by id
func (s *PromptService) Delete(ctx context.Context, id uint) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	s.log.Info("prompt deleted", zap.Uint("id", id))
	return nil
}

// Duplicate copies a prompt under a new id with " (Copy)" appended to the title.
func (s *PromptService) Duplicate(ctx context.Context, id uint) (*models.SavedPrompt, error) {
	src, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	d := prompt.DraftFromSaved(*src)
	d.Fields.Title = src.Title + " (Copy)"

	p, err := s.store.Create(ctx, draftInput(d))
	if err != nil {
		return nil, fmt.Errorf("duplicate prompt %d: %w", id, err)
	}
	d.MarkSaved(p.ID)
	return p, nil
}

// Preview applies bindings to the stored assembled prompt. It does not
// re-assemble; Stale tells the caller whether it should.
func (s *PromptService) Preview(ctx context.Context, id uint, bindings map[string]string) (*Preview, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	d := prompt.DraftFromSaved(*p)
	return &Preview{
		Assembled:   d.Assembled(),
		Rendered:    prompt.Substitute(d.Assembled(), bindings),
		Variables:   append([]string{}, p.Variables...),
		Unresolved:  nonNil(prompt.Unresolved(d.Assembled(), bindings)),
		Stale:       d.Stale(),
		State:       d.State(),
		CanGenerate: d.CanGenerate(),
		SourceHash:  prompt.SourceHash(d.Fields),
	}, nil
}

func (s *PromptService) once(key string, fn func() (*models.SavedPrompt, error)) (*models.SavedPrompt, error) {
	v, err, shared := s.inflight.Do(key, func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.log.Debug("duplicate submission joined in-flight save", zap.String("key", key))
	}
	p := v.(*models.SavedPrompt).Clone()
	return &p, nil
}

// draftInput is what gets stored for d: its fields and its last generation.
func draftInput(d *prompt.Draft) store.PromptInput {
	return store.PromptInput{
		Fields:          d.Fields,
		AssembledPrompt: d.Assembled(),
		AssembledFrom:   d.AssembledFrom(),
	}
}

func (s *PromptService) generation(id uint) uint64 {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	return s.cacheGen[id]
}

// fill caches p unless id was invalidated after gen was taken.
func (s *PromptService) fill(ctx context.Context, id uint, gen uint64, p *models.SavedPrompt) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	if s.cacheGen[id] != gen {
		return
	}
	s.cache.set(ctx, promptCacheKey(id), p)
}

// invalidate drops the cached record. Call it after the store write.
func (s *PromptService) invalidate(ctx context.Context, id uint) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	s.cacheGen[id]++
	s.cache.del(ctx, promptCacheKey(id))
}

func normalize(f models.PromptFields) (models.PromptFields, error) {
	f.Title = strings.TrimSpace(f.Title)
	if f.Title == "" {
		return f, ErrTitleRequired
	}
	f.Tags = prompt.NormalizeTags(f.Tags)
	return f, nil
}

// contentKey identifies a draft by everything the user typed into it.
func contentKey(f models.PromptFields) string {
	data, _ := json.Marshal(f)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func promptCacheKey(id uint) string {
	return fmt.Sprintf("%s%d", PromptCacheKeyPrefix, id)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
