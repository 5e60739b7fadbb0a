package services

import (
	"context"
	"errors"
	"fmt"

	"promptsmith-backend/internal/models"
	"promptsmith-backend/internal/store"
	"promptsmith-backend/internal/utils"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var ErrInvalidSettings = errors.New("invalid settings")

type SettingsService struct {
	store    store.SettingsStore
	validate *validator.Validate
	log      *zap.Logger
}

func NewSettingsService(s store.SettingsStore, log *zap.Logger) *SettingsService {
	v := validator.New()
	utils.UseJSONFieldNames(v)
	return &SettingsService{store: s, validate: v, log: log}
}

func (s *SettingsService) Get(ctx context.Context) (*models.Settings, error) {
	return s.store.Get(ctx)
}

// Update validates and stores settings. Validation failures wrap both
// ErrInvalidSettings and the validator's errors.
func (s *SettingsService) Update(ctx context.Context, settings models.Settings) (*models.Settings, error) {
	if err := s.validate.Struct(settings); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	saved, err := s.store.Save(ctx, settings)
	if err != nil {
		return nil, err
	}
	s.log.Info("settings updated", zap.String("theme", string(saved.Preferences.Theme)))
	return saved, nil
}
