package store

import (
	"context"
	"errors"

	"promptsmith-backend/internal/models"
	"promptsmith-backend/internal/prompt"

	"gorm.io/gorm"
)

// GormPromptStore persists prompts through GORM.
type GormPromptStore struct {
	db *gorm.DB
}

func NewGormPromptStore(db *gorm.DB) *GormPromptStore {
	return &GormPromptStore{db: db}
}

// Seed inserts prompts when the table is empty, keeping their ids and timestamps.
func (s *GormPromptStore) Seed(ctx context.Context, prompts []models.SavedPrompt) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.SavedPrompt{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 || len(prompts) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range prompts {
			rec := prompts[i].Clone()
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *GormPromptStore) List(ctx context.Context) ([]models.SavedPrompt, error) {
	var prompts []models.SavedPrompt
	if err := s.db.WithContext(ctx).Order("updated_at desc, id desc").Find(&prompts).Error; err != nil {
		return nil, err
	}
	return prompts, nil
}

func (s *GormPromptStore) Get(ctx context.Context, id uint) (*models.SavedPrompt, error) {
	var p models.SavedPrompt
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *GormPromptStore) Create(ctx context.Context, in PromptInput) (*models.SavedPrompt, error) {
	p := &models.SavedPrompt{
		PromptFields:    in.Fields,
		AssembledPrompt: in.AssembledPrompt,
		AssembledFrom:   in.AssembledFrom,
		Variables:       prompt.FieldVariables(in.Fields),
		Version:         1,
	}
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (s *GormPromptStore) Update(ctx context.Context, id uint, in PromptInput) (*models.SavedPrompt, error) {
	var p models.SavedPrompt
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		p.PromptFields = in.Fields
		p.AssembledPrompt = in.AssembledPrompt
		p.AssembledFrom = in.AssembledFrom
		p.Variables = prompt.FieldVariables(in.Fields)

		return tx.Save(&p).Error
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *GormPromptStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.SavedPrompt{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GormSettingsStore keeps the settings row with id 1.
type GormSettingsStore struct {
	db *gorm.DB
}

func NewGormSettingsStore(db *gorm.DB) *GormSettingsStore {
	return &GormSettingsStore{db: db}
}

// Get returns the stored settings, creating the defaults on first use.
func (s *GormSettingsStore) Get(ctx context.Context) (*models.Settings, error) {
	settings := models.DefaultSettings()
	if err := s.db.WithContext(ctx).FirstOrCreate(&settings, models.Settings{ID: 1}).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *GormSettingsStore) Save(ctx context.Context, settings models.Settings) (*models.Settings, error) {
	settings.ID = 1
	if err := s.db.WithContext(ctx).Save(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}
