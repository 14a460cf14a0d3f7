package repository

import (
	"errors"

	"inventix/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SettingsRepository interface {
	Get(orgID uuid.UUID) (*model.Settings, error)
	Upsert(settings *model.Settings) error
}

type settingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepo(db *gorm.DB) SettingsRepository {
	return &settingsRepo{db}
}

// Get returns the organization's settings, creating the default record on
// first access.
func (r *settingsRepo) Get(orgID uuid.UUID) (*model.Settings, error) {
	var settings model.Settings
	err := r.db.First(&settings, "org_id = ?", orgID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := model.DefaultSettings(orgID)
		if err := r.db.Create(defaults).Error; err != nil {
			return nil, err
		}
		return defaults, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepo) Upsert(settings *model.Settings) error {
	existing, err := r.Get(settings.OrgID)
	if err != nil {
		return err
	}
	settings.ID = existing.ID
	settings.CreatedAt = existing.CreatedAt
	return r.db.Save(settings).Error
}
