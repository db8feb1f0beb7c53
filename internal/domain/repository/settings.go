package repository

import (
	"context"

	"github.com/bnema/colorline/internal/domain/entity"
)

// SettingsRepository persists color settings profiles.
type SettingsRepository interface {
	// Get returns the profile, or nil when it has never been saved.
	Get(ctx context.Context, profile string) (*entity.Settings, error)

	// Save creates or replaces the profile.
	Save(ctx context.Context, settings *entity.Settings) error

	// List returns every saved profile ordered by name.
	List(ctx context.Context) ([]*entity.Settings, error)

	// Delete removes the profile; deleting a missing profile is not an error.
	Delete(ctx context.Context, profile string) error
}
