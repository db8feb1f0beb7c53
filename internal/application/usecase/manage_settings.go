package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/colorline/internal/domain/entity"
	"github.com/bnema/colorline/internal/domain/repository"
	"github.com/bnema/colorline/internal/domain/validation"
	"github.com/bnema/colorline/internal/logging"
)

// ErrInvalidSettings is returned when a settings profile fails validation.
var ErrInvalidSettings = errors.New("invalid settings")

// ManageSettingsUseCase loads and stores color settings profiles.
type ManageSettingsUseCase struct {
	repo     repository.SettingsRepository
	defaults entity.Settings
	now      func() time.Time
}

// NewManageSettingsUseCase creates a new settings use case. Fields left
// empty in a stored profile fall back to defaults.
func NewManageSettingsUseCase(repo repository.SettingsRepository, defaults entity.Settings) *ManageSettingsUseCase {
	return &ManageSettingsUseCase{
		repo:     repo,
		defaults: defaults.Merge(entity.DefaultSettings()),
		now:      time.Now,
	}
}

// Defaults returns the fallback settings.
func (uc *ManageSettingsUseCase) Defaults() entity.Settings {
	return uc.defaults
}

// Load returns the named profile merged over the defaults. A profile that
// has never been saved yields the defaults under that name.
func (uc *ManageSettingsUseCase) Load(ctx context.Context, profile string) (entity.Settings, error) {
	if profile == "" {
		profile = entity.DefaultProfile
	}

	stored, err := uc.repo.Get(ctx, profile)
	if err != nil {
		return entity.Settings{}, fmt.Errorf("failed to load settings %q: %w", profile, err)
	}

	if stored == nil {
		logging.FromContext(ctx).Debug().Str("profile", profile).Msg("settings profile not found, using defaults")
		s := uc.defaults
		s.Profile = profile
		return s, nil
	}
	return stored.Merge(uc.defaults), nil
}

// Save validates and stores the profile, returning what was persisted.
func (uc *ManageSettingsUseCase) Save(ctx context.Context, settings entity.Settings) (entity.Settings, error) {
	s := settings.Merge(uc.defaults)

	if errs := validation.ValidateSettings("", s); len(errs) > 0 {
		return entity.Settings{}, fmt.Errorf("%w:\n  - %s", ErrInvalidSettings, strings.Join(errs, "\n  - "))
	}

	s.UpdatedAt = uc.now().UTC()
	if err := uc.repo.Save(ctx, &s); err != nil {
		return entity.Settings{}, fmt.Errorf("failed to save settings %q: %w", s.Profile, err)
	}

	logging.FromContext(ctx).Info().
		Str("profile", s.Profile).
		Str("start", s.StartColor).
		Str("end", s.EndColor).
		Int("steps", s.Steps).
		Msg("settings saved")
	return s, nil
}

// Reset removes the stored profile so it falls back to defaults.
func (uc *ManageSettingsUseCase) Reset(ctx context.Context, profile string) error {
	if profile == "" {
		profile = entity.DefaultProfile
	}
	if err := uc.repo.Delete(ctx, profile); err != nil {
		return fmt.Errorf("failed to reset settings %q: %w", profile, err)
	}
	logging.FromContext(ctx).Info().Str("profile", profile).Msg("settings reset")
	return nil
}

// List returns every stored profile.
func (uc *ManageSettingsUseCase) List(ctx context.Context) ([]entity.Settings, error) {
	stored, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	out := make([]entity.Settings, 0, len(stored))
	for _, s := range stored {
		if s != nil {
			out = append(out, s.Merge(uc.defaults))
		}
	}
	return out, nil
}
