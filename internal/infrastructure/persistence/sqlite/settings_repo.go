package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/colorline/internal/domain/entity"
	"github.com/bnema/colorline/internal/domain/repository"
	"github.com/bnema/colorline/internal/logging"
)

const (
	selectSettings = `SELECT profile, start_color, end_color, preview_color, font_size, steps, updated_at FROM settings`

	upsertSettings = `INSERT INTO settings (profile, start_color, end_color, preview_color, font_size, steps, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(profile) DO UPDATE SET
    start_color = excluded.start_color,
    end_color = excluded.end_color,
    preview_color = excluded.preview_color,
    font_size = excluded.font_size,
    steps = excluded.steps,
    updated_at = excluded.updated_at`

	deleteSettings = `DELETE FROM settings WHERE profile = ?`
)

type settingsRepo struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SQLite-backed settings repository.
func NewSettingsRepository(db *sql.DB) repository.SettingsRepository {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) Get(ctx context.Context, profile string) (*entity.Settings, error) {
	logging.FromContext(ctx).Debug().Str("profile", profile).Msg("getting settings")

	row := r.db.QueryRowContext(ctx, selectSettings+` WHERE profile = ?`, profile)
	s, err := scanSettings(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *settingsRepo) Save(ctx context.Context, s *entity.Settings) error {
	if s == nil {
		return errors.New("settings cannot be nil")
	}
	logging.FromContext(ctx).Debug().Str("profile", s.Profile).Msg("saving settings")

	updatedAt := s.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, upsertSettings,
		s.Profile, s.StartColor, s.EndColor, s.PreviewColor, s.FontSize, s.Steps, updatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func (r *settingsRepo) List(ctx context.Context) ([]*entity.Settings, error) {
	rows, err := r.db.QueryContext(ctx, selectSettings+` ORDER BY profile`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Settings
	for rows.Next() {
		s, err := scanSettings(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *settingsRepo) Delete(ctx context.Context, profile string) error {
	_, err := r.db.ExecContext(ctx, deleteSettings, profile)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSettings(row scanner) (*entity.Settings, error) {
	var (
		s         entity.Settings
		updatedAt int64
	)
	if err := row.Scan(&s.Profile, &s.StartColor, &s.EndColor, &s.PreviewColor, &s.FontSize, &s.Steps, &updatedAt); err != nil {
		return nil, err
	}
	s.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return &s, nil
}
