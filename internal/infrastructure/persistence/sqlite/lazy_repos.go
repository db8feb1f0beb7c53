package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/colorline/internal/application/port"
	"github.com/bnema/colorline/internal/domain/entity"
	"github.com/bnema/colorline/internal/domain/repository"
)

// LazySettingsRepository defers opening the database until a profile is
// first read or written.
type LazySettingsRepository struct {
	provider port.DatabaseProvider
	repo     repository.SettingsRepository
	once     sync.Once
	initErr  error
}

// NewLazySettingsRepository creates a lazy-loading settings repository.
func NewLazySettingsRepository(provider port.DatabaseProvider) repository.SettingsRepository {
	return &LazySettingsRepository{provider: provider}
}

func (r *LazySettingsRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewSettingsRepository(db)
	})
	return r.initErr
}

func (r *LazySettingsRepository) Get(ctx context.Context, profile string) (*entity.Settings, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Get(ctx, profile)
}

func (r *LazySettingsRepository) Save(ctx context.Context, settings *entity.Settings) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, settings)
}

func (r *LazySettingsRepository) List(ctx context.Context) ([]*entity.Settings, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.List(ctx)
}

func (r *LazySettingsRepository) Delete(ctx context.Context, profile string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, profile)
}
