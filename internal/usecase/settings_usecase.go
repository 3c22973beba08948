package usecase

import (
	"context"

	"practice-manager/internal/converter"
	"practice-manager/internal/delivery/dto"
	"practice-manager/internal/domain/entity"
	"practice-manager/internal/domain/repository"
	"practice-manager/internal/practice"
	"practice-manager/pkg/metrics"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SettingsCache is the read-through copy of the settings row
type SettingsCache interface {
	Get(ctx context.Context) (*entity.AppSettings, error)
	Set(ctx context.Context, settings *entity.AppSettings) error
	Invalidate(ctx context.Context) error
}

type SettingsUsecase interface {
	GetSettings(ctx context.Context) (*dto.SettingsResponse, error)
	ReplaceSettings(ctx context.Context, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)
	UpdateMonthlyGoal(ctx context.Context, req *dto.UpdateGoalRequest) (*dto.SettingsResponse, error)
	CurrentSettings(ctx context.Context) (entity.AppSettings, error)
}

type settingsUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	settingsRepo repository.SettingsRepository
	cache        SettingsCache
	metrics      *metrics.Collector
}

// NewSettingsUsecase builds the settings usecase. cache may be nil.
func NewSettingsUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	settingsRepo repository.SettingsRepository,
	cache SettingsCache,
	metrics *metrics.Collector,
) SettingsUsecase {
	return &settingsUsecase{
		db:           db,
		log:          log,
		settingsRepo: settingsRepo,
		cache:        cache,
		metrics:      metrics,
	}
}

func (u *settingsUsecase) GetSettings(ctx context.Context) (*dto.SettingsResponse, error) {
	settings, err := u.CurrentSettings(ctx)
	if err != nil {
		return nil, err
	}
	return converter.SettingsToResponse(&settings), nil
}

// CurrentSettings reads through the cache. Before the first save it returns
// the defaults without persisting them.
func (u *settingsUsecase) CurrentSettings(ctx context.Context) (entity.AppSettings, error) {
	if u.cache != nil {
		cached, err := u.cache.Get(ctx)
		switch {
		case err != nil:
			u.metrics.SettingsCacheLookup("error")
		case cached != nil:
			u.metrics.SettingsCacheLookup("hit")
			return *cached, nil
		default:
			u.metrics.SettingsCacheLookup("miss")
		}
	}

	stored, err := u.settingsRepo.Get(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find settings: %+v", err)
		return entity.AppSettings{}, err
	}
	if stored == nil {
		return practice.DefaultSettings(), nil
	}

	u.fillCache(ctx, stored)
	return *stored, nil
}

func (u *settingsUsecase) ReplaceSettings(ctx context.Context, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	return u.update(ctx, func(current entity.AppSettings) entity.AppSettings {
		return practice.ReplaceSettings(current, converter.SettingsRequestToInput(req))
	})
}

func (u *settingsUsecase) UpdateMonthlyGoal(ctx context.Context, req *dto.UpdateGoalRequest) (*dto.SettingsResponse, error) {
	return u.update(ctx, func(current entity.AppSettings) entity.AppSettings {
		return practice.UpdateMonthlyGoal(current, req.MonthlyGoal)
	})
}

func (u *settingsUsecase) update(ctx context.Context, apply func(entity.AppSettings) entity.AppSettings) (*dto.SettingsResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	stored, err := u.settingsRepo.Get(tx)
	if err != nil {
		u.log.Warnf("Failed to find settings: %+v", err)
		return nil, err
	}

	current := practice.DefaultSettings()
	if stored != nil {
		current = *stored
	}

	next := apply(current)
	if err := u.settingsRepo.Save(tx, &next); err != nil {
		u.log.Warnf("Failed to save settings: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	u.fillCache(ctx, &next)
	u.log.Infof("Settings updated, monthly goal %s", next.MonthlyGoal.StringFixed(2))

	return converter.SettingsToResponse(&next), nil
}

// fillCache is best effort; the database already holds the value
func (u *settingsUsecase) fillCache(ctx context.Context, settings *entity.AppSettings) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Set(ctx, settings); err != nil {
		// a stale entry would outlive the write, so drop it
		_ = u.cache.Invalidate(ctx)
	}
}
