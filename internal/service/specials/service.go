package specials

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/LittleLemon-ReservationService/internal/domain"
)

// MsgLoaded сообщение успешной загрузки меню недели
const MsgLoaded = "Week's specials loaded successfully"

// Источники загрузки для метрик и логов
const (
	SourceCache    = "cache"
	SourceDatabase = "database"
	SourceStatic   = "static"
)

// Service выдает меню недели.
// Сбой внешнего источника или кеша не превращается в ошибку:
// в этом случае отдается встроенный каталог.
type Service struct {
	delay    time.Duration
	source   Source // nil - только встроенный каталог
	cache    Cache  // nil - без кеша
	sleeper  Sleeper
	validate *validator.Validate
	metrics  Metrics
	logger   Logger
}

// NewService создает новый экземпляр сервиса меню недели
func NewService(delay time.Duration, source Source, cache Cache, metrics Metrics, logger Logger) *Service {
	return &Service{
		delay:    delay,
		source:   source,
		cache:    cache,
		sleeper:  &RealSleeper{},
		validate: validator.New(validator.WithRequiredStructEnabled()),
		metrics:  metrics,
		logger:   logger,
	}
}

// GetWeeksSpecials возвращает меню недели после искусственной задержки
func (s *Service) GetWeeksSpecials(ctx context.Context) (*domain.SpecialsResult, error) {
	s.sleeper.Sleep(s.delay)

	items, source := s.load(ctx)

	s.metrics.IncSpecialsLoad(source)
	s.logger.Info("GetWeeksSpecials: loaded %d items from %s", len(items), source)

	return &domain.SpecialsResult{
		Success: true,
		Data:    items,
		Message: MsgLoaded,
	}, nil
}

// load выбирает источник: кеш -> база -> встроенный каталог
func (s *Service) load(ctx context.Context) ([]domain.SpecialItem, string) {
	if s.cache != nil {
		items, found, err := s.cache.Get(ctx)
		switch {
		case err != nil:
			s.logger.Warn("GetWeeksSpecials: cache read failed: %v", err)
		case found:
			if valid := s.filterValid(items); len(valid) > 0 {
				return valid, SourceCache
			}
		}
	}

	if s.source == nil {
		return StaticCatalog(), SourceStatic
	}

	items, err := s.source.List(ctx)
	if err != nil {
		s.logger.Error("GetWeeksSpecials: source failed, using static catalog: %v", err)
		return StaticCatalog(), SourceStatic
	}

	valid := s.filterValid(items)
	if len(valid) == 0 {
		s.logger.Warn("GetWeeksSpecials: source returned no valid items, using static catalog")
		return StaticCatalog(), SourceStatic
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, valid); err != nil {
			s.logger.Warn("GetWeeksSpecials: cache write failed: %v", err)
		}
	}

	return valid, SourceDatabase
}

// filterValid отбрасывает позиции с некорректной ценой или рейтингом
func (s *Service) filterValid(items []domain.SpecialItem) []domain.SpecialItem {
	valid := make([]domain.SpecialItem, 0, len(items))
	for _, item := range items {
		if err := s.validate.Struct(item); err != nil {
			s.logger.Warn("GetWeeksSpecials: skipping invalid item id=%d name=%q: %v", item.ID, item.Name, err)
			continue
		}
		valid = append(valid, item)
	}
	return valid
}
