package specials

import (
	"context"
	"time"

	"github.com/m04kA/LittleLemon-ReservationService/internal/domain"
)

// Source источник каталога блюд недели (например, postgres)
type Source interface {
	List(ctx context.Context) ([]domain.SpecialItem, error)
}

// Cache кеш каталога блюд недели (например, redis)
type Cache interface {
	Get(ctx context.Context) ([]domain.SpecialItem, bool, error)
	Set(ctx context.Context, items []domain.SpecialItem) error
}

// Sleeper имитирует сетевую задержку
type Sleeper interface {
	Sleep(d time.Duration)
}

// Metrics интерфейс для учета источников загрузки
type Metrics interface {
	IncSpecialsLoad(source string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealSleeper блокирует горутину на заданное время
type RealSleeper struct{}

func (s *RealSleeper) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	time.Sleep(d)
}
