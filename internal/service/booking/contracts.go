package booking

import "time"

// TimeProvider интерфейс для получения текущего времени (из него строится номер брони)
type TimeProvider interface {
	Now() time.Time
}

// Sleeper имитирует сетевую задержку
type Sleeper interface {
	Sleep(d time.Duration)
}

// RandomSource источник случайных чисел в [0, 1) для имитации проверки доступности
type RandomSource interface {
	Float64() float64
}

// Metrics интерфейс для учета исходов бронирования
type Metrics interface {
	IncBooking(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
