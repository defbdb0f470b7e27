package booking

import (
	"math/rand/v2"
	"sync"
	"time"
)

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// RealSleeper блокирует горутину на заданное время
type RealSleeper struct{}

func (s *RealSleeper) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	time.Sleep(d)
}

// GlobalRandomSource использует глобальный генератор math/rand/v2 (безопасен для горутин)
type GlobalRandomSource struct{}

func (s *GlobalRandomSource) Float64() float64 {
	return rand.Float64()
}

// SeededRandomSource детерминированный генератор с фиксированным seed.
// *rand.Rand не потокобезопасен, поэтому доступ защищен мьютексом.
type SeededRandomSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSeededRandomSource создает генератор с воспроизводимой последовательностью
func NewSeededRandomSource(seed uint64) *SeededRandomSource {
	return &SeededRandomSource{
		rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *SeededRandomSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}
