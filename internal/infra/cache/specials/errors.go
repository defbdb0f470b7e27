package specials

import "errors"

var (
	// ErrCacheRead возвращается при ошибке чтения из redis
	ErrCacheRead = errors.New("specials.cache: failed to read")

	// ErrCacheWrite возвращается при ошибке записи в redis
	ErrCacheWrite = errors.New("specials.cache: failed to write")

	// ErrDecode возвращается, если закешированное значение повреждено
	ErrDecode = errors.New("specials.cache: failed to decode cached value")
)
