package logger

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level уровень логирования
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

// ErrUnknownLevel возвращается при неизвестном уровне логирования в конфиге
var ErrUnknownLevel = errors.New("logger: unknown level")

// Logger простой уровневый логгер с printf-интерфейсом.
// Пишет одновременно в stdout и в файл (если указан).
type Logger struct {
	mu    sync.Mutex
	level Level
	out   *log.Logger
	file  *os.File
}

// New создает логгер. filePath может быть пустым - тогда пишем только в stdout.
func New(filePath, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var (
		writer io.Writer = os.Stdout
		file   *os.File
	)

	if filePath != "" {
		file, err = os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file %s: %w", filePath, err)
		}
		writer = io.MultiWriter(os.Stdout, file)
	}

	return &Logger{
		level: lvl,
		out:   log.New(writer, "", log.LstdFlags|log.Lmicroseconds),
		file:  file,
	}, nil
}

// NewWithWriter создает логгер поверх произвольного writer (используется в тестах)
func NewWithWriter(w io.Writer, level Level) *Logger {
	return &Logger{
		level: level,
		out:   log.New(w, "", 0),
	}
}

// ParseLevel разбирает уровень из строки конфига
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.write(LevelDebug, format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.write(LevelInfo, format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.write(LevelWarn, format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.write(LevelError, format, v...)
}

// Fatal пишет сообщение и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.mu.Lock()
	l.out.Printf("[FATAL] "+format, v...)
	l.mu.Unlock()
	l.Close()
	os.Exit(1)
}

// Close закрывает файл лога, если он был открыт
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}
}

func (l *Logger) write(level Level, format string, v ...interface{}) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.out.Printf("["+levelNames[level]+"] "+format, v...)
}
