package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/LittleLemon-ReservationService/internal/api/handlers"
	createReservationHandler "github.com/m04kA/LittleLemon-ReservationService/internal/api/handlers/create_reservation"
	getReservationOptionsHandler "github.com/m04kA/LittleLemon-ReservationService/internal/api/handlers/get_reservation_options"
	getSpecialsHandler "github.com/m04kA/LittleLemon-ReservationService/internal/api/handlers/get_specials"
	validateReservationHandler "github.com/m04kA/LittleLemon-ReservationService/internal/api/handlers/validate_reservation"
	"github.com/m04kA/LittleLemon-ReservationService/internal/api/middleware"
	"github.com/m04kA/LittleLemon-ReservationService/internal/config"
	specialsCache "github.com/m04kA/LittleLemon-ReservationService/internal/infra/cache/specials"
	specialsRepo "github.com/m04kA/LittleLemon-ReservationService/internal/infra/storage/specials"
	bookingService "github.com/m04kA/LittleLemon-ReservationService/internal/service/booking"
	specialsService "github.com/m04kA/LittleLemon-ReservationService/internal/service/specials"
	validatorService "github.com/m04kA/LittleLemon-ReservationService/internal/service/validator"
	getReservationOptionsUC "github.com/m04kA/LittleLemon-ReservationService/internal/usecase/get_reservation_options"
	submitReservationUC "github.com/m04kA/LittleLemon-ReservationService/internal/usecase/submit_reservation"
	"github.com/m04kA/LittleLemon-ReservationService/pkg/logger"
	"github.com/m04kA/LittleLemon-ReservationService/pkg/metrics"
	"github.com/m04kA/LittleLemon-ReservationService/pkg/types"
)

const defaultConfigPath = "config.toml"

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting LittleLemon-ReservationService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены).
	// При выключенных метриках передается nil: методы коллектора это допускают.
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Источник меню недели: postgres (опционально)
	var specialsSource specialsService.Source
	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		specialsSource = specialsRepo.NewRepository(db)
	} else {
		log.Info("Database disabled, specials are served from the static catalog")
	}

	// Кеш меню недели: redis (опционально). Недоступный redis не мешает старту.
	var specialsCacheStore specialsService.Cache
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis at %s is not reachable, continuing without cache: %v", cfg.Redis.Addr, err)
		} else {
			specialsCacheStore = specialsCache.NewCache(rdb, time.Duration(cfg.Redis.TTLSeconds)*time.Second)
			log.Info("Specials cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
		}
		cancel()
	}

	// Инициализируем сервисы
	validatorSvc := validatorService.NewService(metricsCollector, log)

	var randomSource bookingService.RandomSource
	if cfg.Booking.RandomSeed != 0 {
		randomSource = bookingService.NewSeededRandomSource(cfg.Booking.RandomSeed)
		log.Info("Booking outcomes use a fixed random seed=%d", cfg.Booking.RandomSeed)
	}
	bookingSvc := bookingService.NewService(
		bookingService.Config{
			Delay:            time.Duration(cfg.Booking.DelayMs) * time.Millisecond,
			FailureThreshold: cfg.Booking.FailureThreshold,
		},
		randomSource,
		metricsCollector,
		log,
	)

	specialsSvc := specialsService.NewService(
		time.Duration(cfg.Specials.DelayMs)*time.Millisecond,
		specialsSource,
		specialsCacheStore,
		metricsCollector,
		log,
	)

	// Инициализируем use cases
	submitReservationUseCase := submitReservationUC.NewUseCase(validatorSvc, bookingSvc, log)

	getReservationOptionsUseCase := getReservationOptionsUC.NewUseCase(
		getReservationOptionsUC.Schedule{
			OpeningTime:     types.TimeString(cfg.Reservations.OpeningTime),
			ClosingTime:     types.TimeString(cfg.Reservations.ClosingTime),
			SlotStepMinutes: cfg.Reservations.SlotStepMinutes,
		},
		log,
	)

	// Инициализируем handlers
	validateReservation := validateReservationHandler.NewHandler(validatorSvc, log)
	createReservation := createReservationHandler.NewHandler(submitReservationUseCase, log)
	getReservationOptions := getReservationOptionsHandler.NewHandler(getReservationOptionsUseCase, log)
	getSpecials := getSpecialsHandler.NewHandler(specialsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondNotFound(w, "route not found")
	})

	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бронирование ---
	api.HandleFunc("/reservations/validate", validateReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/options", getReservationOptions.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// --- Меню недели ---
	api.HandleFunc("/specials", getSpecials.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Запросы на бронирование в процессе доигрывают задержку до конца
	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
