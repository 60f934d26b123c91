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

	cancelBookingHandler "github.com/m04kA/ORS-RoomBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/ORS-RoomBookingService/internal/api/handlers/create_booking"
	createClosureHandler "github.com/m04kA/ORS-RoomBookingService/internal/api/handlers/create_closure"
	deleteClosureHandler "github.com/m04kA/ORS-RoomBookingService/internal/api/handlers/delete_closure"
	exportRoomReportHandler "github.com/m04kA/ORS-RoomBookingService/internal/api/handlers/export_room_report"
	getBookingHandler "github.com/m04kA/ORS-RoomBookingService/internal/api/handlers/get_booking"
	getMonthAvailabilityHandler "github.com/m04kA/ORS-RoomBookingService/internal/api/handlers/get_month_availability"
	getRoomHandler "github.com/m04kA/ORS-RoomBookingService/internal/api/handlers/get_room"
	getRoomBookingsHandler "github.com/m04kA/ORS-RoomBookingService/internal/api/handlers/get_room_bookings"
	getRoomsHandler "github.com/m04kA/ORS-RoomBookingService/internal/api/handlers/get_rooms"
	getTimelineHandler "github.com/m04kA/ORS-RoomBookingService/internal/api/handlers/get_timeline"
	getUserBookingsHandler "github.com/m04kA/ORS-RoomBookingService/internal/api/handlers/get_user_bookings"
	listClosuresHandler "github.com/m04kA/ORS-RoomBookingService/internal/api/handlers/list_closures"
	suggestSlotsHandler "github.com/m04kA/ORS-RoomBookingService/internal/api/handlers/suggest_slots"
	"github.com/m04kA/ORS-RoomBookingService/internal/api/middleware"
	"github.com/m04kA/ORS-RoomBookingService/internal/config"
	bookingRepo "github.com/m04kA/ORS-RoomBookingService/internal/infra/storage/booking"
	closureRepo "github.com/m04kA/ORS-RoomBookingService/internal/infra/storage/closure"
	roomRepo "github.com/m04kA/ORS-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/ORS-RoomBookingService/internal/schedule"
	bookingsService "github.com/m04kA/ORS-RoomBookingService/internal/service/bookings"
	closuresService "github.com/m04kA/ORS-RoomBookingService/internal/service/closures"
	exportService "github.com/m04kA/ORS-RoomBookingService/internal/service/export"
	roomsService "github.com/m04kA/ORS-RoomBookingService/internal/service/rooms"
	createBookingUC "github.com/m04kA/ORS-RoomBookingService/internal/usecase/create_booking"
	createClosureUC "github.com/m04kA/ORS-RoomBookingService/internal/usecase/create_closure"
	getMonthAvailabilityUC "github.com/m04kA/ORS-RoomBookingService/internal/usecase/get_month_availability"
	getTimelineUC "github.com/m04kA/ORS-RoomBookingService/internal/usecase/get_timeline"
	suggestSlotsUC "github.com/m04kA/ORS-RoomBookingService/internal/usecase/suggest_slots"
	"github.com/m04kA/ORS-RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/ORS-RoomBookingService/pkg/logger"
	"github.com/m04kA/ORS-RoomBookingService/pkg/metrics"
	"github.com/m04kA/ORS-RoomBookingService/pkg/simpletxmanager"
	"github.com/m04kA/ORS-RoomBookingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting ORS-RoomBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Собираем движок расписания из конфигурации
	engineCfg, err := cfg.BuildEngineConfig()
	if err != nil {
		log.Fatal("Failed to build schedule config: %v", err)
	}
	engine := schedule.NewEngine(engineCfg)
	log.Info("Schedule engine initialized (office hours %s, step %d min, horizon %d days)",
		engine.Hours().Span(), engineCfg.TimeStepMinutes, engineCfg.AdvanceBookingDays)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		closureRepository *closureRepo.Repository
		roomRepository    *roomRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		closureRepository = closureRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		closureRepository = closureRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		roomRepository,
		engine,
		cfg,
		log,
	)
	closureSvc := closuresService.NewService(
		closureRepository,
		roomRepository,
		cfg,
		log,
	)
	roomSvc := roomsService.NewService(roomRepository, log)
	exportSvc := exportService.NewService(
		bookingRepository,
		closureRepository,
		roomRepository,
		engine,
		engine.Location(),
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		closureRepository,
		roomRepository,
		engine,
		txMgr,
		log,
	)
	getTimelineUseCase := getTimelineUC.NewUseCase(
		bookingRepository,
		closureRepository,
		roomRepository,
		engine,
		log,
	)
	getMonthAvailabilityUseCase := getMonthAvailabilityUC.NewUseCase(
		bookingRepository,
		closureRepository,
		roomRepository,
		engine,
		log,
	)
	suggestSlotsUseCase := suggestSlotsUC.NewUseCase(
		bookingRepository,
		closureRepository,
		roomRepository,
		engine,
		log,
	)
	createClosureUseCase := createClosureUC.NewUseCase(
		closureRepository,
		bookingRepository,
		roomRepository,
		engine,
		cfg,
		log,
	)

	// Инициализируем handlers
	getRooms := getRoomsHandler.NewHandler(roomSvc, log)
	getRoom := getRoomHandler.NewHandler(roomSvc, log)
	getTimeline := getTimelineHandler.NewHandler(getTimelineUseCase, log)
	getMonthAvailability := getMonthAvailabilityHandler.NewHandler(getMonthAvailabilityUseCase, log)
	suggestSlots := suggestSlotsHandler.NewHandler(suggestSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getRoomBookings := getRoomBookingsHandler.NewHandler(bookingSvc, log)
	createClosure := createClosureHandler.NewHandler(createClosureUseCase, log)
	deleteClosure := deleteClosureHandler.NewHandler(closureSvc, log)
	listClosures := listClosuresHandler.NewHandler(closureSvc, log)
	exportRoomReport := exportRoomReportHandler.NewHandler(exportSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Справочник комнат
	api.HandleFunc("/rooms", getRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}", getRoom.Handle).Methods(http.MethodGet)

	// Таймлайн комнаты на день
	api.HandleFunc("/rooms/{roomId}/timeline", getTimeline.Handle).Methods(http.MethodGet)

	// Классификация дней месяца
	api.HandleFunc("/rooms/{roomId}/availability", getMonthAvailability.Handle).Methods(http.MethodGet)

	// Подбор свободных слотов
	api.HandleFunc("/rooms/{roomId}/suggestions", suggestSlots.Handle).Methods(http.MethodGet)

	// Закрытия комнаты за период
	api.HandleFunc("/rooms/{roomId}/closures", listClosures.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Администрирование ---
	protected.HandleFunc("/rooms/{roomId}/bookings", getRoomBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/rooms/{roomId}/closures", createClosure.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/closures/{closureId}", deleteClosure.Handle).Methods(http.MethodDelete)

	// --- Отчёты ---
	api.HandleFunc("/rooms/{roomId}/export", exportRoomReport.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
