package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addCommentHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/add_comment"
	cancelBookingHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/cancel_booking"
	converseHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/converse"
	createBookingHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/create_booking"
	deleteCommentHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/delete_comment"
	ensureUserHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/ensure_user"
	getAllBookingsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_all_bookings"
	getStatusWindowHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_status_window"
	getUserBookingsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_user_bookings"
	listUsersHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/list_users"
	manageAccessHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/manage_access"
	setDisplayNameHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/set_display_name"
	toggleStatusHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/toggle_status"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/config"
	"github.com/m04kA/SMC-ScheduleService/internal/conversation"
	accessRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/access"
	bookingRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/booking"
	commentRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/comment"
	profileRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/profile"
	statusRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/status"
	"github.com/m04kA/SMC-ScheduleService/internal/purge"
	scheduleService "github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
	bookRoomUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/book_room"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
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

	log.Info("Starting SMC-ScheduleService...")
	log.Info("Configuration loaded from config.toml")

	// Таймзона движка: в ней считаются границы суток и полуночная очистка
	loc, err := time.LoadLocation(cfg.Schedule.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Schedule.Timezone, err)
	}
	timeProvider := scheduleService.NewRealTimeProvider(loc)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилища (всё состояние в памяти и теряется при
	// перезапуске - долговечность вне зоны ответственности сервиса)
	bookings := bookingRepo.NewRepository()
	statuses := statusRepo.NewRepository()
	comments := commentRepo.NewRepository()
	accessState := accessRepo.NewRepository(cfg.Schedule.InitialAdmins)
	profiles := profileRepo.NewRepository()
	log.Info("In-memory storage initialized (%d initial admins)", len(cfg.Schedule.InitialAdmins))

	// Инициализируем сервисы и use cases
	scheduleSvc := scheduleService.NewService(
		bookings,
		statuses,
		comments,
		accessState,
		profiles,
		timeProvider,
		log,
	)
	bookRoomUseCase := bookRoomUC.NewUseCase(
		bookings,
		accessState,
		timeProvider,
		log,
	)
	conversations := conversation.NewManager()

	// Фоновая задача полуночной очистки заметок
	purgeCtx, stopPurge := context.WithCancel(context.Background())
	purgeTask := purge.NewTask(comments, timeProvider, metricsCollector, log)
	go purgeTask.Run(purgeCtx)
	log.Info("Midnight comment purge task started (timezone=%s)", cfg.Schedule.Timezone)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(bookRoomUseCase, metricsCollector, log)
	cancelBooking := cancelBookingHandler.NewHandler(scheduleSvc, metricsCollector, log)
	getUserBookings := getUserBookingsHandler.NewHandler(scheduleSvc, log)
	getAllBookings := getAllBookingsHandler.NewHandler(scheduleSvc, log)
	getStatusWindow := getStatusWindowHandler.NewHandler(scheduleSvc, log)
	toggleStatus := toggleStatusHandler.NewHandler(scheduleSvc, metricsCollector, log)
	addComment := addCommentHandler.NewHandler(scheduleSvc, log)
	deleteComment := deleteCommentHandler.NewHandler(scheduleSvc, log)
	setDisplayName := setDisplayNameHandler.NewHandler(scheduleSvc, log)
	listUsers := listUsersHandler.NewHandler(scheduleSvc, log)
	manageAccess := manageAccessHandler.NewHandler(scheduleSvc, log)
	ensureUser := ensureUserHandler.NewHandler(scheduleSvc, log)
	converse := converseHandler.NewHandler(conversations, scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	if cfg.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		r.Use(rl.Middleware)
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// API prefix: все операции требуют X-User-ID от чат-фронтенда
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Пользователи ---
	api.HandleFunc("/users/ensure", ensureUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/users", listUsers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}/name", setDisplayName.Handle).Methods(http.MethodPut)

	// --- Брони переговорной ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", getAllBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Статусы работы ---
	api.HandleFunc("/users/{userId}/statuses", getStatusWindow.Handle).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}/statuses/toggle", toggleStatus.Handle).Methods(http.MethodPost)

	// --- Заметки ---
	api.HandleFunc("/users/{userId}/comments/{date}", addComment.Handle).Methods(http.MethodPut)
	api.HandleFunc("/users/{userId}/comments/{date}", deleteComment.Handle).Methods(http.MethodDelete)

	// --- Диалоги "вопрос - ответ" ---
	api.HandleFunc("/users/{userId}/prompts", converse.HandlePrompt).Methods(http.MethodPost)
	api.HandleFunc("/users/{userId}/replies", converse.HandleReply).Methods(http.MethodPost)

	// --- Управление доступом (только администраторы) ---
	api.HandleFunc("/access/restrict", manageAccess.HandleRestrict).Methods(http.MethodPost)
	api.HandleFunc("/access/unrestrict", manageAccess.HandleUnrestrict).Methods(http.MethodPost)
	api.HandleFunc("/access/promote", manageAccess.HandlePromote).Methods(http.MethodPost)
	api.HandleFunc("/access/demote", manageAccess.HandleDemote).Methods(http.MethodPost)

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

	// Останавливаем задачу очистки
	stopPurge()

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
