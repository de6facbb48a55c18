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

	createBookingHandler "github.com/washify/marketplace-service/internal/api/handlers/create_booking"
	createBusinessHandler "github.com/washify/marketplace-service/internal/api/handlers/create_business"
	createPaymentHandler "github.com/washify/marketplace-service/internal/api/handlers/create_payment"
	createReviewHandler "github.com/washify/marketplace-service/internal/api/handlers/create_review"
	createServiceHandler "github.com/washify/marketplace-service/internal/api/handlers/create_service"
	deleteUserHandler "github.com/washify/marketplace-service/internal/api/handlers/delete_user"
	getMeHandler "github.com/washify/marketplace-service/internal/api/handlers/get_me"
	healthHandler "github.com/washify/marketplace-service/internal/api/handlers/health"
	listBookingsHandler "github.com/washify/marketplace-service/internal/api/handlers/list_bookings"
	listPaymentsHandler "github.com/washify/marketplace-service/internal/api/handlers/list_payments"
	listReviewsHandler "github.com/washify/marketplace-service/internal/api/handlers/list_reviews"
	listServicesHandler "github.com/washify/marketplace-service/internal/api/handlers/list_services"
	listUsersHandler "github.com/washify/marketplace-service/internal/api/handlers/list_users"
	loginHandler "github.com/washify/marketplace-service/internal/api/handlers/login"
	searchBusinessesHandler "github.com/washify/marketplace-service/internal/api/handlers/search_businesses"
	signupHandler "github.com/washify/marketplace-service/internal/api/handlers/signup"
	updateBookingStatusHandler "github.com/washify/marketplace-service/internal/api/handlers/update_booking_status"
	"github.com/washify/marketplace-service/internal/api/middleware"
	"github.com/washify/marketplace-service/internal/config"
	"github.com/washify/marketplace-service/internal/infra/migrations"
	bookingRepo "github.com/washify/marketplace-service/internal/infra/storage/booking"
	businessRepo "github.com/washify/marketplace-service/internal/infra/storage/business"
	paymentRepo "github.com/washify/marketplace-service/internal/infra/storage/payment"
	reviewRepo "github.com/washify/marketplace-service/internal/infra/storage/review"
	serviceRepo "github.com/washify/marketplace-service/internal/infra/storage/service"
	userRepo "github.com/washify/marketplace-service/internal/infra/storage/user"
	authService "github.com/washify/marketplace-service/internal/service/auth"
	bookingsService "github.com/washify/marketplace-service/internal/service/bookings"
	businessesService "github.com/washify/marketplace-service/internal/service/businesses"
	catalogService "github.com/washify/marketplace-service/internal/service/catalog"
	paymentsService "github.com/washify/marketplace-service/internal/service/payments"
	reviewsService "github.com/washify/marketplace-service/internal/service/reviews"
	statsService "github.com/washify/marketplace-service/internal/service/stats"
	usersService "github.com/washify/marketplace-service/internal/service/users"
	createBookingUC "github.com/washify/marketplace-service/internal/usecase/create_booking"
	createPaymentUC "github.com/washify/marketplace-service/internal/usecase/create_payment"
	createReviewUC "github.com/washify/marketplace-service/internal/usecase/create_review"
	searchBusinessesUC "github.com/washify/marketplace-service/internal/usecase/search_businesses"
	"github.com/washify/marketplace-service/internal/web"
	"github.com/washify/marketplace-service/pkg/dbmetrics"
	"github.com/washify/marketplace-service/pkg/logger"
	"github.com/washify/marketplace-service/pkg/metrics"
	"github.com/washify/marketplace-service/pkg/simpletxmanager"
	"github.com/washify/marketplace-service/pkg/tokens"
	"github.com/washify/marketplace-service/pkg/txmanager"
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

	log.Info("Starting Washify marketplace service...")
	log.Info("Configuration loaded from config.toml")

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

	// Применяем миграции
	if err := migrations.Up(db); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Менеджер JWT токенов
	tokenManager := tokens.NewManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	// Интерфейс transaction manager для use cases
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		userRepository     *userRepo.Repository
		businessRepository *businessRepo.Repository
		serviceRepository  *serviceRepo.Repository
		bookingRepository  *bookingRepo.Repository
		paymentRepository  *paymentRepo.Repository
		reviewRepository   *reviewRepo.Repository
		txMgr              TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		userRepository = userRepo.NewRepository(wrappedDB)
		businessRepository = businessRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		reviewRepository = reviewRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		userRepository = userRepo.NewRepository(db)
		businessRepository = businessRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		reviewRepository = reviewRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	authSvc := authService.NewService(userRepository, tokenManager, cfg.Auth.BcryptCost, log)
	usersSvc := usersService.NewService(userRepository, log)
	businessesSvc := businessesService.NewService(businessRepository, userRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, businessRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, businessRepository, log)
	paymentsSvc := paymentsService.NewService(paymentRepository, log)
	reviewsSvc := reviewsService.NewService(reviewRepository, log)
	statsSvc := statsService.NewService(
		userRepository,
		businessRepository,
		bookingRepository,
		reviewRepository,
		paymentRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		businessRepository,
		serviceRepository,
		txMgr,
		log,
	)
	createPaymentUseCase := createPaymentUC.NewUseCase(
		paymentRepository,
		bookingRepository,
		serviceRepository,
		txMgr,
		log,
	)
	createReviewUseCase := createReviewUC.NewUseCase(
		reviewRepository,
		bookingRepository,
		paymentRepository,
		txMgr,
		log,
	)
	searchBusinessesUseCase := searchBusinessesUC.NewUseCase(
		businessRepository,
		serviceRepository,
		log,
	)

	// Инициализируем handlers
	signup := signupHandler.NewHandler(authSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	getMe := getMeHandler.NewHandler(authSvc, log)
	listUsers := listUsersHandler.NewHandler(usersSvc, log)
	deleteUser := deleteUserHandler.NewHandler(usersSvc, log)
	searchBusinesses := searchBusinessesHandler.NewHandler(searchBusinessesUseCase, log)
	createBusiness := createBusinessHandler.NewHandler(businessesSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingsSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingsSvc, log)
	listPayments := listPaymentsHandler.NewHandler(paymentsSvc, log)
	createPayment := createPaymentHandler.NewHandler(createPaymentUseCase, log)
	listReviews := listReviewsHandler.NewHandler(reviewsSvc, log)
	createReview := createReviewHandler.NewHandler(createReviewUseCase, log)
	health := healthHandler.NewHandler(db)

	webHandler, err := web.NewHandler(statsSvc, log)
	if err != nil {
		log.Fatal("Failed to parse web templates: %v", err)
	}

	// Middleware аутентификации
	authenticator := middleware.NewAuthenticator(tokenManager, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Служебные страницы
	r.HandleFunc("/", webHandler.Landing).Methods(http.MethodGet)
	r.HandleFunc("/dashboard", webHandler.Dashboard).Methods(http.MethodGet)
	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/auth/signup", signup.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Поиск бизнесов и каталог услуг открыты всем
	api.Handle("/businesses", authenticator.OptionalAuth(http.HandlerFunc(searchBusinesses.Handle))).Methods(http.MethodGet)
	api.Handle("/services", authenticator.OptionalAuth(http.HandlerFunc(listServices.Handle))).Methods(http.MethodGet)
	api.Handle("/reviews", authenticator.OptionalAuth(http.HandlerFunc(listReviews.Handle))).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (валидный JWT)
	// ============================================================

	api.Handle("/auth/me", authenticator.RequireUser(http.HandlerFunc(getMe.Handle))).Methods(http.MethodGet)

	api.Handle("/bookings", authenticator.RequireUser(http.HandlerFunc(listBookings.Handle))).Methods(http.MethodGet)
	api.Handle("/bookings", authenticator.RequireUser(http.HandlerFunc(createBooking.Handle))).Methods(http.MethodPost)

	api.Handle("/payments", authenticator.RequireUser(http.HandlerFunc(listPayments.Handle))).Methods(http.MethodGet)
	api.Handle("/payments", authenticator.RequireUser(http.HandlerFunc(createPayment.Handle))).Methods(http.MethodPost)

	api.Handle("/reviews", authenticator.RequireUser(http.HandlerFunc(createReview.Handle))).Methods(http.MethodPost)

	// ============================================================
	// OPERATOR ROUTES (роль OPERATOR или ADMIN)
	// ============================================================

	api.Handle("/businesses", authenticator.RequireOperator(http.HandlerFunc(createBusiness.Handle))).Methods(http.MethodPost)
	api.Handle("/services", authenticator.RequireOperator(http.HandlerFunc(createService.Handle))).Methods(http.MethodPost)
	api.Handle("/bookings/{bookingId}/status",
		authenticator.RequireOperator(http.HandlerFunc(updateBookingStatus.Handle))).Methods(http.MethodPatch)

	// ============================================================
	// ADMIN ROUTES (только ADMIN)
	// ============================================================

	api.Handle("/admin/users", authenticator.RequireAdmin(http.HandlerFunc(listUsers.Handle))).Methods(http.MethodGet)
	api.Handle("/admin/users", authenticator.RequireAdmin(http.HandlerFunc(deleteUser.Handle))).Methods(http.MethodDelete)

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
