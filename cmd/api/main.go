package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"notify-hub/internal/common/pagination"
	"notify-hub/internal/config"
	pgRepo "notify-hub/internal/infra/adapter/persistence/postgres"
	"notify-hub/internal/infra/db"
	"notify-hub/internal/observability/logging"
	"notify-hub/internal/resilience/circuitbreaker"

	auditlogUC "notify-hub/internal/usecase/auditlog"
	catalogUC "notify-hub/internal/usecase/catalog"
	dispatchUC "notify-hub/internal/usecase/dispatch"
	"notify-hub/internal/usecase/events"
	subscriberUC "notify-hub/internal/usecase/subscriber"

	hhttp "notify-hub/internal/handler/http"
	hauth "notify-hub/internal/handler/http/auth"
	hcatalog "notify-hub/internal/handler/http/catalog"
	hdispatch "notify-hub/internal/handler/http/dispatch"
	hlogs "notify-hub/internal/handler/http/logs"
	"notify-hub/internal/handler/http/middleware"
	"notify-hub/internal/handler/http/requestid"
	hsubscriber "notify-hub/internal/handler/http/subscriber"
	authservice "notify-hub/internal/service/auth"
)

// @title           Notify Hub API
// @version         1.0
// @description     通知一斉送信システムの REST API
// @description     ユーザー・購読管理、カテゴリ別の通知ディスパッチ、配信ログの照会機能を提供します。

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT トークンによる認証。ヘッダーに "Bearer {token}" 形式で指定してください。

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	validateCredentials(logger)

	database, err := db.Open(logger)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}

	// Audit log writes and reads go through the circuit breaker so a
	// struggling database degrades dispatch instead of hanging it.
	auditBreaker := circuitbreaker.NewDBCircuitBreaker(database)

	hub := events.NewHub(logger)

	handler, err := buildHandler(cfg, logger, database, auditBreaker, hub)
	if err != nil {
		logger.Error("failed to build HTTP handler", slog.Any("error", err))
		os.Exit(1)
	}

	runServer(cfg, logger, handler, hub)
}

// validateCredentials enforces credential hygiene at startup. Admin
// misconfiguration is fatal; viewer misconfiguration degrades to
// admin-only mode.
func validateCredentials(logger *slog.Logger) {
	if err := hauth.ValidateAdminCredentials(); err != nil {
		logger.Error("admin credentials validation failed", slog.Any("error", err))
		os.Exit(1)
	}
	_ = hauth.ValidateViewerCredentials(logger)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Error("JWT_SECRET must be set")
		os.Exit(1)
	}
	// セキュリティ: 最小32文字（256ビット）を強制
	if len(secret) < 32 {
		logger.Error("JWT_SECRET must be at least 32 characters (256 bits)")
		os.Exit(1)
	}
}

// buildHandler wires repositories, use cases, routes, and the middleware chain.
func buildHandler(
	cfg config.AppConfig,
	logger *slog.Logger,
	database *sql.DB,
	auditBreaker *circuitbreaker.DBCircuitBreaker,
	hub *events.Hub,
) (http.Handler, error) {
	userRepo := pgRepo.NewUserRepo(database)
	catalogRepo := pgRepo.NewCatalogRepo(database)
	logRepo := pgRepo.NewDeliveryLogRepo(auditBreaker)

	dispatchSvc := dispatchUC.NewService(userRepo, catalogRepo, logRepo, logger)
	auditSvc := &auditlogUC.Service{Repo: logRepo}
	subscriberSvc := &subscriberUC.Service{Users: userRepo, Catalog: catalogRepo}
	catalogSvc := &catalogUC.Service{Repo: catalogRepo}

	weakPasswords := []string{"password", "123456", "admin", "test", "secret"}
	authProvider := hauth.NewBasicAuthProvider(12, weakPasswords)
	authService := authservice.NewAuthService(authProvider)
	loginLimiter := hauth.NewLoginRateLimiter(cfg.Auth.LoginRate, cfg.Auth.LoginBurst)

	mux := http.NewServeMux()
	mux.Handle("POST   /auth/token", hauth.TokenHandler(authService, loginLimiter))

	// ヘルスチェックエンドポイント（認証不要）
	mux.Handle("GET    /health", &hhttp.HealthHandler{
		DB:           database,
		Version:      version(),
		AuditBreaker: auditBreaker,
	})
	mux.Handle("GET    /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET    /live", &hhttp.LiveHandler{})
	mux.Handle("GET    /metrics", hhttp.MetricsHandler())

	paginationCfg := pagination.LoadFromEnv()
	hdispatch.Register(mux, dispatchSvc, hub, logger)
	hlogs.Register(mux, auditSvc, paginationCfg, logger)
	hsubscriber.Register(mux, subscriberSvc)
	hcatalog.Register(mux, catalogSvc)

	corsCfg, err := middleware.LoadCORSConfig()
	if err != nil {
		return nil, err
	}
	logger.Info("CORS enabled",
		slog.Any("allowed_origins", corsCfg.AllowedOrigins),
		slog.Any("allowed_methods", corsCfg.AllowedMethods),
		slog.Int("max_age", corsCfg.MaxAge))

	ipLimiter := hhttp.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow.Std())

	// Apply in reverse order (innermost to outermost).
	var chain http.Handler = mux
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.InputValidation()(chain)
	chain = timeoutExceptStream(cfg.Server.RequestTimeout.Std())(chain)
	chain = hhttp.LimitRequestBody(cfg.Server.MaxBodyBytes)(chain)
	chain = ipLimiter.Limit(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)
	chain = middleware.CORS(*corsCfg, logger)(chain)

	return chain, nil
}

// timeoutExceptStream applies the request timeout to everything except the
// SSE endpoint, which stays open until the client disconnects.
func timeoutExceptStream(d time.Duration) func(http.Handler) http.Handler {
	mw := hhttp.Timeout(d)
	return func(next http.Handler) http.Handler {
		limited := mw(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/dispatch/stream" {
				next.ServeHTTP(w, r)
				return
			}
			limited.ServeHTTP(w, r)
		})
	}
}

func version() string {
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	return "dev"
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(cfg config.AppConfig, logger *slog.Logger, handler http.Handler, hub *events.Hub) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout.Std(), // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Server.Addr),
			slog.String("version", version()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Std())
	defer shutdownCancel()

	// Close event streams first so SSE connections do not hold Shutdown open.
	if err := hub.Shutdown(shutdownCtx); err != nil {
		logger.Error("event hub shutdown failed", slog.Any("error", err))
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
