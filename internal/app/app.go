package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/aidar/stellar-team/internal/config"
	"github.com/aidar/stellar-team/internal/directory"
	"github.com/aidar/stellar-team/internal/handler"
	"github.com/aidar/stellar-team/internal/middleware"
	"github.com/aidar/stellar-team/internal/repository"
	"github.com/aidar/stellar-team/internal/service"
)

// App представляет приложение со всеми зависимостями
type App struct {
	config  *config.Config
	members repository.MemberRepository
	router  chi.Router
	server  *http.Server
	logger  *slog.Logger
}

// Option настраивает App при создании
type Option func(*App)

// WithMembers подменяет каталог участников (по умолчанию встроенный)
func WithMembers(members repository.MemberRepository) Option {
	return func(a *App) {
		a.members = members
	}
}

// WithLogger подменяет логгер (по умолчанию JSON в stdout)
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// New создает новый экземпляр приложения
func New(cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	app := &App{
		config: cfg,
		// Инициализируем структурированный логгер (JSON формат)
		logger: slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.members == nil {
		app.members = directory.Default()
	}

	return app, nil
}

// Initialize инициализирует все компоненты приложения
func (a *App) Initialize(_ context.Context) error {
	if a.config.Site.ServeAssets() {
		info, err := os.Stat(a.config.Site.AssetsDir)
		if err != nil {
			return fmt.Errorf("failed to open assets dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("assets dir %q is not a directory", a.config.Site.AssetsDir)
		}
	}

	// Настраиваем HTTP сервер и роутинг
	a.setupServer()

	a.logger.Info("Application initialized successfully", "members", a.members.Len())
	return nil
}

// setupServer инициализирует HTTP роутер и обработчики
func (a *App) setupServer() {
	// Инициализируем слой сервисов
	memberService := service.NewMemberService(a.members)

	// Инициализируем HTTP обработчики
	memberHandler := handler.NewMemberHandler(memberService)
	pageHandler := handler.NewPageHandler(memberService, a.config.Site.Title, a.logger)
	healthHandler := handler.NewHealthHandler(memberService.Count)

	// Настраиваем роутер
	r := chi.NewRouter()

	// Глобальные middleware (применяются ко всем запросам)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(middleware.CORSMiddleware(a.config.CORS))

	// Health check для мониторинга
	r.Get("/health", healthHandler.Health)

	// Страница команды
	r.Get("/team", pageHandler.Team)

	// JSON API каталога (только чтение)
	r.Route("/api/members", func(r chi.Router) {
		r.Get("/", memberHandler.ListMembers)
		r.Get("/{index}", memberHandler.GetMember)
	})

	// Аватары и прочая статика, если задана директория
	if a.config.Site.ServeAssets() {
		prefix := a.config.Site.StaticPrefix
		fs := http.StripPrefix(prefix, http.FileServer(http.Dir(a.config.Site.AssetsDir)))
		r.Get(prefix+"/*", fs.ServeHTTP)
		a.logger.Info("Serving static assets", "prefix", prefix, "dir", a.config.Site.AssetsDir)
	}

	a.router = r

	// Создаем HTTP сервер с настройками таймаутов
	addr := a.config.Server.Addr()
	a.server = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.logger.Info("HTTP server configured", "addr", addr)
}

// Handler возвращает корневой HTTP обработчик (доступен после Initialize)
func (a *App) Handler() http.Handler {
	return a.router
}

// Run запускает HTTP сервер
func (a *App) Run() error {
	a.logger.Info("Starting HTTP server", "addr", a.server.Addr)
	return a.server.ListenAndServe()
}

// Serve запускает HTTP сервер на готовом listener
func (a *App) Serve(l net.Listener) error {
	a.logger.Info("Starting HTTP server", "addr", l.Addr().String())
	return a.server.Serve(l)
}

// Shutdown корректно останавливает приложение
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application")

	// Останавливаем HTTP сервер (ждем завершения текущих запросов)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	a.logger.Info("Application stopped gracefully")
	return nil
}
