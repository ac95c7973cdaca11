package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/aidar/stellar-team/internal/app"
	"github.com/aidar/stellar-team/internal/config"
)

func main() {
	// Загружаем конфигурацию из переменных окружения
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Не удалось загрузить конфигурацию: %v", err)
	}

	// Создаем экземпляр приложения
	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Не удалось создать приложение: %v", err)
	}

	// Контекст отменяется по Ctrl+C или SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Initialize(ctx); err != nil {
		log.Fatalf("Не удалось инициализировать приложение: %v", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	// HTTP сервер
	g.Go(func() error {
		if err := application.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	})

	// Graceful shutdown по сигналу или при падении сервера
	g.Go(func() error {
		<-gctx.Done()
		fmt.Println("\nОстановка сервера...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		return application.Shutdown(shutdownCtx)
	})

	fmt.Printf("Сервер запущен на %s\n", cfg.Server.Addr())
	fmt.Println("Нажмите Ctrl+C для остановки")

	if err := g.Wait(); err != nil {
		log.Printf("Сервер остановлен с ошибкой: %v", err)
		os.Exit(1)
	}

	fmt.Println("Сервер остановлен")
}
