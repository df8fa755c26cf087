package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hugohenrick/lojista-x/internal/config"
	"github.com/hugohenrick/lojista-x/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}

	zapLogger, err := logger.NewLogger(cfg.App.LogLevel, cfg.App.GinMode != "release")
	if err != nil {
		log.Fatalf("Erro ao criar logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Criar aplicação
	app, err := NewApp(ctx, cfg, zapLogger)
	if err != nil {
		zapLogger.Error("Erro ao iniciar aplicação", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	server := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           app.GetRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Servidor iniciado", "port", cfg.App.Port, "storage", cfg.App.StorageDriver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Error("Erro no servidor HTTP", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	zapLogger.Info("Encerrando servidor")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Erro ao encerrar servidor", "error", err)
	}
}
