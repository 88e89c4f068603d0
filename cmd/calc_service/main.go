package main

import (
	"context"
	"log"
	"os"

	"github.com/GGmuzem/web-calculator/internal/config"
	"github.com/GGmuzem/web-calculator/internal/server"
	gfshutdown "github.com/gelmium/graceful-shutdown"
)

func main() {
	log.Println("Сервис калькулятора запускается...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	srv := server.New(cfg)
	if err := srv.Start(); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}

	// Ожидаем SIGINT/SIGTERM и останавливаем оба сервера
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http": srv.ShutdownHTTP,
			"grpc": srv.ShutdownGRPC,
		},
	)

	exitCode := <-wait
	log.Printf("Сервис остановлен с кодом %d", exitCode)
	os.Exit(exitCode)
}
