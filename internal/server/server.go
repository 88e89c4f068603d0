package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/GGmuzem/web-calculator/internal/config"
	"google.golang.org/grpc"
)

// Server объединяет HTTP и gRPC серверы калькулятора
type Server struct {
	cfg        *config.Config
	httpServer *http.Server
	grpcServer *grpc.Server
	httpAddr   net.Addr
	grpcAddr   net.Addr
}

// New создает сервер по конфигурации
func New(cfg *config.Config) *Server {
	return &Server{
		cfg: cfg,
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddr(),
			Handler:           NewRouter(cfg.StaticDir, cfg.IndexFile, log.Writer()),
			ReadHeaderTimeout: 10 * time.Second,
		},
		grpcServer: NewGRPCServer(),
	}
}

// Start открывает оба порта и запускает обслуживание в отдельных горутинах
func (s *Server) Start() error {
	httpLis, err := net.Listen("tcp", s.cfg.HTTPAddr())
	if err != nil {
		return fmt.Errorf("error listening on HTTP port: %w", err)
	}

	grpcLis, err := net.Listen("tcp", s.cfg.GRPCAddr())
	if err != nil {
		httpLis.Close()
		return fmt.Errorf("error listening on gRPC port: %w", err)
	}

	s.httpAddr = httpLis.Addr()
	s.grpcAddr = grpcLis.Addr()

	go func() {
		log.Printf("HTTP сервер запущен на %s", s.httpAddr)
		if err := s.httpServer.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Ошибка HTTP сервера: %v", err)
		}
	}()

	go func() {
		log.Printf("gRPC сервер запущен на %s", s.grpcAddr)
		if err := s.grpcServer.Serve(grpcLis); err != nil {
			log.Printf("Ошибка gRPC сервера: %v", err)
		}
	}()

	return nil
}

// HTTPAddr фактический адрес HTTP сервера после Start
func (s *Server) HTTPAddr() string {
	if s.httpAddr == nil {
		return ""
	}
	return s.httpAddr.String()
}

// GRPCAddr фактический адрес gRPC сервера после Start
func (s *Server) GRPCAddr() string {
	if s.grpcAddr == nil {
		return ""
	}
	return s.grpcAddr.String()
}

// ShutdownHTTP дожидается завершения текущих HTTP-запросов
func (s *Server) ShutdownHTTP(ctx context.Context) error {
	log.Println("Остановка HTTP сервера")
	return s.httpServer.Shutdown(ctx)
}

// ShutdownGRPC останавливает gRPC сервер; если контекст истёк, соединения рвутся принудительно
func (s *Server) ShutdownGRPC(ctx context.Context) error {
	log.Println("Остановка gRPC сервера")

	done := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.grpcServer.Stop()
		return ctx.Err()
	}
}

// Shutdown останавливает оба сервера
func (s *Server) Shutdown(ctx context.Context) error {
	return errors.Join(s.ShutdownHTTP(ctx), s.ShutdownGRPC(ctx))
}
