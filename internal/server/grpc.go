package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/GGmuzem/web-calculator/internal/calculate"
	"github.com/GGmuzem/web-calculator/pkg/calculator"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

// CalculatorServer реализация gRPC сервиса вычислений
type CalculatorServer struct {
	calculator.UnimplementedCalculatorServer
}

// NewGRPCServer создает gRPC сервер с зарегистрированным сервисом вычислений
func NewGRPCServer() *grpc.Server {
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(loggingInterceptor, recoveryInterceptor),
	)

	calculator.RegisterCalculatorServer(grpcServer, &CalculatorServer{})

	// Включаем рефлексию для отладки
	reflection.Register(grpcServer)

	return grpcServer
}

// Calculate вычисляет одну операцию
func (s *CalculatorServer) Calculate(ctx context.Context, req *calculator.CalculateRequest) (*calculator.CalculateResponse, error) {
	result, err := calculate.Evaluate(*req)
	if err != nil {
		return nil, toStatus(err)
	}
	return &calculator.CalculateResponse{Result: result}, nil
}

// toStatus переводит ошибку вычисления в gRPC статус
func toStatus(err error) error {
	var calcErr *calculate.CalcError
	if errors.As(err, &calcErr) {
		return status.Error(codes.InvalidArgument, calcErr.Message)
	}
	return status.Error(codes.Internal, err.Error())
}

func loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	log.Printf("gRPC %s %s %v", info.FullMethod, status.Code(err), time.Since(start))
	return resp, err
}

func recoveryInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("gRPC: паника при обработке %s: %v", info.FullMethod, rec)
			err = status.Error(codes.Internal, fmt.Sprint(rec))
		}
	}()
	return handler(ctx, req)
}
