package client

import (
	"context"
	"log"
	"time"

	"github.com/GGmuzem/web-calculator/internal/calculate"
	"github.com/GGmuzem/web-calculator/pkg/calculator"
	"github.com/GGmuzem/web-calculator/pkg/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// DefaultTimeout время ожидания ответа по умолчанию
const DefaultTimeout = 5 * time.Second

// GRPCClient клиент для gRPC взаимодействия с сервисом вычислений
type GRPCClient struct {
	client  calculator.CalculatorClient
	conn    *grpc.ClientConn
	Timeout time.Duration
}

// NewGRPCClient создает новый gRPC клиент. Дополнительные опции нужны, например,
// чтобы подключиться через bufconn в тестах.
func NewGRPCClient(serverAddr string, opts ...grpc.DialOption) (*GRPCClient, error) {
	// Создаем соединение без TLS
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.Dial(serverAddr, opts...)
	if err != nil {
		return nil, err
	}

	return &GRPCClient{
		client:  calculator.NewCalculatorClient(conn),
		conn:    conn,
		Timeout: DefaultTimeout,
	}, nil
}

// Close закрывает соединение с сервером
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// Calculate отправляет запрос на вычисление. Ошибки проверки ввода возвращаются
// как *calculate.CalcError.
func (c *GRPCClient) Calculate(ctx context.Context, req models.CalculateRequest) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	resp, err := c.client.Calculate(ctx, &req)
	if err != nil {
		if st, ok := status.FromError(err); ok && st.Code() == codes.InvalidArgument {
			if calcErr := calculate.FromMessage(st.Message()); calcErr != nil {
				return 0, calcErr
			}
		}
		log.Printf("GRPCClient: ошибка при вычислении: %v", err)
		return 0, err
	}

	return resp.Result, nil
}
