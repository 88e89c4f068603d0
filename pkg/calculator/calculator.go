package calculator

import (
	"context"

	"github.com/GGmuzem/web-calculator/pkg/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CalculateRequest запрос на вычисление, тот же формат, что и у HTTP API
type CalculateRequest = models.CalculateRequest

// CalculateResponse результат вычисления
type CalculateResponse struct {
	Result float64 `json:"result"`
}

const calculateMethod = "/calculator.Calculator/Calculate"

// Интерфейс для CalculatorClient
type CalculatorClient interface {
	Calculate(ctx context.Context, in *CalculateRequest, opts ...grpc.CallOption) (*CalculateResponse, error)
}

// Интерфейс для CalculatorServer
type CalculatorServer interface {
	Calculate(ctx context.Context, in *CalculateRequest) (*CalculateResponse, error)
}

// Базовая реализация CalculatorServer
type UnimplementedCalculatorServer struct{}

// Стаб для Calculate
func (s *UnimplementedCalculatorServer) Calculate(ctx context.Context, in *CalculateRequest) (*CalculateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "метод Calculate не реализован")
}

// RegisterCalculatorServer регистрирует сервер Calculator в gRPC
func RegisterCalculatorServer(s grpc.ServiceRegistrar, srv CalculatorServer) {
	s.RegisterService(&_Calculator_serviceDesc, srv)
}

var _Calculator_serviceDesc = grpc.ServiceDesc{
	ServiceName: "calculator.Calculator",
	HandlerType: (*CalculatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Calculate",
			Handler:    _Calculator_Calculate_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "calculator.proto",
}

// Обработчик Calculate
func _Calculator_Calculate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CalculateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServer).Calculate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: calculateMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalculatorServer).Calculate(ctx, req.(*CalculateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// NewCalculatorClient создает нового клиента для сервиса Calculator
func NewCalculatorClient(cc grpc.ClientConnInterface) CalculatorClient {
	return &calculatorClient{cc}
}

// Реализация клиента
type calculatorClient struct {
	cc grpc.ClientConnInterface
}

// Calculate вызывает Calculate у сервера, сообщения кодируются в JSON
func (c *calculatorClient) Calculate(ctx context.Context, in *CalculateRequest, opts ...grpc.CallOption) (*CalculateResponse, error) {
	out := new(CalculateResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, calculateMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
